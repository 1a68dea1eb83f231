package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/logger"
)

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// one connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func createExhibition(t *testing.T, repo *ExhibitionRepository, slug string, start, end time.Time) *exhibition.Exhibition {
	t.Helper()
	e, err := exhibition.NewExhibition(1, exhibition.Details{
		Title:     "Expo " + slug,
		StartDate: start,
		EndDate:   end,
		VenueName: "Crocus",
		City:      "Moscow",
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, e.AssignSlug(slug))
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func createCompany(t *testing.T, repo *CompanyRepository, slug string) *company.Company {
	t.Helper()
	c, err := company.NewCompany(1, company.Profile{Name: "Company " + slug}, testNow)
	require.NoError(t, err)
	require.NoError(t, c.AssignSlug(slug))
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func newTestLogger() logger.Interface {
	return logger.NewNopLogger()
}
