package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/domain/analytics"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/setting"
)

func TestSiteSettingRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSiteSettingRepository(db, newTestLogger())
	ctx := context.Background()

	_, err := repo.GetByKey(ctx, setting.KeySiteName)
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)

	s, err := setting.NewSiteSetting(setting.KeyViewDedupMinutes, testNow)
	require.NoError(t, err)
	require.NoError(t, s.SetRaw("10", 1, testNow))
	require.NoError(t, repo.Upsert(ctx, s))

	s2, err := repo.GetByKey(ctx, setting.KeyViewDedupMinutes)
	require.NoError(t, err)
	require.NoError(t, s2.SetRaw("45", 2, testNow))
	require.NoError(t, repo.Upsert(ctx, s2))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	n, err := all[0].GetIntValue()
	require.NoError(t, err)
	assert.Equal(t, 45, n)
}

func TestAnalyticsRepository_RecordAccumulatesPerDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()
	target := lifecycle.CompanyRef(2)

	require.NoError(t, repo.Record(ctx, target, analytics.MetricViews, testNow, 1))
	require.NoError(t, repo.Record(ctx, target, analytics.MetricViews, testNow.Add(time.Hour), 2))
	require.NoError(t, repo.Record(ctx, target, analytics.MetricViews, testNow.Add(24*time.Hour), 1))
	assert.Error(t, repo.Record(ctx, target, analytics.Metric("clicks"), testNow, 1))

	points, err := repo.Range(ctx, target, testNow, testNow.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, int64(3), points[0].Value)
	assert.Equal(t, int64(1), points[1].Value)
}
