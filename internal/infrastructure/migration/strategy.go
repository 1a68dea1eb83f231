package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/config"
	"github.com/expohub/expohub/internal/shared/logger"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(ctx context.Context, db *gorm.DB) error
	Name() string
}

// GormAutoMigrateStrategy syncs the schema from the model structs.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log}
}

func (s *GormAutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("running gorm auto migrate", "models_count", len(all))
	if err := db.WithContext(ctx).AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) Name() string {
	return "gorm_auto_migrate"
}

// GooseStrategy applies the versioned migrations with goose and records
// them in goose_db_version.
type GooseStrategy struct {
	driver string
	logger logger.Interface
}

func NewGooseStrategy(driver string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{driver: driver, logger: log}
}

func (s *GooseStrategy) Name() string {
	return "goose"
}

func (s *GooseStrategy) dialect() (goose.Dialect, error) {
	switch s.driver {
	case config.DriverMySQL:
		return goose.DialectMySQL, nil
	case config.DriverPostgres:
		return goose.DialectPostgres, nil
	case config.DriverSQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported database driver for goose: %s", s.driver)
	}
}

func (s *GooseStrategy) provider(db *gorm.DB) (*goose.Provider, error) {
	dialect, err := s.dialect()
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	p, err := goose.NewProvider(dialect, sqlDB, nil, goose.WithGoMigrations(versionedMigrations(db)...))
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return p, nil
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	p, err := s.provider(db)
	if err != nil {
		return err
	}

	current, err := p.GetDBVersion(ctx)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}
	s.logger.Infow("current migration status", "version", current)

	results, err := p.Up(ctx)
	if err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	final, err := p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}
	s.logger.Infow("migration completed successfully",
		"from_version", current,
		"to_version", final,
		"applied", len(results))
	return nil
}

// Down rolls back steps migrations.
func (s *GooseStrategy) Down(ctx context.Context, db *gorm.DB, steps int) error {
	p, err := s.provider(db)
	if err != nil {
		return err
	}
	s.logger.Infow("starting down migration", "steps", steps)
	for i := 0; i < steps; i++ {
		if _, err := p.Down(ctx); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}
	s.logger.Infow("down migration completed successfully")
	return nil
}

// MigrationStatus is one row of Status.
type MigrationStatus struct {
	Version int64
	Applied bool
}

func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) ([]MigrationStatus, error) {
	p, err := s.provider(db)
	if err != nil {
		return nil, err
	}
	rows, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	out := make([]MigrationStatus, 0, len(rows))
	for _, r := range rows {
		out = append(out, MigrationStatus{
			Version: r.Source.Version,
			Applied: r.State == goose.StateApplied,
		})
	}
	return out, nil
}

func (s *GooseStrategy) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	p, err := s.provider(db)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}

// versionedMigrations is the ordered schema history. Append new versions;
// never edit applied ones.
func versionedMigrations(db *gorm.DB) []*goose.Migration {
	return []*goose.Migration{
		goose.NewGoMigration(1,
			&goose.GoFunc{RunDB: func(ctx context.Context, _ *sql.DB) error {
				return db.WithContext(ctx).AutoMigrate(models.All()...)
			}},
			&goose.GoFunc{RunDB: func(ctx context.Context, _ *sql.DB) error {
				all := models.All()
				for i := len(all) - 1; i >= 0; i-- {
					if err := db.WithContext(ctx).Migrator().DropTable(all[i]); err != nil {
						return err
					}
				}
				return nil
			}},
		),
		goose.NewGoMigration(2,
			&goose.GoFunc{RunDB: func(ctx context.Context, _ *sql.DB) error {
				tx := db.WithContext(ctx)
				if err := tx.AutoMigrate(mediaTables()...); err != nil {
					return err
				}
				for _, fk := range foreignKeys() {
					if !tx.Migrator().HasConstraint(fk.model, fk.relation) {
						if err := tx.Migrator().CreateConstraint(fk.model, fk.relation); err != nil {
							return fmt.Errorf("failed to add %T.%s constraint: %w", fk.model, fk.relation, err)
						}
					}
				}
				return nil
			}},
			&goose.GoFunc{RunDB: func(ctx context.Context, _ *sql.DB) error {
				tx := db.WithContext(ctx)
				for _, fk := range foreignKeys() {
					if tx.Migrator().HasConstraint(fk.model, fk.relation) {
						if err := tx.Migrator().DropConstraint(fk.model, fk.relation); err != nil {
							return err
						}
					}
				}
				tables := mediaTables()
				for i := len(tables) - 1; i >= 0; i-- {
					if err := tx.Migrator().DropTable(tables[i]); err != nil {
						return err
					}
				}
				return nil
			}},
		),
	}
}

// mediaTables were added in version 2.
func mediaTables() []any {
	return []any{
		&models.CategoryModel{},
		&models.ExhibitionImageModel{},
		&models.ExhibitionDocumentModel{},
		&models.CompanyGalleryModel{},
	}
}

type foreignKey struct {
	model    any
	relation string
}

// foreignKeys lists the relationships of the version 1 tables that carry a
// constraint since version 2. The media tables get theirs on creation.
func foreignKeys() []foreignKey {
	return []foreignKey{
		{&models.TokenModel{}, "User"},
		{&models.ExhibitionModel{}, "Owner"},
		{&models.ExhibitionModel{}, "Moderator"},
		{&models.ExhibitionModel{}, "Category"},
		{&models.RegistrationModel{}, "Exhibition"},
		{&models.RegistrationModel{}, "User"},
		{&models.CompanyModel{}, "Owner"},
		{&models.CompanyModel{}, "Moderator"},
		{&models.CompanyModel{}, "Category"},
		{&models.ProductModel{}, "Company"},
		{&models.ContactRequestModel{}, "Company"},
		{&models.ContactRequestModel{}, "Product"},
		{&models.ContactRequestModel{}, "User"},
		{&models.ReviewModel{}, "User"},
		{&models.ReviewModel{}, "Moderator"},
		{&models.ReviewVoteModel{}, "Review"},
		{&models.ReviewVoteModel{}, "User"},
		{&models.FavoriteModel{}, "User"},
		{&models.ActivityLogModel{}, "User"},
	}
}
