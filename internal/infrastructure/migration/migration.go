package migration

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/shared/constants"
	"github.com/expohub/expohub/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy for the environment. Development syncs the
// schema from the models; test and production apply versioned migrations.
func NewManager(environment, driver string, log logger.Interface) *Manager {
	var strategy Strategy
	switch strings.ToLower(environment) {
	case constants.EnvTest, constants.EnvProduction:
		strategy = NewGooseStrategy(driver, log)
	default:
		strategy = NewGormAutoMigrateStrategy(log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log,
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.Name())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.Name(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.Name(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.Name())
	return nil
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}

// StrategyInfo describes the current strategy.
func (m *Manager) StrategyInfo() map[string]any {
	return map[string]any{
		"name":        m.strategy.Name(),
		"description": strategyDescription(m.strategy.Name()),
	}
}

func strategyDescription(name string) string {
	switch name {
	case "gorm_auto_migrate":
		return "GORM AutoMigrate - schema synced from the model structs"
	case "goose":
		return "goose - versioned migrations tracked in goose_db_version"
	default:
		return "Unknown migration strategy"
	}
}
