package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/parley-chat/parley/internal/shared/logger"
)

// Manager runs one migration strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose for every driver unless autoMigrate is set.
func NewManager(driver string, autoMigrate bool) *Manager {
	var strategy Strategy = NewGooseStrategy(driver)
	if autoMigrate {
		strategy = NewGormAutoMigrateStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.Name())
	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.Name(), err)
	}
	return nil
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
