package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"jirant/internal/shared/config"
	"jirant/internal/shared/logger"
)

const StrategyAuto = "auto"

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy named in cfg; anything but "auto" means goose.
func NewManager(cfg *config.DatabaseConfig) *Manager {
	var strategy Strategy
	if strings.EqualFold(cfg.MigrationStrategy, StrategyAuto) {
		strategy = NewGormAutoMigrateStrategy()
	} else {
		strategy = NewGooseStrategy(cfg.Driver)
	}
	return NewManagerWithStrategy(strategy)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewComponentLogger("migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
