// Package migration applies the schema with one of three strategies: GORM
// AutoMigrate for SQLite development databases, or versioned SQL scripts run
// by goose or golang-migrate against MySQL.
package migration

import (
	"embed"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tripline/tripline/internal/infrastructure/persistence/models"
	"github.com/tripline/tripline/internal/shared/config"
	"github.com/tripline/tripline/internal/shared/logger"
)

const (
	StrategyAuto          = "auto"
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang-migrate"

	gooseDir         = "scripts/goose"
	golangMigrateDir = "scripts/golangmigrate"
)

//go:embed scripts/goose/*.sql scripts/golangmigrate/*.sql
var scriptsFS embed.FS

// Models lists every table the service owns.
func Models() []interface{} {
	return []interface{}{
		&models.PlanModel{},
		&models.PlanMemberModel{},
		&models.PlanDetailModel{},
		&models.BookmarkModel{},
		&models.PlaceModel{},
	}
}

// NewStrategy picks the strategy for cfg. SQLite always uses AutoMigrate
// because the SQL scripts are written for MySQL.
func NewStrategy(cfg *config.DatabaseConfig, log logger.Interface) (Strategy, error) {
	if cfg.Driver == "sqlite" {
		return NewGormAutoMigrateStrategy(log), nil
	}
	switch strings.ToLower(cfg.MigrationStrategy) {
	case "", StrategyGoose:
		return NewGooseStrategy(log), nil
	case StrategyGolangMigrate:
		return NewGolangMigrateStrategy(log), nil
	case StrategyAuto:
		return NewGormAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", cfg.MigrationStrategy)
	}
}

// Manager runs the configured strategy and logs the outcome.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
