package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/tripline/tripline/internal/shared/logger"
)

// Generator writes new, empty migration scripts for both script sets.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator writes below scriptsPath, which must be the source scripts
// directory (the embedded copy is read-only).
func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// Create returns the paths of the files it wrote.
func (g *Generator) Create(name string) ([]string, error) {
	if name == "" {
		return nil, fmt.Errorf("migration name is required")
	}
	gooseDir := filepath.Join(g.scriptsPath, "goose")
	migrateDir := filepath.Join(g.scriptsPath, "golangmigrate")
	for _, dir := range []string{gooseDir, migrateDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create scripts directory: %w", err)
		}
	}

	goose.SetBaseFS(nil)
	if err := goose.Create(nil, gooseDir, name, "sql"); err != nil {
		return nil, fmt.Errorf("failed to create goose migration: %w", err)
	}

	stamp := g.now().UTC().Format("20060102150405")
	up := filepath.Join(migrateDir, fmt.Sprintf("%s_%s.up.sql", stamp, name))
	down := filepath.Join(migrateDir, fmt.Sprintf("%s_%s.down.sql", stamp, name))
	header := fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", name, g.now().UTC().Format(time.DateTime))
	if err := os.WriteFile(up, []byte(header), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(down, []byte(header), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created", "name", name, "up_file", up, "down_file", down)
	return []string{up, down}, nil
}
