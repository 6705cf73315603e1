// Package bootstrap holds the start-up steps shared by every CLI command.
package bootstrap

import (
	"fmt"

	"github.com/tripline/tripline/internal/infrastructure/config"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/constants"
	"github.com/tripline/tripline/internal/shared/logger"
)

// Load reads the configuration for env, then initializes the process logger
// and the business timezone from it.
func Load(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Business timezone decides where "today" starts for plans and entries
	if err := biztime.Init(cfg.BizTime.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// GinMode maps a deployment environment name onto a gin mode.
func GinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
