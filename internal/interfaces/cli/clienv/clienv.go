// Package clienv loads configuration and logging for the CLI commands.
package clienv

import (
	"fmt"

	"jirant/internal/infrastructure/config"
	"jirant/internal/infrastructure/database"
	"jirant/internal/shared/logger"
)

// Load reads the configuration and initializes the global logger.
func Load(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// LoadWithDatabase is Load followed by opening the configured database.
// Callers close it with database.Close.
func LoadWithDatabase(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, log, err := Load(env, configPath)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}

// GinMode maps an environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
