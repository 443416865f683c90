package cmd

import (
	"context"
	"fmt"

	"github.com/dbsmedya/goanonym/internal/config"
	"github.com/dbsmedya/goanonym/internal/database"
	"github.com/dbsmedya/goanonym/internal/dataset"
	"github.com/dbsmedya/goanonym/internal/logger"
)

// loadConfig loads the configuration file, applies CLI overrides, and
// validates it. Configuration errors are fatal and surfaced immediately.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// connectStore connects to the backing store and wraps it in a dataset store.
// The caller owns the returned manager and must Close it.
func connectStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*database.Manager, *dataset.Store, error) {
	dbManager := database.NewManager(cfg)

	if err := dbManager.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to backing store: %w", err)
	}

	if err := dbManager.Ping(ctx); err != nil {
		dbManager.Close()
		return nil, nil, fmt.Errorf("backing store connection failed: %w", err)
	}

	store, err := dataset.NewStore(dbManager.Store, log)
	if err != nil {
		dbManager.Close()
		return nil, nil, err
	}

	return dbManager, store, nil
}
