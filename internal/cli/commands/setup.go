package commands

import (
	"github.com/planimport/planimport/internal/cli/config"
	"github.com/planimport/planimport/internal/store"
)

// getConfig returns the loaded configuration, falling back to defaults
// when none was loaded (e.g. in tests that build commands directly).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Database: config.DefaultDatabase,
		Table:    config.DefaultTable,
		Type:     config.DefaultStoreType,
		Output:   config.DefaultOutput,
	}
}

// storeConfig maps the CLI configuration onto a store connection config.
func storeConfig(cfg *config.Config) store.Config {
	return store.Config{
		Type:     cfg.Type,
		Path:     cfg.Database,
		Database: cfg.Database,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.User,
		Password: cfg.Password,
		Schema:   cfg.Schema,
	}
}
