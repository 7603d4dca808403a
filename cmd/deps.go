package cmd

import (
	"fmt"

	"outfit-picker/core/config"
	"outfit-picker/core/database"
	"outfit-picker/core/storage"
	"outfit-picker/core/store"
	"outfit-picker/core/wardrobe"
)

// closetDeps bundles the persistence and listing backends the commands
// share. Which concrete implementations land here is driven entirely by
// configuration (closet source, store backend).
type closetDeps struct {
	configs store.ConfigStore
	states  store.StateStore
	lister  wardrobe.Lister
}

// buildClosetDeps wires stores and lister from the loaded configuration.
func buildClosetDeps(cfg *config.Config) (*closetDeps, error) {
	if !cfg.Closet.IsValidSource() {
		return nil, fmt.Errorf("invalid closet source %q", cfg.Closet.Source)
	}
	if !cfg.Store.IsValidBackend() {
		return nil, fmt.Errorf("invalid store backend %q", cfg.Store.Backend)
	}

	deps := &closetDeps{
		configs: store.NewFileConfigStore(cfg.Store.ConfigPath),
	}

	switch cfg.Store.Backend {
	case store.BackendDB:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := store.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate rotation tables: %w", err)
		}
		deps.states = store.NewDBStateStore(db)
	default:
		deps.states = store.NewFileStateStore(cfg.Store.StatePath)
	}

	switch cfg.Closet.Source {
	case wardrobe.SourceStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		deps.lister = wardrobe.NewObjectLister(client, cfg.Storage.Bucket)
	default:
		deps.lister = wardrobe.NewLocalLister()
	}

	return deps, nil
}
