package main

import (
	"fmt"

	"github.com/fcoelho/flashdeck/internal/collection"
	"github.com/fcoelho/flashdeck/internal/config"
	"github.com/fcoelho/flashdeck/internal/database"
	"github.com/fcoelho/flashdeck/internal/generation"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// openStore builds the collection store on the configured persistence
// surface. The returned closer releases the surface's resources.
func openStore(cfg *config.Config) (*collection.Store, func() error, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open() > %w", err)
		}
		persistence, err := collection.NewDBPersistence(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("collection.NewDBPersistence() > %w", err)
		}
		return collection.NewStore(persistence), db.Close, nil
	default:
		persistence := collection.NewFilePersistence(cfg.Storage.File)
		return collection.NewStore(persistence), func() error { return nil }, nil
	}
}

// newGenerationService picks the configured generation backend.
func newGenerationService(cfg *config.Config) (generation.Service, error) {
	switch cfg.Generation.Mode {
	case config.GenerationModeRemote:
		if cfg.Generation.Endpoint == "" {
			return nil, fmt.Errorf("FLASHDECK_GENERATION_ENDPOINT environment variable is required for remote generation")
		}
		return generation.NewRemoteClient(cfg.Generation.Endpoint, cfg.Generation.MaxRetryAttempts), nil
	default:
		return generation.NewTemplateService(), nil
	}
}
