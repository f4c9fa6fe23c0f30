package cmd

import (
	"fmt"

	"storage-facade/core/config"
	"storage-facade/core/database"
	"storage-facade/core/logger"
	"storage-facade/core/storage"
	"storage-facade/feature/facade"
	"storage-facade/feature/journal"

	"go.uber.org/zap"
)

// session bundles the long-lived handles shared by every command.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *facade.Service
	journal *journal.GormRecorder
}

// bootstrap loads configuration and builds the facade. The journal is
// optional: a database failure is logged and the facade runs without it.
func bootstrap() (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if providerFlag != "" {
		cfg.Storage.Provider = providerFlag
	}
	if endpointFlag != "" {
		cfg.Storage.Endpoint = endpointFlag
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	backend, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	rt := &session{cfg: cfg, logger: logg}

	var recorder journal.Recorder
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			rec := journal.NewGormRecorder(db)
			if err := rec.Migrate(); err != nil {
				logg.Warn("Journal migration failed", zap.Error(err))
			} else {
				rt.journal = rec
				recorder = rec
				logg.Info("Journal enabled", zap.String("database", cfg.Database.Name))
			}
		}
	}

	rt.service = facade.NewService(backend, backend, cfg.Facade, logg, recorder)
	return rt, nil
}
