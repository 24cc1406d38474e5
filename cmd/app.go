package cmd

import (
	"context"
	"fmt"

	"spell-miner/core/config"
	"spell-miner/core/database"
	"spell-miner/core/ingest"
	"spell-miner/core/logger"
	"spell-miner/core/registry"
	"spell-miner/core/storage"
	"spell-miner/feature/spells/models"
	"spell-miner/feature/spells/source"
	"spell-miner/feature/spells/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles the wired pipeline dependencies shared by the commands.
type app struct {
	cfg    *config.Config
	logg   *zap.Logger
	db     *gorm.DB
	reg    *registry.Registry
	source ingest.Source
	store  *store.Store
	sink   *ingest.DirSink
}

// buildApp loads configuration and wires the full pipeline: logger,
// database, record source, store and failure sink.
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	reg := models.DefaultRegistry()
	st := store.New(db, reg)
	if err := st.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare database schema: %w", err)
	}

	src, err := buildSource(cfg)
	if err != nil {
		return nil, err
	}

	sink, err := ingest.NewDirSink(cfg.Ingest.FailureDir)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logg:   logg,
		db:     db,
		reg:    reg,
		source: src,
		store:  st,
		sink:   sink,
	}, nil
}

// buildSource picks the record source from the archive configuration.
func buildSource(cfg *config.Config) (ingest.Source, error) {
	switch cfg.Archive.Source {
	case source.KindStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return source.NewStorageSource(client, cfg.Storage.Bucket, cfg.Archive.Prefix), nil
	case source.KindDir, "":
		return source.NewDirSource(cfg.Archive.Dir)
	default:
		return nil, fmt.Errorf("unsupported archive source %q", cfg.Archive.Source)
	}
}
