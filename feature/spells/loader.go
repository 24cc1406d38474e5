package spells

import (
	"spell-miner/core/ingest"
	"spell-miner/core/registry"
	"spell-miner/feature/spells/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new spells feature.
func NewFeature(src ingest.Source, st *store.Store, sink ingest.FailureSink, reg *registry.Registry, logger *zap.Logger, cfg ingest.Config) *Feature {
	svc := NewService(src, st, sink, reg, logger, cfg)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "spells"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.store != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
