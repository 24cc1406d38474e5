package integrity

import (
	"context"

	"spell-miner/core/registry"
	"spell-miner/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecordLister enumerates the record IDs of the archive dump.
type RecordLister interface {
	List(ctx context.Context) ([]string, error)
}

// StoreReader enumerates the persisted record IDs.
type StoreReader interface {
	RecordIDs(ctx context.Context) ([]string, error)
}

// FailureLister enumerates the record IDs captured as failures.
type FailureLister interface {
	FailedRecordIDs(ctx context.Context) ([]string, error)
}

// Service handles integrity checks.
type Service struct {
	source   RecordLister
	store    StoreReader
	failures FailureLister
	db       *gorm.DB
	reg      *registry.Registry
	logger   *zap.Logger
}

// NewService creates a new integrity service.
func NewService(source RecordLister, store StoreReader, failures FailureLister, db *gorm.DB, reg *registry.Registry, logger *zap.Logger) *Service {
	return &Service{
		source:   source,
		store:    store,
		failures: failures,
		db:       db,
		reg:      reg,
		logger:   logger,
	}
}

// CheckCoverage accounts for every source record against the store and
// the failure side-channel.
func (s *Service) CheckCoverage(ctx context.Context) (*checks.CoverageReport, error) {
	sourceIDs, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	storedIDs, err := s.store.RecordIDs(ctx)
	if err != nil {
		return nil, err
	}
	var failedIDs []string
	if s.failures != nil {
		failedIDs, err = s.failures.FailedRecordIDs(ctx)
		if err != nil {
			return nil, err
		}
	}
	return checks.Coverage(sourceIDs, storedIDs, failedIDs), nil
}

// CheckSchema verifies the live table layout against the variant catalog.
func (s *Service) CheckSchema(_ context.Context) (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.reg)
}
