package spells

import (
	"context"

	"spell-miner/core/flatten"
	"spell-miner/core/ingest"
	"spell-miner/core/materialize"
	"spell-miner/core/registry"
	"spell-miner/feature/spells/store"

	"go.uber.org/zap"
)

// Service orchestrates ingestion passes and read-back queries.
type Service struct {
	source ingest.Source
	mat    *materialize.Materializer
	flat   *flatten.Flattener
	store  *store.Store
	sink   ingest.FailureSink
	logger *zap.Logger
	cfg    ingest.Config
}

// NewService wires the pipeline stages for one variant catalog.
func NewService(src ingest.Source, st *store.Store, sink ingest.FailureSink, reg *registry.Registry, logger *zap.Logger, cfg ingest.Config) *Service {
	return &Service{
		source: src,
		mat:    materialize.New(reg),
		flat:   flatten.New(reg),
		store:  st,
		sink:   sink,
		logger: logger,
		cfg:    cfg,
	}
}

// IngestAll runs one full ingestion pass over the source and logs its
// summary to the pass log.
func (s *Service) IngestAll(ctx context.Context) (*ingest.Summary, error) {
	driver := ingest.NewDriver(s.source, s.mat, s.flat, s.store, s.sink, s.logger, s.cfg)
	summary, err := driver.Run(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.RecordPass(ctx, summary); err != nil {
		s.logger.Warn("Failed to log ingestion pass", zap.Error(err))
	}
	return summary, nil
}

// InspectRecord runs the pipeline on one record without persisting,
// returning the rows that an ingestion pass would write.
func (s *Service) InspectRecord(ctx context.Context, id string) ([]flatten.Row, error) {
	rec, err := s.source.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	node, err := s.mat.Materialize(rec)
	if err != nil {
		return nil, err
	}
	return s.flat.Flatten(id, node)
}

// Records lists the persisted record IDs.
func (s *Service) Records(ctx context.Context) ([]string, error) {
	return s.store.RecordIDs(ctx)
}

// RecordRows reads back the persisted rows of one record.
func (s *Service) RecordRows(ctx context.Context, id string) ([]flatten.Row, error) {
	return s.store.RowsForRecord(ctx, id)
}

// RecordTree reads back one record and reassembles its rows into the
// original tree shape through the parent linkage columns.
func (s *Service) RecordTree(ctx context.Context, id string) ([]*flatten.TreeNode, error) {
	rows, err := s.store.RowsForRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return flatten.Reassemble(rows)
}

// Passes returns the ingestion pass log, most recent first.
func (s *Service) Passes(ctx context.Context) ([]store.IngestPass, error) {
	return s.store.Passes(ctx)
}
