package store

import (
	"context"
	"fmt"
	"time"

	"spell-miner/core/ingest"
)

// IngestPass is one logged ingestion run.
type IngestPass struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Started   time.Time `json:"started"`
	Finished  time.Time `json:"finished"`
	Attempted int       `json:"attempted"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
}

// TableName overrides the GORM default pluralization.
func (IngestPass) TableName() string {
	return "ingest_passes"
}

// RecordPass appends one pass summary to the log.
func (s *Store) RecordPass(ctx context.Context, summary *ingest.Summary) error {
	pass := IngestPass{
		Started:   summary.Started,
		Finished:  summary.Finished,
		Attempted: summary.Attempted,
		Succeeded: summary.Succeeded,
		Failed:    summary.Failed,
	}
	if err := s.db.WithContext(ctx).Create(&pass).Error; err != nil {
		return fmt.Errorf("failed to record ingestion pass: %w", err)
	}
	return nil
}

// Passes returns the pass log, most recent first.
func (s *Store) Passes(ctx context.Context) ([]IngestPass, error) {
	var passes []IngestPass
	err := s.db.WithContext(ctx).Order("id DESC").Find(&passes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ingestion passes: %w", err)
	}
	return passes, nil
}
