package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"spell-miner/core/record"
)

// Failure kinds reported to the side-channel and the pass summary.
const (
	FailureFetch           = "fetch"
	FailureUnresolvedTag   = "unresolved_tag"
	FailureMaterialization = "materialization"
	FailureFlattening      = "flattening"
)

// Failure captures one failed source record for offline inspection.
type Failure struct {
	// RecordID identifies the source record.
	RecordID string `json:"record_id"`
	// Kind is one of the Failure* constants.
	Kind string `json:"kind"`
	// Path is the dotted field path of the failure, when known.
	Path string `json:"path,omitempty"`
	// Message is the error text.
	Message string `json:"message"`
	// Record is the original generic record content, when it was fetched.
	Record record.Object `json:"record,omitempty"`
	// Timestamp is when the failure was captured.
	Timestamp time.Time `json:"timestamp"`
}

// FailureSink receives one entry per failed source record.
type FailureSink interface {
	Record(ctx context.Context, f Failure) error
}

// DirSink writes failures as JSON documents into a directory, one file
// per failed record.
type DirSink struct {
	dir string

	mu    sync.Mutex
	count int
}

// NewDirSink creates the directory if needed and returns a sink writing
// into it.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create failure directory: %w", err)
	}
	return &DirSink{dir: dir}, nil
}

// Record writes one failure document.
func (s *DirSink) Record(_ context.Context, f Failure) error {
	s.mu.Lock()
	seq := s.count
	s.count++
	s.mu.Unlock()

	name := fmt.Sprintf("failed_%04d_%s.json", seq, sanitize(f.RecordID))
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode failure for %q: %w", f.RecordID, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write failure for %q: %w", f.RecordID, err)
	}
	return nil
}

// FailedRecordIDs lists the record IDs captured in the directory. Used by
// the integrity feature to account for every source record.
func (s *DirSink) FailedRecordIDs(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read failure directory: %w", err)
	}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		var f Failure
		if err := json.Unmarshal(data, &f); err != nil {
			continue // ignore foreign files
		}
		if f.RecordID != "" {
			ids = append(ids, f.RecordID)
		}
	}
	return ids, nil
}

func sanitize(id string) string {
	return strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(id)
}
