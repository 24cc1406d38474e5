package ingest

import (
	"context"
	"errors"
	"sync"
	"time"

	"spell-miner/core/flatten"
	"spell-miner/core/materialize"
	"spell-miner/core/record"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source enumerates and fetches the generic records of one archive dump.
type Source interface {
	// List returns all addressable record IDs.
	List(ctx context.Context) ([]string, error)
	// Fetch returns one record's generic form.
	Fetch(ctx context.Context, id string) (record.Object, error)
}

// RecordRows is the staged row set of one successfully processed record.
type RecordRows struct {
	RecordID string
	Rows     []flatten.Row
}

// Store persists staged row sets. Replace must remove any previously
// persisted rows for each record ID before inserting the new set, so that
// re-ingestion replaces rather than appends.
type Store interface {
	Replace(ctx context.Context, batch []RecordRows) error
}

// Config controls batching, retries and worker parallelism.
type Config struct {
	// BatchSize is the number of record row sets committed per store call.
	BatchSize int `mapstructure:"batch_size" default:"100"`
	// Workers is the number of ingestion workers the record set is
	// partitioned across.
	Workers int `mapstructure:"workers" default:"1"`
	// MaxRetries bounds retries of a batch that failed transiently.
	MaxRetries int `mapstructure:"max_retries" default:"5"`
	// RetryBackoffMS is the initial backoff, doubled per retry.
	RetryBackoffMS int `mapstructure:"retry_backoff_ms" default:"500"`
	// FailureDir is where the failure side-channel documents are written.
	FailureDir string `mapstructure:"failure_dir" default:"failed_records"`
}

func (c Config) normalized() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryBackoffMS <= 0 {
		c.RetryBackoffMS = 500
	}
	return c
}

// Summary reports the outcome of one ingestion pass.
type Summary struct {
	Attempted      int            `json:"attempted"`
	Succeeded      int            `json:"succeeded"`
	Failed         int            `json:"failed"`
	FailuresByKind map[string]int `json:"failures_by_kind"`
	Started        time.Time      `json:"started"`
	Finished       time.Time      `json:"finished"`
}

// Driver runs the ingestion pipeline over a source.
type Driver struct {
	source Source
	mat    *materialize.Materializer
	flat   *flatten.Flattener
	store  Store
	sink   FailureSink
	logger *zap.Logger
	cfg    Config
}

// NewDriver wires the pipeline stages together.
func NewDriver(source Source, mat *materialize.Materializer, flat *flatten.Flattener, store Store, sink FailureSink, logger *zap.Logger, cfg Config) *Driver {
	return &Driver{
		source: source,
		mat:    mat,
		flat:   flat,
		store:  store,
		sink:   sink,
		logger: logger,
		cfg:    cfg.normalized(),
	}
}

// Run processes every source record. Per-record errors are captured in the
// summary and the failure sink; only an exhausted transient store fault or
// a source enumeration failure aborts the pass.
func (d *Driver) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		FailuresByKind: make(map[string]int),
		Started:        time.Now(),
	}

	ids, err := d.source.List(ctx)
	if err != nil {
		return nil, err
	}
	d.logger.Info("Starting ingestion pass",
		zap.Int("records", len(ids)),
		zap.Int("workers", d.cfg.Workers),
		zap.Int("batch_size", d.cfg.BatchSize),
	)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for _, part := range partition(ids, d.cfg.Workers) {
		part := part
		g.Go(func() error {
			batch := make([]RecordRows, 0, d.cfg.BatchSize)
			for _, id := range part {
				if err := gctx.Err(); err != nil {
					return err
				}
				rows, failure := d.process(gctx, id)

				mu.Lock()
				summary.Attempted++
				if failure != nil {
					summary.Failed++
					summary.FailuresByKind[failure.Kind]++
				}
				mu.Unlock()

				if failure != nil {
					d.report(gctx, *failure)
					continue
				}

				batch = append(batch, RecordRows{RecordID: id, Rows: rows})
				if len(batch) >= d.cfg.BatchSize {
					if err := d.commit(gctx, batch); err != nil {
						return err
					}
					mu.Lock()
					summary.Succeeded += len(batch)
					mu.Unlock()
					batch = batch[:0]
				}
			}
			if len(batch) > 0 {
				if err := d.commit(gctx, batch); err != nil {
					return err
				}
				mu.Lock()
				summary.Succeeded += len(batch)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	summary.Finished = time.Now()

	d.logger.Info("Ingestion pass finished",
		zap.Int("attempted", summary.Attempted),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", summary.Finished.Sub(summary.Started)),
	)
	return summary, nil
}

// process runs one failure-isolated record unit.
func (d *Driver) process(ctx context.Context, id string) ([]flatten.Row, *Failure) {
	rec, err := d.source.Fetch(ctx, id)
	if err != nil {
		return nil, &Failure{RecordID: id, Kind: FailureFetch, Message: err.Error(), Timestamp: time.Now()}
	}

	node, err := d.mat.Materialize(rec)
	if err != nil {
		return nil, classify(id, rec, err)
	}

	rows, err := d.flat.Flatten(id, node)
	if err != nil {
		// A flattening failure is a variant declaration defect, not bad
		// data. Surface it loudly but still isolate the record.
		d.logger.Error("Flattening defect", zap.String("record", id), zap.Error(err))
		return nil, &Failure{RecordID: id, Kind: FailureFlattening, Message: err.Error(), Record: rec, Timestamp: time.Now()}
	}
	return rows, nil
}

// commit writes one batch, retrying whole batches on transient store
// faults with doubling backoff. Deterministic errors are never retried.
func (d *Driver) commit(ctx context.Context, batch []RecordRows) error {
	backoff := time.Duration(d.cfg.RetryBackoffMS) * time.Millisecond
	var err error
	for attempt := 0; ; attempt++ {
		err = d.store.Replace(ctx, batch)
		if err == nil {
			return nil
		}
		if !IsTransient(err) || attempt >= d.cfg.MaxRetries {
			return err
		}
		d.logger.Warn("Transient store fault, retrying batch",
			zap.Int("attempt", attempt+1),
			zap.Int("batch", len(batch)),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func (d *Driver) report(ctx context.Context, f Failure) {
	d.logger.Warn("Record failed",
		zap.String("record", f.RecordID),
		zap.String("kind", f.Kind),
		zap.String("path", f.Path),
		zap.String("error", f.Message),
	)
	if d.sink == nil {
		return
	}
	if err := d.sink.Record(ctx, f); err != nil {
		d.logger.Warn("Failure sink write failed", zap.String("record", f.RecordID), zap.Error(err))
	}
}

func classify(id string, rec record.Object, err error) *Failure {
	f := &Failure{RecordID: id, Message: err.Error(), Record: rec, Timestamp: time.Now()}

	var unresolved *materialize.UnresolvedTagError
	var mat *materialize.MaterializationError
	switch {
	case errors.As(err, &unresolved):
		f.Kind = FailureUnresolvedTag
		f.Path = unresolved.Path
	case errors.As(err, &mat):
		f.Kind = FailureMaterialization
		f.Path = mat.Path
	default:
		f.Kind = FailureMaterialization
	}
	return f
}

// partition splits ids into at most n contiguous chunks.
func partition(ids []string, n int) [][]string {
	if n <= 1 || len(ids) <= 1 {
		if len(ids) == 0 {
			return nil
		}
		return [][]string{ids}
	}
	if n > len(ids) {
		n = len(ids)
	}
	chunks := make([][]string, 0, n)
	size := (len(ids) + n - 1) / n
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
