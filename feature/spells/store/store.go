package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"sort"

	"spell-miner/core/flatten"
	"spell-miner/core/ingest"
	"spell-miner/core/registry"
	"spell-miner/core/utils"

	"gorm.io/gorm"
)

// Store writes flattened rows into one table per variant and reads them
// back for inspection. It implements ingest.Store.
type Store struct {
	db  *gorm.DB
	reg *registry.Registry
}

// New binds a store to a connection and the variant catalog.
func New(db *gorm.DB, reg *registry.Registry) *Store {
	return &Store{db: db, reg: reg}
}

// EnsureSchema creates the variant tables and the pass log if they do not
// exist yet. Safe to call on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	dialect := s.db.Dialector.Name()
	db := s.db.WithContext(ctx)

	for _, table := range s.reg.Tables() {
		schema, _ := s.reg.SchemaForTable(table)
		for _, stmt := range tableDDL(dialect, schema) {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to create table %s: %w", table, err)
			}
		}
	}
	if err := db.AutoMigrate(&IngestPass{}); err != nil {
		return fmt.Errorf("failed to migrate pass log: %w", err)
	}
	return nil
}

// Replace persists one batch atomically. Any rows previously written for
// the batch's record IDs are removed first, so re-ingesting a record
// replaces its row set instead of appending to it.
func (s *Store) Replace(ctx context.Context, batch []ingest.RecordRows) error {
	if len(batch) == 0 {
		return nil
	}
	ids := make([]string, 0, len(batch))
	for _, rr := range batch {
		ids = append(ids, rr.RecordID)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range s.reg.Tables() {
			stmt := fmt.Sprintf("DELETE FROM `%s` WHERE `%s` IN ?", table, flatten.ColRecordID)
			if err := tx.Exec(stmt, ids).Error; err != nil {
				return fmt.Errorf("failed to clear table %s: %w", table, err)
			}
		}
		for _, rr := range batch {
			for _, row := range rr.Rows {
				values := make(map[string]any, len(row.Columns)+4)
				for k, v := range row.Columns {
					values[k] = v
				}
				values[flatten.ColRecordID] = row.RecordID
				values[flatten.ColOrdinal] = row.Ordinal
				values[flatten.ColParentTable] = row.ParentTable
				values[flatten.ColParentOrdinal] = row.ParentOrdinal
				if err := tx.Table(row.Table).Create(values).Error; err != nil {
					return fmt.Errorf("failed to insert into %s for record %q: %w", row.Table, row.RecordID, err)
				}
			}
		}
		return nil
	})
	if err != nil && isTransient(err) {
		return ingest.Transient(err)
	}
	return err
}

// RecordIDs lists every persisted record in sorted order. Roots are the
// rows with an empty parent table.
func (s *Store) RecordIDs(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	db := s.db.WithContext(ctx)
	for _, table := range s.reg.Tables() {
		var ids []string
		err := db.Table(table).
			Distinct(flatten.ColRecordID).
			Where(flatten.ColParentTable+" = ?", "").
			Pluck(flatten.ColRecordID, &ids).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list records in %s: %w", table, err)
		}
		for _, id := range ids {
			seen[id] = true
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// RowsForRecord reads back every persisted row of one record, in insert
// order per table.
func (s *Store) RowsForRecord(ctx context.Context, recordID string) ([]flatten.Row, error) {
	var rows []flatten.Row
	db := s.db.WithContext(ctx)
	for _, table := range s.reg.Tables() {
		var raw []map[string]any
		err := db.Table(table).
			Where(flatten.ColRecordID+" = ?", recordID).
			Order("id").
			Find(&raw).Error
		if err != nil {
			return nil, fmt.Errorf("failed to read %s for record %q: %w", table, recordID, err)
		}
		for _, values := range raw {
			rows = append(rows, rowFromValues(table, values))
		}
	}
	return rows, nil
}

// rowFromValues splits the shared linkage columns off the variant columns.
func rowFromValues(table string, values map[string]any) flatten.Row {
	row := flatten.Row{Table: table, Columns: make(map[string]any, len(values))}
	for k, v := range values {
		switch k {
		case "id":
		case flatten.ColRecordID:
			row.RecordID = utils.ToString(v)
		case flatten.ColOrdinal:
			row.Ordinal = utils.ToInt(v)
		case flatten.ColParentTable:
			row.ParentTable = utils.ToString(v)
		case flatten.ColParentOrdinal:
			row.ParentOrdinal = utils.ToInt(v)
		default:
			row.Columns[k] = v
		}
	}
	return row
}

// isTransient reports whether a store error is worth retrying. Connection
// faults are; constraint violations and SQL defects are not.
func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
