package flatten

import (
	"fmt"
	"reflect"

	"spell-miner/core/registry"
)

// Column names shared by every node table.
const (
	ColRecordID      = "record_id"
	ColOrdinal       = "ordinal"
	ColParentTable   = "parent_table"
	ColParentOrdinal = "parent_ordinal"
)

// RootParentOrdinal is the sentinel parent ordinal for a record's root row.
// Root rows also carry an empty parent table name.
const RootParentOrdinal = -1

// Row is the flattened persistence unit for one node. Identity is
// (RecordID, Table, Ordinal, ParentTable, ParentOrdinal).
type Row struct {
	// Table is the destination table named by the node's variant.
	Table string `json:"table"`
	// RecordID identifies the source record this row belongs to.
	RecordID string `json:"record_id"`
	// Ordinal is the node's position within its immediate container.
	Ordinal int `json:"ordinal"`
	// ParentTable is the table name of the containing node, empty for roots.
	ParentTable string `json:"parent_table"`
	// ParentOrdinal is the containing node's ordinal, RootParentOrdinal for roots.
	ParentOrdinal int `json:"parent_ordinal"`
	// Columns holds the variant-specific column values.
	Columns map[string]any `json:"columns"`
}

// Error reports an inconsistency between the registered schemas and the
// actual tree shape. It indicates a variant declaration bug rather than
// bad archive data; the affected record is isolated but the error is
// surfaced loudly.
type Error struct {
	RecordID string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("flattening record %q: %v", e.RecordID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Flattener walks typed node trees and emits rows. Like the materializer
// it holds no per-record state.
type Flattener struct {
	reg *registry.Registry
}

// New creates a flattener bound to a registry.
func New(reg *registry.Registry) *Flattener {
	return &Flattener{reg: reg}
}

// Flatten emits one row per node of the tree rooted at root. If any node
// in the tree has no registered schema the whole record's row set is
// discarded; a partial tree is indistinguishable from corruption.
func (f *Flattener) Flatten(recordID string, root registry.Node) ([]Row, error) {
	var rows []Row
	if err := f.walk(recordID, root, "", RootParentOrdinal, 0, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (f *Flattener) walk(recordID string, n registry.Node, parentTable string, parentOrdinal, ordinal int, rows *[]Row) error {
	schema, ok := f.reg.SchemaOf(n)
	if !ok {
		return &Error{RecordID: recordID, Err: fmt.Errorf("no schema registered for node type %T", n)}
	}

	*rows = append(*rows, Row{
		Table:         schema.Table,
		RecordID:      recordID,
		Ordinal:       ordinal,
		ParentTable:   parentTable,
		ParentOrdinal: parentOrdinal,
		Columns:       schema.Columns(n),
	})

	rv := reflect.ValueOf(n)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	for _, cf := range schema.Children {
		fv := rv.FieldByIndex(cf.Index)
		children := collectChildren(cf, fv)
		for i, child := range children {
			if err := f.walk(recordID, child, schema.Table, ordinal, i, rows); err != nil {
				return err
			}
		}
	}
	return nil
}

// collectChildren gathers the non-nil nodes of one child field. A single
// child field is a container of at most one.
func collectChildren(cf registry.Field, fv reflect.Value) []registry.Node {
	switch cf.Kind {
	case registry.KindNode:
		if fv.IsNil() {
			return nil
		}
		return []registry.Node{fv.Interface().(registry.Node)}
	case registry.KindNodeList:
		children := make([]registry.Node, 0, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			ev := fv.Index(i)
			if ev.IsNil() {
				continue
			}
			children = append(children, ev.Interface().(registry.Node))
		}
		return children
	default:
		return nil
	}
}
