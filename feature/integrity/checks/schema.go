package checks

import (
	"fmt"
	"sort"
	"strings"

	"spell-miner/core/database"
	"spell-miner/core/flatten"
	"spell-miner/core/registry"

	"gorm.io/gorm"
)

// SchemaReport lists the gaps between the registered variant schemas and
// the live database tables.
type SchemaReport struct {
	// MissingTables lists variant tables absent from the database.
	MissingTables []string `json:"missing_tables"`
	// MissingColumns maps a table to the declared columns it lacks.
	MissingColumns map[string][]string `json:"missing_columns"`
}

// Complete reports whether the live schema carries everything declared.
func (r *SchemaReport) Complete() bool {
	return len(r.MissingTables) == 0 && len(r.MissingColumns) == 0
}

// CheckSchema verifies that every registered variant table exists and
// carries its declared columns plus the shared linkage columns.
func CheckSchema(db *gorm.DB, reg *registry.Registry) (*SchemaReport, error) {
	report := &SchemaReport{MissingColumns: make(map[string][]string)}

	for _, table := range reg.Tables() {
		schema, _ := reg.SchemaForTable(table)

		columns, err := database.GetTableColumns(db, table)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect table %s: %w", table, err)
		}
		if len(columns) == 0 {
			report.MissingTables = append(report.MissingTables, table)
			continue
		}

		present := make(map[string]bool, len(columns))
		for _, col := range columns {
			present[col.Field] = true
		}

		var missing []string
		for _, want := range declaredColumns(schema) {
			// Column names are normalized to lowercase by the inspector.
			if !present[strings.ToLower(want)] {
				missing = append(missing, want)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			report.MissingColumns[table] = missing
		}
	}
	sort.Strings(report.MissingTables)
	return report, nil
}

func declaredColumns(s *registry.Schema) []string {
	cols := []string{
		flatten.ColRecordID,
		flatten.ColOrdinal,
		flatten.ColParentTable,
		flatten.ColParentOrdinal,
	}
	for _, f := range s.Fields {
		cols = append(cols, f.Key)
	}
	return cols
}
