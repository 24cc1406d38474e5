package store

import (
	"fmt"
	"strings"

	"spell-miner/core/flatten"
	"spell-miner/core/registry"
)

// columnType maps a field kind to the column type of a dialect. Integers
// are widened so template IDs never overflow, text stays unbounded.
func columnType(dialect string, kind registry.FieldKind) string {
	if dialect == "sqlite" {
		switch kind {
		case registry.KindBool, registry.KindInt:
			return "INTEGER"
		case registry.KindFloat:
			return "REAL"
		default:
			return "TEXT"
		}
	}
	switch kind {
	case registry.KindBool:
		return "TINYINT(1)"
	case registry.KindInt:
		return "BIGINT"
	case registry.KindFloat:
		return "DOUBLE"
	default:
		return "TEXT"
	}
}

// tableDDL renders the CREATE TABLE statements for one variant schema.
// SQLite declares its record_id index separately, MySQL inlines it.
func tableDDL(dialect string, s *registry.Schema) []string {
	var b strings.Builder

	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS `%s` (\n", s.Table)
	if dialect == "sqlite" {
		b.WriteString("  `id` INTEGER PRIMARY KEY AUTOINCREMENT,\n")
	} else {
		b.WriteString("  `id` BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,\n")
	}
	fmt.Fprintf(&b, "  `%s` %s NOT NULL,\n", flatten.ColRecordID, recordIDType(dialect))
	fmt.Fprintf(&b, "  `%s` INTEGER NOT NULL,\n", flatten.ColOrdinal)
	fmt.Fprintf(&b, "  `%s` %s NOT NULL,\n", flatten.ColParentTable, recordIDType(dialect))
	fmt.Fprintf(&b, "  `%s` INTEGER NOT NULL", flatten.ColParentOrdinal)

	for _, f := range s.Fields {
		fmt.Fprintf(&b, ",\n  `%s` %s", f.Key, columnType(dialect, f.Kind))
	}

	if dialect == "sqlite" {
		b.WriteString("\n)")
		return []string{
			b.String(),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS `idx_%s_record` ON `%s` (`%s`)",
				s.Table, s.Table, flatten.ColRecordID),
		}
	}

	fmt.Fprintf(&b, ",\n  INDEX `idx_%s_record` (`%s`)\n)", s.Table, flatten.ColRecordID)
	return []string{b.String()}
}

func recordIDType(dialect string) string {
	if dialect == "sqlite" {
		return "TEXT"
	}
	return "VARCHAR(255)"
}
