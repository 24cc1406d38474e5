// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL and SQLite connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection for the configured
// driver. Connection establishment is agnostic to the spell table layout;
// the Schema Inspector relies on knowing the expected layout.
//
// # Schema Inspection
//
// The package includes tools to inspect the live database schema. The
// integrity check uses them to verify that the tables created for the spell
// variant catalog match the columns the registry declares.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "spell_templates")
package database
