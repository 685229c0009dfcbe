// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection with sane pool settings and
// verifies it with a ping before returning. Connection, read and write
// timeouts are encoded into the DSN.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// schema status endpoint. GetTableColumns retrieves live column definitions
// (SHOW COLUMNS on MySQL, PRAGMA table_info on SQLite) and MissingColumns
// compares them against the column set a model expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "servers", []string{"id", "name"})
package database
