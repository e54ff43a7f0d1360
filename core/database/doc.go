// Package database handles database connections and schema inspection for the join log.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based on
// the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, tunes the connection pool and pings the database.
// Dialector is exposed separately so tests can build GORM on top of sqlmock.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read a table's columns (SHOW COLUMNS on MySQL,
// PRAGMA table_info on SQLite). The join log uses them to verify its table after
// migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "invite_joins", []string{"id", "guild_id"})
package database
