package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS reminder_state (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  last_shown_day TEXT NOT NULL
);
`,
	},
	{
		version: 2,
		name:    "snapshot_cache",
		sql: `
CREATE TABLE IF NOT EXISTS catalog_cache (
  kind TEXT NOT NULL CHECK(kind IN ('category', 'location')),
  payload TEXT NOT NULL,
  fetched_at DATETIME NOT NULL,
  PRIMARY KEY(kind)
);

CREATE TABLE IF NOT EXISTS item_cache (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  payload TEXT NOT NULL,
  fetched_at DATETIME NOT NULL
);
`,
	},
	{
		version: 3,
		name:    "shopping_cache",
		sql: `
CREATE TABLE IF NOT EXISTS shopping_cache (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  payload TEXT NOT NULL,
  fetched_at DATETIME NOT NULL
);
`,
	},
}

// ApplyMigrations brings the state database up to the current schema. Safe
// to run on every start; applied versions are skipped.
func ApplyMigrations(sqldb *sql.DB) error {
	if _, err := sqldb.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := sqldb.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := sqldb.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}
	return nil
}
