package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS production_entries (
		id                 TEXT PRIMARY KEY,
		production_date    TEXT NOT NULL,
		time_slot          TEXT NOT NULL,
		cultivar           TEXT NOT NULL DEFAULT '',
		tops_lbs           REAL NOT NULL DEFAULT 0,
		smalls_lbs         REAL NOT NULL DEFAULT 0,
		trimmers           REAL NOT NULL DEFAULT 0,
		effective_trimmers REAL,
		buckers            REAL NOT NULL DEFAULT 0,
		notes              TEXT NOT NULL DEFAULT '',
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL,
		UNIQUE(production_date, time_slot)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_production_entries_date
		ON production_entries(production_date)`,

	`CREATE TABLE IF NOT EXISTS system_config (
		key         TEXT PRIMARY KEY,
		value       TEXT NOT NULL,
		value_type  TEXT NOT NULL DEFAULT 'string'
		            CHECK(value_type IN ('string','number','boolean','json')),
		category    TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		updated_at  TEXT,
		updated_by  TEXT NOT NULL DEFAULT 'system'
	)`,

	`CREATE TABLE IF NOT EXISTS data_version (
		key        TEXT PRIMARY KEY,
		version    INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT
	)`,

	// The scoreboard change counter always exists so pollers never special-case
	// a missing row.
	`INSERT OR IGNORE INTO data_version (key, version) VALUES ('scoreboard', 0)`,
}
