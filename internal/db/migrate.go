package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		blocks_json TEXT NOT NULL DEFAULT '[]',
		page_settings_json TEXT NOT NULL DEFAULT '{}',
		language TEXT NOT NULL DEFAULT 'en',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS shared_styles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		block_type TEXT NOT NULL,
		settings_json TEXT NOT NULL DEFAULT '{}',
		styles_json TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shared_styles_block_type ON shared_styles(block_type)`,
	`CREATE TABLE IF NOT EXISTS translations (
		document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
		language TEXT NOT NULL,
		block_id TEXT NOT NULL,
		field TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (document_id, language, block_id, field)
	)`,
}

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
