package db

import (
	"database/sql"
	"fmt"
)

// StateTable holds the planner's persisted keys. Each row is one JSON
// document keyed by its storage name.
const StateTable = "app_state"

// Migrate runs all schema migrations. Statements are idempotent so they are
// re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
