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
	`CREATE TABLE IF NOT EXISTS boards (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS board_objects (
		board_id    TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		object_id   TEXT NOT NULL,
		object_type TEXT NOT NULL
		            CHECK(object_type IN ('sticky','text','rect','circle','line','frame','connector')),
		z_index     INTEGER NOT NULL DEFAULT 0,
		data        TEXT NOT NULL,
		PRIMARY KEY (board_id, object_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_board_objects_board ON board_objects(board_id)`,

	`CREATE TABLE IF NOT EXISTS board_transactions (
		id              TEXT PRIMARY KEY,
		board_id        TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		seq             INTEGER NOT NULL,
		actor_user_id   TEXT NOT NULL DEFAULT '',
		actions         TEXT NOT NULL,
		inverse_actions TEXT NOT NULL,
		created_at      TEXT NOT NULL,
		UNIQUE (board_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_board_transactions_board ON board_transactions(board_id, seq)`,
}
