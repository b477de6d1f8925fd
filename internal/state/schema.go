package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS ui_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last_query TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS catalog_meta (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			fetched_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS catalog_items (
			position INTEGER PRIMARY KEY,
			item_id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			media_url TEXT,
			cover_url TEXT,
			body TEXT,
			quote TEXT,
			source TEXT,
			tags TEXT,
			created_at INTEGER,
			initial_time REAL,
			duration REAL
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
