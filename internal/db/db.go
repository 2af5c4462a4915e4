package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sql.DB
}

func New(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		note_type TEXT NOT NULL DEFAULT 'standard',
		note_data TEXT,
		tags TEXT,
		folder_id TEXT,
		pinned INTEGER DEFAULT 0,
		starred INTEGER DEFAULT 0,
		archived INTEGER DEFAULT 0,
		deleted INTEGER DEFAULT 0,
		sort_order INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		archived_at DATETIME,
		deleted_at DATETIME,
		FOREIGN KEY(folder_id) REFERENCES folders(id)
	);
	CREATE TABLE IF NOT EXISTS folders (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		icon TEXT DEFAULT '',
		color TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS tags (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE COLLATE NOCASE,
		color TEXT DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS reminders (
		id TEXT PRIMARY KEY,
		note_id TEXT NOT NULL,
		remind_at DATETIME NOT NULL,
		repeat TEXT DEFAULT '',
		notified INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(note_id) REFERENCES notes(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_notes_title ON notes(title);
	CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at);
	CREATE INDEX IF NOT EXISTS idx_notes_folder ON notes(folder_id);
	CREATE INDEX IF NOT EXISTS idx_notes_deleted ON notes(deleted);
	CREATE INDEX IF NOT EXISTS idx_notes_archived ON notes(archived);
	CREATE INDEX IF NOT EXISTS idx_reminders_note ON reminders(note_id);
	CREATE INDEX IF NOT EXISTS idx_reminders_due ON reminders(remind_at);
	`
	_, err := db.conn.Exec(schema)
	if err != nil {
		return err
	}

	// Migration: add new columns if they don't exist.
	// Ignore errors as columns may already exist.
	db.conn.Exec(`ALTER TABLE notes ADD COLUMN note_type TEXT DEFAULT 'standard'`)
	db.conn.Exec(`ALTER TABLE notes ADD COLUMN note_data TEXT`)
	db.conn.Exec(`ALTER TABLE notes ADD COLUMN pinned INTEGER DEFAULT 0`)
	db.conn.Exec(`ALTER TABLE notes ADD COLUMN starred INTEGER DEFAULT 0`)
	db.conn.Exec(`ALTER TABLE notes ADD COLUMN archived INTEGER DEFAULT 0`)
	db.conn.Exec(`ALTER TABLE notes ADD COLUMN sort_order INTEGER`)
	db.conn.Exec(`ALTER TABLE notes ADD COLUMN archived_at DATETIME`)
	db.conn.Exec(`ALTER TABLE notes ADD COLUMN deleted_at DATETIME`)

	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}
