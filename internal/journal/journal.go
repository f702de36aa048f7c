// Package journal records executed renames in a SQLite database so a run
// can be audited (or undone by hand) afterwards.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	directory  TEXT NOT NULL,
	started_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS renames (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     INTEGER NOT NULL REFERENCES runs(id),
	directory  TEXT NOT NULL,
	old_name   TEXT NOT NULL,
	new_name   TEXT NOT NULL,
	status     TEXT NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_renames_run ON renames(run_id);
`

// Entry is one rename attempt.
type Entry struct {
	ID        int64
	RunID     int64
	Directory string
	OldName   string
	NewName   string
	Status    string // "renamed", "unchanged" or "rename failed".
	Error     string
	CreatedAt time.Time
}

// Journal is an open rename journal.
type Journal struct {
	db   *sql.DB
	path string
}

// Open opens or creates the journal at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// PRAGMAs are per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize journal schema: %w", err)
	}
	return &Journal{db: db, path: path}, nil
}

// Path returns the database file path.
func (j *Journal) Path() string { return j.path }

// Close closes the database.
func (j *Journal) Close() error { return j.db.Close() }

// BeginRun registers a run over directory and returns its ID.
func (j *Journal) BeginRun(directory string) (int64, error) {
	res, err := j.db.Exec(
		"INSERT INTO runs (directory, started_at) VALUES (?, ?)",
		directory, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("begin run: %w", err)
	}
	return res.LastInsertId()
}

// Record appends e. A zero CreatedAt is set to now.
func (j *Journal) Record(e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := j.db.Exec(
		`INSERT INTO renames (run_id, directory, old_name, new_name, status, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Directory, e.OldName, e.NewName, e.Status, e.Error, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record %s: %w", e.OldName, err)
	}
	return nil
}

// Entries returns the entries of runID in insertion order.
func (j *Journal) Entries(runID int64) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, run_id, directory, old_name, new_name, status, error, created_at
		 FROM renames WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Directory, &e.OldName, &e.NewName,
			&e.Status, &e.Error, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
