// Package journal keeps a local SQLite record of runs and their items for
// later inspection. It is strictly best-effort observability: every failure
// is logged and swallowed, a broken journal never fails a transfer.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // sqlite driver
)

// Journal is a sqlite-backed run journal. One Journal instance serves one
// run, identified by a fresh uuid.
type Journal struct {
	db    *sql.DB
	runID string
}

// New opens (and if needed creates) the journal database at dbFile.
func New(dbFile string) (*Journal, error) {
	log.Printf("[INFO] journal at %s", dbFile)

	db, err := sql.Open("sqlite", dbFile)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	// single writer, same as any local sqlite
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx := context.Background()
	if _, err = db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err = db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			role TEXT NOT NULL,
			window INTEGER NOT NULL,
			started INTEGER NOT NULL,
			finished INTEGER,
			status TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS items (
			run_id TEXT NOT NULL,
			idx INTEGER NOT NULL,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			hash TEXT NOT NULL,
			status TEXT NOT NULL,
			PRIMARY KEY (run_id, idx)
		);
	`
	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Journal{db: db, runID: uuid.New().String()}, nil
}

// RunID returns the identifier of the current run.
func (j *Journal) RunID() string { return j.runID }

// Begin records the start of a run.
func (j *Journal) Begin(role string, window int64) {
	_, err := j.db.Exec("INSERT INTO runs (id, role, window, started, status) VALUES (?, ?, ?, ?, ?)",
		j.runID, role, window, time.Now().Unix(), "started")
	if err != nil {
		log.Printf("[WARN] journal: failed to record run start: %v", err)
	}
}

// Item records the outcome of one item.
func (j *Journal) Item(index int, name, kind, hash, status string) {
	_, err := j.db.Exec("INSERT OR REPLACE INTO items (run_id, idx, name, kind, hash, status) VALUES (?, ?, ?, ?, ?, ?)",
		j.runID, index, name, kind, hash, status)
	if err != nil {
		log.Printf("[WARN] journal: failed to record item %d: %v", index, err)
	}
}

// End records the final status of the run.
func (j *Journal) End(status string) {
	_, err := j.db.Exec("UPDATE runs SET finished = ?, status = ? WHERE id = ?",
		time.Now().Unix(), status, j.runID)
	if err != nil {
		log.Printf("[WARN] journal: failed to record run end: %v", err)
	}
}

// Close releases the database.
func (j *Journal) Close() error { return j.db.Close() }

// Nop discards everything; used when no journal file is configured.
type Nop struct{}

// Begin does nothing.
func (Nop) Begin(string, int64) {}

// Item does nothing.
func (Nop) Item(int, string, string, string, string) {}

// End does nothing.
func (Nop) End(string) {}

// Close does nothing.
func (Nop) Close() error { return nil }
