// Package store provides a SQLite-backed log of every reference date saved.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/sobriety/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// FileName is the history database file name inside the config directory.
const FileName = "history.db"

// Source records how a saved date was chosen.
type Source string

const (
	SourceEntered Source = "entered"
	SourceToday   Source = "today"
)

// Entry is one saved reference date.
type Entry struct {
	ID      int64
	SavedAt time.Time
	Date    model.Date
	Source  Source
}

// History provides SQLite-backed history of saved dates.
type History struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// Record appends a saved date.
func (h *History) Record(d model.Date, src Source, at time.Time) error {
	_, err := h.db.Exec(`INSERT INTO saved_dates (saved_at, day, month, year, source)
		VALUES (?, ?, ?, ?, ?)`,
		at.UTC().Format(time.RFC3339Nano), d.Day, d.Month, d.Year, string(src),
	)
	if err != nil {
		return fmt.Errorf("recording saved date: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recently recorded first. A limit <= 0 returns all.
func (h *History) Recent(limit int) ([]Entry, error) {
	query := `SELECT id, saved_at, day, month, year, source
		FROM saved_dates ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var savedAt, src string
		if err := rows.Scan(&e.ID, &savedAt, &e.Date.Day, &e.Date.Month, &e.Date.Year, &src); err != nil {
			return nil, err
		}
		e.SavedAt, _ = time.Parse(time.RFC3339Nano, savedAt)
		e.Source = Source(src)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of recorded entries.
func (h *History) Count() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM saved_dates").Scan(&count)
	return count, err
}
