// Package state persists the reference date as date.json in the config directory.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/sobriety/internal/calendar"
	"github.com/theirongolddev/sobriety/internal/model"
)

// FileName is the name of the persisted date file.
const FileName = "date.json"

var (
	// ErrNotFound means no date has been saved yet.
	ErrNotFound = errors.New("date file not found")
	// ErrCorrupt means the date file exists but does not hold a valid date.
	ErrCorrupt = errors.New("date file is corrupt")
)

// Store reads and writes the reference date.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created on first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the full path to the date file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// record mirrors the on-disk JSON. Pointers detect missing fields.
type record struct {
	Day   *int `json:"day"`
	Month *int `json:"month"`
	Year  *int `json:"year"`
}

// Load returns the saved date. It returns an error wrapping ErrNotFound when
// no file exists and ErrCorrupt when the file cannot be parsed or does not
// name a real calendar date. Whether the date is in the past is not checked.
func (s *Store) Load() (model.Date, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return model.Date{}, ErrNotFound
		}
		return model.Date{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.Date{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if rec.Day == nil || rec.Month == nil || rec.Year == nil {
		return model.Date{}, fmt.Errorf("%w: missing day, month or year", ErrCorrupt)
	}

	d := model.NewDate(*rec.Year, *rec.Month, *rec.Day)
	if !calendar.Valid(d) {
		return model.Date{}, fmt.Errorf("%w: %s is not a calendar date", ErrCorrupt, d)
	}
	return d, nil
}

// Save writes d, replacing any previous file, and returns the file path.
// The JSON is written to a temp file in the same directory and renamed over
// the old one, so a crash leaves either the old or the new date on disk.
func (s *Store) Save(d model.Date) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encoding date: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, FileName+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("writing date file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("syncing date file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing date file: %w", err)
	}

	path := s.Path()
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("replacing date file: %w", err)
	}
	return path, nil
}
