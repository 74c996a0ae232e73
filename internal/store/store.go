package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the progress document inside the data directory.
const FileName = "habit_builder_progress.json"

// DefaultPath returns the progress file location under the user config
// directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(configDir, "habitbuilder", FileName), nil
}

// Store owns the progress document on disk. Loading never fails: a
// missing, unreadable, or corrupt document yields the default state so
// the app is always usable.
type Store struct {
	path string
	now  func() time.Time
}

func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// WithClock overrides the time source used for default seeding.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Path() string { return s.path }

// Dir returns the directory holding the document; audio assets and
// exports live alongside it.
func (s *Store) Dir() string { return filepath.Dir(s.path) }

// Load reads and migrates the document, falling back to defaults on
// any failure.
func (s *Store) Load() *State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Default(s.now())
	}
	st, err := decode(data, s.now())
	if err != nil {
		return Default(s.now())
	}
	return st
}

// Save writes the full document, creating the directory first. Failure
// is reported but the in-memory state remains authoritative.
func (s *Store) Save(st *State) error {
	return writeDocument(s.path, st)
}

func writeDocument(path string, st *State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}
