package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExportFileName is the default export target alongside the document.
const ExportFileName = "habit_builder_export.json"

// ExportTo writes the state as a standalone document at path.
func (s *Store) ExportTo(st *State, path string) error {
	return writeDocument(path, st)
}

// ImportFrom reads a document at path and runs it through the same
// additive migration as Load. Unlike Load, a missing or corrupt import
// file is an error the caller must see.
func (s *Store) ImportFrom(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	st, err := decode(data, s.now())
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Reset backs up the current state to a timestamped export, then
// replaces and persists the default state. The backup file name is
// returned; a failed backup aborts the reset.
func (s *Store) Reset(st *State) (*State, string, error) {
	now := s.now()
	backup := filepath.Join(s.Dir(), fmt.Sprintf("habit_builder_backup_%s.json", now.Format("20060102_150405")))
	if err := s.ExportTo(st, backup); err != nil {
		return nil, "", fmt.Errorf("backup before reset: %w", err)
	}
	fresh := Default(now)
	if err := s.Save(fresh); err != nil {
		return nil, "", err
	}
	return fresh, backup, nil
}
