// Package storage provides persistence for MoodCraft.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moodcraft/moodcraft/internal/core"
	"github.com/moodcraft/moodcraft/internal/logging"
)

// RecordStore persists the mood history as a single JSON record: one
// file holding the whole array, newest first. It mirrors the layout
// the browser build kept in local storage, so an exported record can
// be dropped in as-is.
type RecordStore struct {
	path string
}

// NewRecordStore creates a record store at the given file path
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// Load returns the persisted history, newest first. A missing file or
// a record that does not parse as an entry array is treated as an
// empty history, never as an error.
func (s *RecordStore) Load() ([]core.MoodEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []core.MoodEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var entries []core.MoodEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logging.WithField("path", s.path).Warn("mood record is corrupt, treating as empty: %v", err)
		return []core.MoodEntry{}, nil
	}
	if entries == nil {
		entries = []core.MoodEntry{}
	}

	return entries, nil
}

// Append prepends the entry and rewrites the record atomically: the
// new array is written to a temp file in the same directory and
// renamed over the old one, so a failed write leaves the prior state
// readable.
func (s *RecordStore) Append(entry core.MoodEntry) error {
	entries, err := s.Load()
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrAppendFailed, err)
	}

	updated := append([]core.MoodEntry{entry}, entries...)

	data, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrAppendFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: %v", core.ErrAppendFailed, err)
	}

	tmp, err := os.CreateTemp(dir, ".moodcraft-record-*")
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrAppendFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", core.ErrAppendFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", core.ErrAppendFailed, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", core.ErrAppendFailed, err)
	}

	return nil
}

// Purge removes the record file entirely
func (s *RecordStore) Purge() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
