// Package storage provides persistence for MoodCraft.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/moodcraft/moodcraft/internal/core"
	"github.com/moodcraft/moodcraft/internal/logging"
)

// EntryStore is the SQLite-backed mood history backend. Entries are
// only ever inserted; there is no update path.
type EntryStore struct {
	db *DB
}

// NewEntryStore creates a new entry store
func NewEntryStore(db *DB) *EntryStore {
	return &EntryStore{db: db}
}

// Append inserts one entry. The insert either lands completely or not
// at all; on failure the prior history remains readable.
func (s *EntryStore) Append(entry core.MoodEntry) error {
	musicPlayed, _ := json.Marshal(entry.MusicPlayed)
	actions, _ := json.Marshal(entry.Actions)

	_, err := s.db.conn.Exec(`
		INSERT INTO mood_entries (
		    id, mood, intensity, notes, music_played, actions, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		entry.ID, entry.Mood, entry.Intensity, entry.Notes,
		string(musicPlayed), string(actions), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrAppendFailed, err)
	}

	return nil
}

// Load returns the full history, newest first. Rows with malformed
// recommendation blobs keep their scalar fields; the blob is simply
// dropped rather than failing the whole read.
func (s *EntryStore) Load() ([]core.MoodEntry, error) {
	rows, err := s.db.conn.Query(`
		SELECT id, mood, intensity, notes, music_played, actions, created_at
		FROM mood_entries
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []core.MoodEntry{}
	for rows.Next() {
		var entry core.MoodEntry
		var musicPlayed, actions string

		err := rows.Scan(
			&entry.ID, &entry.Mood, &entry.Intensity, &entry.Notes,
			&musicPlayed, &actions, &entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(musicPlayed), &entry.MusicPlayed); err != nil {
			logging.WithField("entry", entry.ID).Warn("dropping malformed music_played blob")
		}
		if err := json.Unmarshal([]byte(actions), &entry.Actions); err != nil {
			logging.WithField("entry", entry.ID).Warn("dropping malformed actions blob")
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Count returns the total number of entries
func (s *EntryStore) Count() (int, error) {
	var count int
	err := s.db.conn.QueryRow("SELECT COUNT(*) FROM mood_entries").Scan(&count)
	return count, err
}

// Purge deletes the whole history. Single entries are never deleted;
// this exists only for the explicit whole-history reset.
func (s *EntryStore) Purge() error {
	_, err := s.db.conn.Exec("DELETE FROM mood_entries")
	return err
}
