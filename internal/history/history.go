// Package history owns the mood history: an append-only, newest-first
// collection of entries behind a pluggable storage backend, with a
// local change signal so independent views converge without a manual
// reload.
package history

import (
	"sync"

	"github.com/moodcraft/moodcraft/internal/core"
)

// Backend is a durable store for the mood history. Implementations
// must return entries newest first from Load, must treat corrupt
// persisted data as an empty history rather than an error, and must
// leave the prior state readable when Append fails.
type Backend interface {
	Load() ([]core.MoodEntry, error)
	Append(entry core.MoodEntry) error
}

// Store composes a Backend with change notification. One Store is
// created per process and handed to everything that reads or writes
// history; there is no hidden package-level state.
type Store struct {
	backend Backend

	mu        sync.RWMutex
	listeners []func()
}

// New creates a store over the given backend
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load returns the persisted history, newest first
func (s *Store) Load() ([]core.MoodEntry, error) {
	return s.backend.Load()
}

// Latest returns the most recent entry, or false when the history is
// empty or unreadable.
func (s *Store) Latest() (core.MoodEntry, bool) {
	entries, err := s.backend.Load()
	if err != nil || len(entries) == 0 {
		return core.MoodEntry{}, false
	}
	return entries[0], true
}

// Append persists the entry and, on success, fires the change signal.
// Listeners run synchronously on the appending goroutine; each is
// expected to re-Load and converge on the new state.
func (s *Store) Append(entry core.MoodEntry) error {
	if err := s.backend.Append(entry); err != nil {
		return err
	}

	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}

	return nil
}

// Subscribe registers a listener for the change signal. There is no
// payload and no ordering guarantee between listeners.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
