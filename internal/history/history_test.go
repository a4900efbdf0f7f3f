package history

import (
	"errors"
	"testing"
	"time"

	"github.com/moodcraft/moodcraft/internal/core"
)

// memBackend is an in-memory Backend for testing
type memBackend struct {
	entries   []core.MoodEntry
	appendErr error
}

func (b *memBackend) Load() ([]core.MoodEntry, error) {
	return append([]core.MoodEntry{}, b.entries...), nil
}

func (b *memBackend) Append(entry core.MoodEntry) error {
	if b.appendErr != nil {
		return b.appendErr
	}
	b.entries = append([]core.MoodEntry{entry}, b.entries...)
	return nil
}

func testEntry(id string) core.MoodEntry {
	return core.MoodEntry{
		ID:        id,
		Mood:      "Happy",
		Intensity: 5,
		CreatedAt: time.Now().UTC(),
	}
}

func TestStore_AppendThenLoad_NewestFirst(t *testing.T) {
	store := New(&memBackend{})

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Append(testEntry(id)); err != nil {
			t.Fatalf("Append(%s) error = %v", id, err)
		}
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	for i, want := range []string{"c", "b", "a"} {
		if entries[i].ID != want {
			t.Errorf("entries[%d].ID = %s, want %s", i, entries[i].ID, want)
		}
	}
}

func TestStore_Latest(t *testing.T) {
	store := New(&memBackend{})

	if _, ok := store.Latest(); ok {
		t.Error("Latest() on empty history should return false")
	}

	store.Append(testEntry("first"))
	store.Append(testEntry("second"))

	latest, ok := store.Latest()
	if !ok {
		t.Fatal("Latest() should return true after appends")
	}
	if latest.ID != "second" {
		t.Errorf("Latest().ID = %s, want second", latest.ID)
	}
}

func TestStore_AppendNotifiesAllSubscribers(t *testing.T) {
	backend := &memBackend{}
	store := New(backend)

	// Two independent readers, each re-loading on the change signal.
	var readerA, readerB []core.MoodEntry
	store.Subscribe(func() {
		readerA, _ = store.Load()
	})
	store.Subscribe(func() {
		readerB, _ = store.Load()
	})

	if err := store.Append(testEntry("shared")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if len(readerA) != 1 || readerA[0].ID != "shared" {
		t.Errorf("reader A did not observe the new entry: %+v", readerA)
	}
	if len(readerB) != 1 || readerB[0].ID != "shared" {
		t.Errorf("reader B did not observe the new entry: %+v", readerB)
	}
}

func TestStore_FailedAppendDoesNotNotify(t *testing.T) {
	backend := &memBackend{appendErr: errors.New("quota exceeded")}
	store := New(backend)

	notified := false
	store.Subscribe(func() { notified = true })

	if err := store.Append(testEntry("x")); err == nil {
		t.Fatal("Append() should propagate backend failure")
	}
	if notified {
		t.Error("change signal must not fire on failed append")
	}

	entries, _ := store.Load()
	if len(entries) != 0 {
		t.Errorf("history should be untouched after failed append, got %d entries", len(entries))
	}
}
