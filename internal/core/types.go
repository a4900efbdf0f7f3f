// Package core defines the fundamental types for MoodCraft.
// These types are the DNA of the entire system.
package core

import (
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// MOOD ENTRY - The sole persisted entity
// -----------------------------------------------------------------------------

// MoodEntry is one persisted record of a mood submission. Entries are
// immutable once created: the store only ever appends, and the whole
// history is purged as a unit if the user asks for that.
type MoodEntry struct {
	ID        string    `json:"id"`         // UUID, never changes
	Mood      string    `json:"mood"`       // known label or free-form string (manual path)
	Intensity int       `json:"intensity"`  // 0..10
	Notes     string    `json:"notes"`      // original free text
	CreatedAt time.Time `json:"created_at"` // set once, UTC

	// Recommendations captured at creation time
	MusicPlayed []string `json:"music_played"`
	Actions     []string `json:"actions"`
}

// -----------------------------------------------------------------------------
// LABEL - Tagged view over the mood string
// -----------------------------------------------------------------------------

// Label is a known mood label. The mood field of an entry may carry an
// arbitrary string (manual entry path); code that needs the closed set
// must go through ParseLabel and handle the unrecognized case.
type Label string

const (
	LabelHappy   Label = "Happy"
	LabelSad     Label = "Sad"
	LabelAngry   Label = "Angry"
	LabelAnxious Label = "Anxious"
	LabelCalm    Label = "Calm"
	LabelNeutral Label = "Neutral"
)

// Labels lists the closed label set in classifier priority order.
var Labels = []Label{LabelHappy, LabelSad, LabelAngry, LabelAnxious, LabelCalm, LabelNeutral}

// ParseLabel maps a raw mood string onto the closed label set.
// The second return is false for free-form moods; callers must treat
// that as a valid state, never an error.
func ParseLabel(s string) (Label, bool) {
	for _, l := range Labels {
		if strings.EqualFold(string(l), s) {
			return l, true
		}
	}
	return "", false
}

// -----------------------------------------------------------------------------
// WINDOW - Time-range filter applied before aggregation
// -----------------------------------------------------------------------------

// Window is a time-range filter for aggregation queries.
type Window string

const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

// ParseWindow validates a window string, defaulting to week when empty.
func ParseWindow(s string) (Window, error) {
	switch Window(strings.ToLower(s)) {
	case "":
		return WindowWeek, nil
	case WindowWeek:
		return WindowWeek, nil
	case WindowMonth:
		return WindowMonth, nil
	case WindowYear:
		return WindowYear, nil
	}
	return "", ErrInvalidWindow
}

// -----------------------------------------------------------------------------
// MUSIC CATEGORY - Closed set of suggestion tags handed to the player
// -----------------------------------------------------------------------------

// MusicCategory is a suggested playlist category. The audio player is an
// external collaborator; the core only ever hands over these tags.
type MusicCategory string

const (
	MusicHappy MusicCategory = "happy"
	MusicCalm  MusicCategory = "calm"
	MusicFocus MusicCategory = "focus"
	MusicLofi  MusicCategory = "lofi" // default when history is empty
)

// MusicCategories lists all valid categories.
var MusicCategories = []MusicCategory{MusicHappy, MusicCalm, MusicFocus, MusicLofi}

// ParseMusicCategory validates a category tag.
func ParseMusicCategory(s string) (MusicCategory, bool) {
	for _, c := range MusicCategories {
		if string(c) == strings.ToLower(s) {
			return c, true
		}
	}
	return "", false
}
