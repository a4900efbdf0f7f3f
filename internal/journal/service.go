// Package journal implements the mood journaling service: it wires
// the classifier to the history store and answers the convenience
// queries the views need.
package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodcraft/moodcraft/internal/classifier"
	"github.com/moodcraft/moodcraft/internal/core"
	"github.com/moodcraft/moodcraft/internal/history"
	"github.com/moodcraft/moodcraft/internal/logging"
	"github.com/moodcraft/moodcraft/internal/narrative"
)

// musicByMood maps the closed label set to the player's category tags.
// Anything else, including an empty history, falls back to lofi.
var musicByMood = map[core.Label]core.MusicCategory{
	core.LabelHappy:   core.MusicHappy,
	core.LabelCalm:    core.MusicCalm,
	core.LabelAngry:   core.MusicCalm,
	core.LabelAnxious: core.MusicCalm,
	core.LabelNeutral: core.MusicFocus,
	core.LabelSad:     core.MusicLofi,
}

// Service orchestrates feeling submissions and history queries
type Service struct {
	store *history.Store
	now   func() time.Time
}

// New creates a journal service over the given history store
func New(store *history.Store) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Submission is the result of a feeling submission. Analysis is always
// populated; Saved reports whether the entry reached the store.
type Submission struct {
	Entry     core.MoodEntry    `json:"entry"`
	Analysis  classifier.Result `json:"analysis"`
	Narrative string            `json:"narrative"`
	Saved     bool              `json:"saved"`
}

// SubmitFeeling classifies the text, persists a new entry and picks a
// narrative response. Blank text is rejected with core.ErrBlankFeeling.
// When the store rejects the write, the returned Submission still
// carries the analysis for display and the error reports the failure;
// the history is left untouched.
func (s *Service) SubmitFeeling(text string) (*Submission, error) {
	if strings.TrimSpace(text) == "" {
		return nil, core.ErrBlankFeeling
	}

	result := classifier.Classify(text)

	entry := core.MoodEntry{
		ID:          uuid.New().String(),
		Mood:        string(result.Mood),
		Intensity:   result.Intensity,
		Notes:       text,
		CreatedAt:   s.now(),
		MusicPlayed: result.MusicRecommendations,
		Actions:     result.SuggestedActions,
	}

	sub := &Submission{
		Entry:     entry,
		Analysis:  result,
		Narrative: narrative.Pick(result.Mood),
	}

	if err := s.store.Append(entry); err != nil {
		logging.WithField("mood", entry.Mood).Error("entry not saved: %v", err)
		return sub, fmt.Errorf("submit feeling: %w", err)
	}
	sub.Saved = true

	return sub, nil
}

// SubmitManual records an entry the user filled in by hand. The mood
// may be any string and the notes may be empty; no classification
// runs.
func (s *Service) SubmitManual(mood string, intensity int, notes string) (core.MoodEntry, error) {
	if strings.TrimSpace(mood) == "" {
		return core.MoodEntry{}, fmt.Errorf("%w: mood is required", core.ErrInvalidInput)
	}
	if intensity < 0 || intensity > 10 {
		return core.MoodEntry{}, core.ErrInvalidIntensity
	}

	entry := core.MoodEntry{
		ID:        uuid.New().String(),
		Mood:      strings.TrimSpace(mood),
		Intensity: intensity,
		Notes:     notes,
		CreatedAt: s.now(),
	}

	if err := s.store.Append(entry); err != nil {
		return core.MoodEntry{}, fmt.Errorf("submit manual entry: %w", err)
	}

	return entry, nil
}

// History returns the persisted entries, newest first, optionally
// filtered by mood (case-insensitive equality on the raw string) and
// truncated to limit when limit > 0.
func (s *Service) History(mood string, limit int) ([]core.MoodEntry, error) {
	entries, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	if mood != "" {
		filtered := entries[:0:0]
		for _, e := range entries {
			if strings.EqualFold(e.Mood, mood) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

// SuggestedMusicCategory maps the most recent entry's mood to a player
// category. Empty history and free-form moods suggest lofi.
func (s *Service) SuggestedMusicCategory() core.MusicCategory {
	latest, ok := s.store.Latest()
	if !ok {
		return core.MusicLofi
	}

	label, ok := core.ParseLabel(latest.Mood)
	if !ok {
		return core.MusicLofi
	}

	if category, ok := musicByMood[label]; ok {
		return category
	}
	return core.MusicLofi
}
