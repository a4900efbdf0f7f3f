package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/moodcraft/moodcraft/internal/core"
)

// submitResponse is the payload returned for a feeling submission.
// reveal_after_ms tells the client how long to hold the analysis
// behind the "thinking" animation; it has no correctness meaning.
type submitResponse struct {
	Entry                core.MoodEntry `json:"entry"`
	Mood                 string         `json:"mood"`
	Intensity            int            `json:"intensity"`
	Summary              string         `json:"summary"`
	SuggestedActions     []string       `json:"suggested_actions"`
	MusicRecommendations []string       `json:"music_recommendations"`
	Narrative            string         `json:"narrative"`
	Saved                bool           `json:"saved"`
	RevealAfterMS        int            `json:"reveal_after_ms"`
}

func (s *Server) handleSubmitFeeling(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sub, err := s.journal.SubmitFeeling(input.Text)
	if sub == nil {
		if errors.Is(err, core.ErrBlankFeeling) {
			s.respondError(w, http.StatusBadRequest, "feeling text is blank")
			return
		}
		s.respondError(w, http.StatusInternalServerError, "submission failed")
		return
	}

	resp := submitResponse{
		Entry:                sub.Entry,
		Mood:                 string(sub.Analysis.Mood),
		Intensity:            sub.Analysis.Intensity,
		Summary:              sub.Analysis.Summary,
		SuggestedActions:     sub.Analysis.SuggestedActions,
		MusicRecommendations: sub.Analysis.MusicRecommendations,
		Narrative:            sub.Narrative,
		Saved:                sub.Saved,
		RevealAfterMS:        s.revealDelayMS,
	}

	// A store failure still returns the analysis: the view shows the
	// response and flags that it was not saved.
	if err != nil {
		s.respondJSON(w, http.StatusOK, resp)
		return
	}

	s.respondJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleManualEntry(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Mood      string `json:"mood"`
		Intensity int    `json:"intensity"`
		Notes     string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, err := s.journal.SubmitManual(input.Mood, input.Intensity, input.Notes)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) || errors.Is(err, core.ErrInvalidIntensity) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleGetEntries(w http.ResponseWriter, r *http.Request) {
	mood := r.URL.Query().Get("mood")

	limit := 50 // Default
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.journal.History(mood, limit)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, entries)
}
