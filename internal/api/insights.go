package api

import (
	"net/http"
	"time"

	"github.com/moodcraft/moodcraft/internal/core"
	"github.com/moodcraft/moodcraft/internal/insights"
)

func (s *Server) parseWindow(w http.ResponseWriter, r *http.Request) (core.Window, bool) {
	window, err := core.ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "window must be week, month or year")
		return "", false
	}
	return window, true
}

func (s *Server) handleDailySeries(w http.ResponseWriter, r *http.Request) {
	window, ok := s.parseWindow(w, r)
	if !ok {
		return
	}

	entries, err := s.store.Load()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	series := insights.DailyMoodSeries(entries, window, time.Now().UTC())
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"window": window,
		"series": series,
	})
}

func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	window, ok := s.parseWindow(w, r)
	if !ok {
		return
	}

	entries, err := s.store.Load()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	counts := insights.EmotionDistribution(entries, window, time.Now().UTC())
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"window":       window,
		"distribution": counts,
	})
}

func (s *Server) handleInsightSummary(w http.ResponseWriter, r *http.Request) {
	window, ok := s.parseWindow(w, r)
	if !ok {
		return
	}

	entries, err := s.store.Load()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	now := time.Now().UTC()
	series := insights.DailyMoodSeries(entries, window, now)

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"window":  window,
		"insight": insights.Insight(series),
		"series":  series,
		"entries": len(insights.Filter(entries, window, now)),
	})
}
