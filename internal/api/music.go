package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodcraft/moodcraft/internal/core"
	"github.com/moodcraft/moodcraft/internal/music"
)

func (s *Server) handleMusicCategory(w http.ResponseWriter, r *http.Request) {
	category := s.journal.SuggestedMusicCategory()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
	})
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, music.Playlists())
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "category")

	category, ok := core.ParseMusicCategory(raw)
	if !ok {
		s.respondError(w, http.StatusNotFound, "unknown playlist category")
		return
	}

	playlist, ok := music.PlaylistFor(category)
	if !ok {
		s.respondError(w, http.StatusNotFound, "no playlist for category")
		return
	}

	s.respondJSON(w, http.StatusOK, playlist)
}
