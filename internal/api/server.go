// Package api provides the HTTP API server for MoodCraft.
package api

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/moodcraft/moodcraft/internal/config"
	"github.com/moodcraft/moodcraft/internal/history"
	"github.com/moodcraft/moodcraft/internal/journal"
	"github.com/moodcraft/moodcraft/internal/logging"
)

//go:embed static/*
var staticFiles embed.FS

// Server is the HTTP API server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server

	// Components
	store   *history.Store
	journal *journal.Service
	wsHub   *WebSocketHub

	// Submission UX
	revealDelayMS int
}

// Config for the server
type Config struct {
	Port       int
	Store      *history.Store
	Journal    *journal.Service
	Submission config.SubmissionConfig
}

// New creates a new API server
func New(cfg Config) *Server {
	s := &Server{
		store:         cfg.Store,
		journal:       cfg.Journal,
		wsHub:         NewWebSocketHub(),
		revealDelayMS: cfg.Submission.RevealDelayMS,
	}

	s.setupRouter()

	// Dashboards connected over the websocket get the same change
	// signal as in-process readers.
	if s.store != nil {
		s.store.Subscribe(func() {
			s.Broadcast("entry_created", nil)
		})
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRouter configures all routes
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Entries
		r.Post("/entries", s.handleSubmitFeeling)
		r.Post("/entries/manual", s.handleManualEntry)
		r.Get("/entries", s.handleGetEntries)

		// Insights
		r.Get("/insights/daily", s.handleDailySeries)
		r.Get("/insights/distribution", s.handleDistribution)
		r.Get("/insights/summary", s.handleInsightSummary)

		// Music
		r.Get("/music/category", s.handleMusicCategory)
		r.Get("/music/playlists", s.handleListPlaylists)
		r.Get("/music/playlists/{category}", s.handleGetPlaylist)

		// Misc
		r.Get("/quote", s.handleDailyQuote)
		r.Get("/stats", s.handleGetStats)
		r.Get("/health", s.handleHealth)
	})

	// WebSocket
	r.Get("/ws", s.handleWebSocket)

	// Static files (Web UI)
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to get static files: %v", err))
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		data, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(data)
	})

	fileServer := http.FileServer(http.FS(staticFS))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	s.router = r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	// Start WebSocket hub
	go s.wsHub.Run()

	logging.Info("API server starting on http://localhost%s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Broadcast sends a message to all WebSocket clients
func (s *Server) Broadcast(msgType string, data interface{}) {
	s.wsHub.Broadcast(WebSocketMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now(),
	})
}

// --- Response helpers ---

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// --- Misc handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.Load()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	stats := map[string]interface{}{
		"total_entries": len(entries),
	}
	if len(entries) > 0 {
		stats["latest_mood"] = entries[0].Mood
		stats["latest_at"] = entries[0].CreatedAt
	}

	s.respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleDailyQuote(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.journal.DailyQuote())
}
