// Package server provides the HTTP server and routing for the fund
// analytics API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/kamalneel/agrawal-estate-sub000/internal/allocation"
	"github.com/kamalneel/agrawal-estate-sub000/internal/config"
	"github.com/kamalneel/agrawal-estate-sub000/internal/projection"
	"github.com/kamalneel/agrawal-estate-sub000/internal/scan"
	"github.com/kamalneel/agrawal-estate-sub000/internal/scoring"
	"github.com/kamalneel/agrawal-estate-sub000/internal/server/handlers"
)

// Config holds server configuration
type Config struct {
	Log    zerolog.Logger
	Cfg    *config.Config
	Scorer *scoring.Scorer
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
}

// New creates a new HTTP server wired to the analytics engine.
func New(cfg Config) *Server {
	log := cfg.Log.With().Str("module", "server").Logger()

	scorer := cfg.Scorer
	if scorer == nil {
		scorer = scoring.NewScorer()
	}
	pool := scan.NewWorkerPool(cfg.Cfg.ScanWorkers, scorer, cfg.Log)
	advisor := allocation.NewAdvisor(scorer)
	projector := projection.NewProjector(cfg.Cfg.ReferenceDate)

	analyticsHandlers := handlers.New(handlers.Config{
		Scorer:    scorer,
		Pool:      pool,
		Advisor:   advisor,
		Projector: projector,
		Log:       cfg.Log,
	})

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/api", func(r chi.Router) {
		analyticsHandlers.RegisterRoutes(r)
	})

	return &Server{
		router: router,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Cfg.Port),
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		log: log,
	}
}

// Start begins listening. Blocks until the server stops.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("HTTP server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the mux for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
