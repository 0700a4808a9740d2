// Package server exposes the upload and chart pipeline over HTTP.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ukaji3/excelviz-go/internal/config"
	"github.com/ukaji3/excelviz-go/internal/session"
	"github.com/ukaji3/excelviz-go/pkg/excelviz"
)

// Server routes API requests to the session store.
type Server struct {
	store  *session.Store
	opts   excelviz.Options
	router *chi.Mux
}

// New creates a Server backed by store.
func New(cfg *config.Config, store *session.Store) *Server {
	previewRows := cfg.Analysis.PreviewRows
	s := &Server{
		store: store,
		opts: excelviz.Options{
			Mode:        excelviz.ModeStrict,
			PreviewRows: &previewRows,
		},
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/files", s.handleUpload)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Put("/selection", s.handleSelectAxes)
			r.Post("/charts", s.handleCreateChart)
			r.Get("/charts/{index}/image", s.handleChartImage)
		})
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
