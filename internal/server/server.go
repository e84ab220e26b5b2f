// Package server exposes the catalog and per-client browsing sessions over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jorge-barreto/risdocs/internal/catalog"
	"github.com/jorge-barreto/risdocs/internal/logger"
	"github.com/jorge-barreto/risdocs/internal/theme"
)

// Config holds server configuration.
type Config struct {
	Addr           string
	AllowAll       bool // allow all CORS origins
	DefaultSection string
	DefaultTheme   theme.Mode
	SessionTTL     time.Duration // idle sessions older than this are dropped; 0 keeps them
}

// Server serves one catalog to many sessions.
type Server struct {
	cfg        Config
	cat        *catalog.Catalog
	router     chi.Router
	httpServer *http.Server
	log        *log.Logger

	mu       sync.RWMutex
	sessions map[string]*session

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a server over cat.
func New(cfg Config, cat *catalog.Catalog) *Server {
	if cfg.DefaultSection == "" {
		cfg.DefaultSection = catalog.DefaultID
	}
	s := &Server{
		cfg:      cfg,
		cat:      cat,
		log:      logger.New("server"),
		sessions: make(map[string]*session),
		stop:     make(chan struct{}),
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.handleListSections)
		r.Get("/sections/{id}", s.handleGetSection)

		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{sid}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Put("/query", s.handleSetQuery)
			r.Put("/selection", s.handleSetSelection)
			r.Post("/theme", s.handleToggleTheme)
		})
	})
	return r
}

// requestLogger logs each request at debug level through the server logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"dur", time.Since(start),
			"req", middleware.GetReqID(r.Context()))
	})
}

// Router returns the chi router, for tests and embedding.
func (s *Server) Router() chi.Router { return s.router }

// Start listens on the configured address and blocks until Shutdown.
func (s *Server) Start() error {
	s.log.Info("listening", "addr", s.cfg.Addr, "sections", s.cat.Len())
	if s.cfg.SessionTTL > 0 {
		go s.sweepSessions(s.stop)
	}
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })
	return s.httpServer.Shutdown(ctx)
}
