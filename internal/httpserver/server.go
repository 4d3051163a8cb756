package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/backoffice/internal/config"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/deps"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/mw"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/routes"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
)

// APIPrefix is where every route is mounted.
const APIPrefix = "/api"

// Server wraps the HTTP server and its dependencies.
type Server struct {
	http    *http.Server
	logger  logger.Logger
	started time.Time
}

// New builds the HTTP server (router, middlewares, route registration).
func New(cfg *config.Config, loggerClient logger.Logger, d deps.Deps) *Server {
	s := &http.Server{
		Addr:              cfg.ListenPort,
		Handler:           NewHandler(cfg.RequestTimeout, loggerClient, d),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return &Server{
		http:    s,
		logger:  loggerClient,
		started: d.StartTime,
	}
}

// NewHandler returns the router alone, for tests and embedding.
func NewHandler(timeout time.Duration, loggerClient logger.Logger, d deps.Deps) http.Handler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)        // X-Request-ID on each request
	r.Use(middleware.Recoverer)        // never crash the process on panic
	r.Use(middleware.Timeout(timeout)) // per-request deadline
	r.Use(mw.Log(loggerClient))
	r.Use(mw.CORS(d.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		mw.WriteMessage(w, http.StatusNotFound, "Resource not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		mw.WriteMessage(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Route(APIPrefix, func(api chi.Router) {
		routes.RegisterAll(api, d)
	})
	return r
}

// Start runs the HTTP server (blocks until error or shutdown).
func (s *Server) Start() error {
	s.logger.Infof("HTTP server listening on %s", s.http.Addr)
	return s.serve(s.http.ListenAndServe())
}

// Serve runs the server on an existing listener.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Infof("HTTP server listening on %s", l.Addr())
	return s.serve(s.http.Serve(l))
}

func (s *Server) serve(err error) error {
	// http.ErrServerClosed is expected on graceful shutdown.
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server with the provided context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down...", logger.Duration("uptime", time.Since(s.started)))
	return s.http.Shutdown(ctx)
}
