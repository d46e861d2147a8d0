package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/postline/internal/config"
	"github.com/postline/internal/web/handlers"
	"github.com/postline/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *config.Config
	logger     zerolog.Logger
	metrics    *middleware.Metrics
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("web: nil configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	server := &Server{
		config:  cfg,
		logger:  logger,
		metrics: middleware.NewMetrics("postline", prometheus.NewRegistry()),
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	apiHandler := &handlers.APIHandler{
		Config:   &handlers.Config{Defaults: ParseDefaults(s.config)},
		Recorder: s.metrics,
	}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/parse", apiHandler.ParseLocation).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/intersection", apiHandler.ParseIntersection).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/informal", apiHandler.ParseInformal).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/pobox", apiHandler.ParsePoBox).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/postal/{code}", apiHandler.ValidatePostal).Methods(http.MethodGet)

	s.router.HandleFunc("/health", apiHandler.Health).Methods(http.MethodGet)
	if s.config.MetricsEnabled {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	s.router.Use(middleware.RequestLogging(s.logger))
	s.router.Use(middleware.CORS())
	s.router.Use(s.metrics.Middleware)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled or the process receives SIGINT or
// SIGTERM, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("starting server")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info().Msg("server stopped")
	return nil
}
