// Package server exposes topology generation over HTTP so experiment drivers
// that do not shell out to the CLI can fetch a topology (JSON, or the C
// header/source pair) per run.
//
// Routes:
//
//	GET /healthz
//	GET /topology/{strategy}   strategy ∈ {symmetric, smallworld}
//	GET /metrics               Prometheus exposition
//
// Every request builds its own topology; nothing is cached between requests.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/peertopo/metrics"
)

// Config holds the server knobs.
type Config struct {
	// Addr is the listen address.
	Addr string
	// MaxNodes caps the node count a single request may ask for.
	MaxNodes int
	// Workers is the SmallWorld row worker count used per request.
	Workers int
	// RequestTimeout bounds generation time per request. Generators check it
	// between nodes/rows and the request fails with 504 once it expires.
	RequestTimeout time.Duration
}

// DefaultConfig returns the configuration used when flags are left unset.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8090",
		MaxNodes:       20000,
		Workers:        4,
		RequestTimeout: 2 * time.Minute,
	}
}

// Server wires the router, metrics and logger together.
type Server struct {
	cfg      Config
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	log      log.Logger
}

// New creates a Server and registers its collectors on a fresh registry.
func New(cfg Config) (*Server, error) {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.MaxNodes <= 0 {
		cfg.MaxNodes = def.MaxNodes
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = def.RequestTimeout
	}

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics()
	if err := m.Register(registry); err != nil {
		return nil, err
	}
	return &Server{
		cfg:      cfg,
		metrics:  m,
		registry: registry,
		log:      log.New("module", "server"),
	}, nil
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/topology/{strategy}", s.handleTopology)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("HTTP server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
