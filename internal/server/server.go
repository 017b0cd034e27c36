// Package server exposes the application's Prometheus metrics and a health
// probe over HTTP. The server is opt-in (--serve) and read-only: it serves
// GET (and HEAD) requests for /metrics and /healthz and nothing else.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/uintcalc/internal/logging"
	"github.com/agbru/uintcalc/internal/metrics"
)

// Timeouts guarding against slow or stuck clients.
const (
	ReadHeaderTimeout = 5 * time.Second
	WriteTimeout      = 10 * time.Second
	IdleTimeout       = 60 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// Server wraps the HTTP endpoint lifecycle.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// New builds a server for the given metrics registry, listening on addr.
func New(addr string, registry *metrics.Registry, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry.Prometheus(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           restrictMethods(mux),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		logger: logger,
	}
}

// restrictMethods rejects everything except GET and HEAD: the server is a
// read-only observability endpoint.
func restrictMethods(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Handler returns the HTTP handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving in a background goroutine and returns immediately.
// Server errors other than a clean shutdown are logged.
func (s *Server) Start() {
	s.logger.Info("metrics server listening", logging.String("addr", s.httpServer.Addr))
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("metrics server failed", err)
		}
	}()
}

// Shutdown stops the server, allowing in-flight requests to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
