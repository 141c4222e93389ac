package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"

	"FiveLine/internal/collector"
	"FiveLine/internal/model"
	"FiveLine/internal/service"
)

// SpectrumService computes spectra on demand.
type SpectrumService interface {
	Compute(ctx context.Context, req collector.Request, trigger model.TriggerType) (*service.Outcome, error)
}

// Options tunes the server.
type Options struct {
	RateLimit float64
	Burst     int
	Timeout   time.Duration
	Registry  *prometheus.Registry
}

// Server exposes the spectrum API.
type Server struct {
	svc      SpectrumService
	validate *validator.Validate
	metrics  *Metrics
	router   chi.Router
	srv      *http.Server
}

// NewServer wires routes and middleware.
func NewServer(addr string, svc SpectrumService, opts Options) *Server {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	s := &Server{
		svc:      svc,
		validate: validator.New(),
		metrics:  NewMetrics(opts.Registry),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler)
	r.Route("/api", func(r chi.Router) {
		r.Use(NewRateLimiter(opts.RateLimit, opts.Burst).Handler)
		r.Use(middleware.Timeout(opts.Timeout))
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/spectrum/{symbol}", s.getSpectrum)
	})
	s.router = r

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      opts.Timeout + 5*time.Second,
	}
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe blocks until the server stops. A clean shutdown returns nil.
func (s *Server) ListenAndServe() error {
	log.Printf("[INFO] http server listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and drains in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] http server shutting down")
	return s.srv.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
