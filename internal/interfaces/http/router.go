// Package http wires the chi router, middleware stack, and HTTP server for
// the public API.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/prometheus"
	"github.com/culturiq/engine/internal/interfaces/http/handlers"
	"github.com/culturiq/engine/internal/interfaces/http/middleware"
)

// RouterConfig aggregates everything the router mounts.  Nil handlers skip
// their routes so partial wiring (tests, the worker binary) stays possible.
type RouterConfig struct {
	AssessmentHandler *handlers.AssessmentHandler
	ResourceHandler   *handlers.ResourceHandler
	HealthHandler     *handlers.HealthHandler

	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler

	// Metrics enables per-request instrumentation when set.
	Metrics *prometheus.AppMetrics

	Logger logging.Logger

	LoggingConfig   middleware.LoggingConfig
	CORSConfig      middleware.CORSConfig
	RateLimiter     middleware.RateLimiter
	RateLimitConfig middleware.RateLimitConfig
}

// NewRouter builds the route tree.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger, cfg.LoggingConfig))
	}
	if cfg.Metrics != nil {
		r.Use(middleware.RequestMetrics(cfg.Metrics))
	}
	r.Use(middleware.CORS(cfg.CORSConfig))
	if cfg.RateLimiter != nil {
		r.Use(middleware.RateLimit(cfg.RateLimiter, cfg.RateLimitConfig))
	}

	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(api chi.Router) {
		registerAssessmentRoutes(api, cfg.AssessmentHandler)
		registerResourceRoutes(api, cfg.ResourceHandler)
	})

	return r
}

func registerAssessmentRoutes(api chi.Router, h *handlers.AssessmentHandler) {
	if h == nil {
		return
	}
	api.Post("/assessments/{type}/submit", h.Submit)
	api.Post("/assessments/{type}/preview", h.Preview)
	api.Get("/results/{id}", h.GetResult)
	api.Get("/respondents/{id}/results", h.ListResults)
	api.Get("/respondents/{id}/unlocks", h.UnlockState)
}

func registerResourceRoutes(api chi.Router, h *handlers.ResourceHandler) {
	if h == nil {
		return
	}
	api.Get("/resources", h.List)
	api.Get("/respondents/{id}/resources/{resourceID}/download", h.Download)
}
