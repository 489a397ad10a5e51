package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
)

// CheckFunc probes one dependency.  A nil return means healthy.
type CheckFunc func(ctx context.Context) error

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checks  map[string]CheckFunc
	timeout time.Duration
	logger  logging.Logger
}

// NewHealthHandler creates a HealthHandler.  Checks map component names
// (postgres, redis, minio) to their probes.
func NewHealthHandler(checks map[string]CheckFunc, logger logging.Logger) *HealthHandler {
	return &HealthHandler{
		checks:  checks,
		timeout: 5 * time.Second,
		logger:  logger,
	}
}

// Liveness handles GET /healthz.  It only confirms the process serves
// requests; dependencies are the readiness probe's concern.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readinessResponse reports per-component health.
type readinessResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Readiness handles GET /readyz.  Any failing dependency makes the whole
// probe fail with 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp := readinessResponse{
		Status:     "ready",
		Components: make(map[string]string, len(h.checks)),
	}
	status := http.StatusOK

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			resp.Components[name] = "unhealthy"
			resp.Status = "not ready"
			status = http.StatusServiceUnavailable
			h.logger.Warn("readiness check failed",
				logging.String("component", name),
				logging.Err(err))
			continue
		}
		resp.Components[name] = "healthy"
	}

	writeJSON(w, status, resp)
}
