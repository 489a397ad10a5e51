package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

func TestLiveness(t *testing.T) {
	h := NewHealthHandler(nil, logging.NewNopLogger())

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestReadiness_AllHealthy(t *testing.T) {
	h := NewHealthHandler(map[string]CheckFunc{
		"postgres": func(ctx context.Context) error { return nil },
		"redis":    func(ctx context.Context) error { return nil },
	}, logging.NewNopLogger())

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "healthy", resp.Components["postgres"])
	assert.Equal(t, "healthy", resp.Components["redis"])
}

func TestReadiness_OneUnhealthy(t *testing.T) {
	h := NewHealthHandler(map[string]CheckFunc{
		"postgres": func(ctx context.Context) error { return nil },
		"minio": func(ctx context.Context) error {
			return errors.New(errors.ErrCodeServiceUnavailable, "minio unreachable")
		},
	}, logging.NewNopLogger())

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not ready", resp.Status)
	assert.Equal(t, "healthy", resp.Components["postgres"])
	assert.Equal(t, "unhealthy", resp.Components["minio"])
}
