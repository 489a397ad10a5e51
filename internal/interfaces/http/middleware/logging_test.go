package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
)

// recordingLogger captures the level and message of each log call.
type recordingLogger struct {
	logging.Logger
	mu      sync.Mutex
	entries []string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{Logger: logging.NewNopLogger()}
}

func (l *recordingLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+": "+msg)
}

func (l *recordingLogger) Info(msg string, fields ...logging.Field)  { l.record("info", msg) }
func (l *recordingLogger) Warn(msg string, fields ...logging.Field)  { l.record("warn", msg) }
func (l *recordingLogger) Error(msg string, fields ...logging.Field) { l.record("error", msg) }

func (l *recordingLogger) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

func serveWithLogging(t *testing.T, logger logging.Logger, cfg LoggingConfig, status int, path string) {
	t.Helper()
	handler := RequestLogging(logger, cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
}

func TestRequestLogging_Levels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success logs info", http.StatusOK, "info"},
		{"client error logs warn", http.StatusConflict, "warn"},
		{"server error logs error", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newRecordingLogger()
			serveWithLogging(t, logger, DefaultLoggingConfig(), tt.status, "/api/v1/resources")

			entries := logger.all()
			assert.Len(t, entries, 1)
			assert.Contains(t, entries[0], tt.wantLevel+":")
		})
	}
}

func TestRequestLogging_SkipsConfiguredPaths(t *testing.T) {
	logger := newRecordingLogger()
	serveWithLogging(t, logger, DefaultLoggingConfig(), http.StatusOK, "/healthz")
	serveWithLogging(t, logger, DefaultLoggingConfig(), http.StatusOK, "/metrics")

	assert.Empty(t, logger.all())
}
