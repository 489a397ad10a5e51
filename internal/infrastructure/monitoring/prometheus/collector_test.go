package prometheus

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	t.Helper()
	c, err := NewMetricsCollector(CollectorConfig{Namespace: "culturiq"}, logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func scrape(t *testing.T, c MetricsCollector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewMetricsCollector_RequiresNamespace(t *testing.T) {
	_, err := NewMetricsCollector(CollectorConfig{}, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestRegisterAndScrape(t *testing.T) {
	c := newTestCollector(t)

	counter := c.RegisterCounter("submissions_total", "Assessment submissions", "assessment_type", "outcome")
	counter.WithLabelValues("cirf", "success").Inc()
	counter.WithLabelValues("cirf", "success").Add(2)

	gauge := c.RegisterGauge("http_active_requests", "In-flight requests", "method")
	gauge.WithLabelValues("POST").Set(4)

	hist := c.RegisterHistogram("scoring_duration_seconds", "Scoring duration", DefaultHTTPDurationBuckets, "assessment_type")
	hist.WithLabelValues("cirf").Observe(0.02)

	body := scrape(t, c)
	assert.Contains(t, body, `culturiq_submissions_total{assessment_type="cirf",outcome="success"} 3`)
	assert.Contains(t, body, `culturiq_http_active_requests{method="POST"} 4`)
	assert.Contains(t, body, `culturiq_scoring_duration_seconds_count{assessment_type="cirf"} 1`)
}

func TestRegister_DuplicateNameReturnsExisting(t *testing.T) {
	c := newTestCollector(t)

	first := c.RegisterCounter("errors_total", "Errors", "code")
	second := c.RegisterCounter("errors_total", "Errors", "code")

	first.WithLabelValues("COMMON_001").Inc()
	second.WithLabelValues("COMMON_001").Inc()

	body := scrape(t, c)
	assert.Contains(t, body, `culturiq_errors_total{code="COMMON_001"} 2`)
}

func TestRegister_TypeMismatchDegradesToNoop(t *testing.T) {
	c := newTestCollector(t)

	c.RegisterCounter("health_check_status", "Health", "component")
	gauge := c.RegisterGauge("health_check_status", "Health", "component")

	// Must not panic, and must not corrupt the counter.
	gauge.WithLabelValues("postgres").Set(1)

	body := scrape(t, c)
	assert.False(t, strings.Contains(body, `culturiq_health_check_status{component="postgres"} 1`))
}

func TestNewAppMetrics_RegistersEverything(t *testing.T) {
	c := newTestCollector(t)
	m := NewAppMetrics(c)

	m.SubmissionsTotal.WithLabelValues("cirf", "ok").Inc()
	m.GrantsIssuedTotal.WithLabelValues("tool").Add(2)
	m.EventsPublishedTotal.WithLabelValues("ok").Inc()
	m.HTTPActiveRequests.WithLabelValues("POST").Set(1)

	body := scrape(t, c)
	assert.Contains(t, body, "culturiq_submissions_total")
	assert.Contains(t, body, `culturiq_grants_issued_total{kind="tool"} 2`)
	assert.Contains(t, body, `culturiq_events_published_total{outcome="ok"} 1`)
	assert.Contains(t, body, `culturiq_http_active_requests{method="POST"} 1`)
}

func TestTimer(t *testing.T) {
	c := newTestCollector(t)
	hist := c.RegisterHistogram("submission_duration_seconds", "Duration", nil, "assessment_type")

	timer := NewTimer(hist.WithLabelValues("cirf"))
	time.Sleep(time.Millisecond)
	timer.ObserveDuration()

	body := scrape(t, c)
	assert.Contains(t, body, `culturiq_submission_duration_seconds_count{assessment_type="cirf"} 1`)

	// A nil histogram is tolerated.
	NewTimer(nil).ObserveDuration()
}
