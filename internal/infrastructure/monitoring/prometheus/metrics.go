package prometheus

// AppMetrics holds every metric the engine emits.  The HTTP vectors are
// driven by the request-metrics middleware; the submission vectors by the
// application service through its Metrics sink.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Submission flow
	SubmissionsTotal   CounterVec
	SubmissionDuration HistogramVec
	PreviewsTotal      CounterVec

	// Credits and grants
	CreditsSpentTotal CounterVec
	GrantsIssuedTotal CounterVec

	// Recommendations
	RecommendationCount HistogramVec

	// Events
	EventsPublishedTotal CounterVec
}

var (
	DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultCountBuckets        = []float64{0, 1, 2, 3, 4, 5, 10}
)

// NewAppMetrics registers every metric against the collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total",
		"Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds",
		"HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests",
		"In-flight HTTP requests", "method")

	m.SubmissionsTotal = collector.RegisterCounter("submissions_total",
		"Assessment submissions", "assessment_type", "outcome")
	m.SubmissionDuration = collector.RegisterHistogram("submission_duration_seconds",
		"End-to-end submission duration", DefaultHTTPDurationBuckets, "assessment_type")
	m.PreviewsTotal = collector.RegisterCounter("previews_total",
		"Score previews", "assessment_type", "outcome")

	m.CreditsSpentTotal = collector.RegisterCounter("credits_spent_total",
		"Credits deducted by submissions", "assessment_type")
	m.GrantsIssuedTotal = collector.RegisterCounter("grants_issued_total",
		"Grants recorded by submissions", "kind")

	m.RecommendationCount = collector.RegisterHistogram("recommendations_returned",
		"Recommendations returned per scoring", DefaultCountBuckets, "assessment_type")

	m.EventsPublishedTotal = collector.RegisterCounter("events_published_total",
		"Completion events published", "outcome")

	return m
}
