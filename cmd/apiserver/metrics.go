package main

import (
	"time"

	appasmt "github.com/culturiq/engine/internal/application/assessment"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/prometheus"
)

// serviceMetrics adapts AppMetrics to the submission service's Metrics sink.
type serviceMetrics struct {
	m *prometheus.AppMetrics
}

var _ appasmt.Metrics = serviceMetrics{}

func (s serviceMetrics) SubmissionObserved(assessmentType, outcome string, elapsed time.Duration) {
	s.m.SubmissionsTotal.WithLabelValues(assessmentType, outcome).Inc()
	s.m.SubmissionDuration.WithLabelValues(assessmentType).Observe(elapsed.Seconds())
}

func (s serviceMetrics) PreviewObserved(assessmentType, outcome string) {
	s.m.PreviewsTotal.WithLabelValues(assessmentType, outcome).Inc()
}

func (s serviceMetrics) CreditsSpent(assessmentType string, amount int) {
	if amount > 0 {
		s.m.CreditsSpentTotal.WithLabelValues(assessmentType).Add(float64(amount))
	}
}

func (s serviceMetrics) GrantsIssued(kind string, count int) {
	if count > 0 {
		s.m.GrantsIssuedTotal.WithLabelValues(kind).Add(float64(count))
	}
}

func (s serviceMetrics) RecommendationsReturned(assessmentType string, count int) {
	s.m.RecommendationCount.WithLabelValues(assessmentType).Observe(float64(count))
}

func (s serviceMetrics) EventPublished(outcome string) {
	s.m.EventsPublishedTotal.WithLabelValues(outcome).Inc()
}
