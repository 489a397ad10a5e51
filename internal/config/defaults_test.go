package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.False(t, cfg.Server.RateLimit.Enabled)
	assert.InDelta(t, 10.0, cfg.Server.RateLimit.RequestsPerSecond, 1e-9)
	assert.Equal(t, 20, cfg.Server.RateLimit.Burst)
	assert.Equal(t, 5*time.Minute, cfg.Server.RateLimit.CleanupInterval)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "culturiq", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Redis.SubmitLockTTL)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "culturiq.assessment.completed", cfg.Kafka.CompletionTopic)
	assert.Equal(t, DefaultWorkerConcurrency, cfg.Worker.Concurrency)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.InDelta(t, 0.5, cfg.Scoring.SectionCompletionGate, 1e-9)
	assert.Equal(t, 10, cfg.Scoring.PreviewMinAnswers)
	assert.InDelta(t, 0.7, cfg.Recommendation.WeakThreshold, 1e-9)
	assert.Equal(t, 5, cfg.Recommendation.MaxRecommendations)
	assert.Equal(t, 70, cfg.Recommendation.TargetScore)
	assert.InDelta(t, 30.0, cfg.Recommendation.ScoreProximityMaxDistance, 1e-9)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9999
	cfg.Redis.SubmitLockTTL = 5 * time.Second
	cfg.Recommendation.MaxRecommendations = 3
	ApplyDefaults(cfg)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Redis.SubmitLockTTL)
	assert.Equal(t, 3, cfg.Recommendation.MaxRecommendations)
}

func TestApplyDefaults_NilIsSafe(t *testing.T) {
	ApplyDefaults(nil)
}
