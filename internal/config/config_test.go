package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a configuration that passes Validate.
func validConfig() *Config {
	cfg := &Config{}
	cfg.Database.User = "culturiq"
	ApplyDefaults(cfg)
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"bad mode", func(c *Config) { c.Server.Mode = "staging" }, "server.mode"},
		{"rate limit zero rps", func(c *Config) {
			c.Server.RateLimit.Enabled = true
			c.Server.RateLimit.RequestsPerSecond = 0
		}, "rate_limit.requests_per_second"},
		{"rate limit zero burst", func(c *Config) {
			c.Server.RateLimit.Enabled = true
			c.Server.RateLimit.Burst = 0
		}, "rate_limit.burst"},
		{"missing db user", func(c *Config) { c.Database.User = "" }, "database.user"},
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "database.host"},
		{"missing redis addr", func(c *Config) { c.Redis.Addr = "" }, "redis.addr"},
		{"zero guard ttl", func(c *Config) { c.Redis.SubmitLockTTL = -time.Second }, "submit_lock_ttl"},
		{"no kafka brokers", func(c *Config) { c.Kafka.Brokers = nil }, "kafka.brokers"},
		{"missing topic", func(c *Config) { c.Kafka.CompletionTopic = "" }, "completion_topic"},
		{"zero concurrency", func(c *Config) { c.Worker.Concurrency = -1 }, "worker.concurrency"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"gate above one", func(c *Config) { c.Scoring.SectionCompletionGate = 1.5 }, "section_completion_gate"},
		{"threshold above one", func(c *Config) { c.Recommendation.WeakThreshold = 1.5 }, "weak_threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
