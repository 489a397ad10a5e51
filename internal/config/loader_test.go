package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
database:
  user: culturiq
  password: secret
redis:
  submit_lock_ttl: 45s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "culturiq", cfg.Database.User)
	assert.Equal(t, 45*time.Second, cfg.Redis.SubmitLockTTL)

	// Unset fields fall back to defaults.
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "culturiq.assessment.completed", cfg.Kafka.CompletionTopic)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfigFile(t, `
server:
  mode: staging
database:
  user: culturiq
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.mode")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CULTURIQ_DATABASE_USER", "envuser")
	t.Setenv("CULTURIQ_SERVER_PORT", "8088")
	t.Setenv("CULTURIQ_SERVER_RATE_LIMIT_ENABLED", "true")
	t.Setenv("CULTURIQ_SERVER_RATE_LIMIT_BURST", "40")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "envuser", cfg.Database.User)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, 40, cfg.Server.RateLimit.Burst)
	assert.InDelta(t, DefaultRateLimitRPS, cfg.Server.RateLimit.RequestsPerSecond, 1e-9)
}

func TestLoadFromEnv_FailsValidation(t *testing.T) {
	// No database user anywhere.
	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.user")
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}
