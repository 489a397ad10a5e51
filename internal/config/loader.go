package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all engine settings.
const envPrefix = "CULTURIQ"

// newViper builds a pre-configured Viper instance with the engine's standard
// settings: YAML file type, CULTURIQ_ env prefix, automatic env binding, and a
// key replacer that maps "." to "_" so that nested keys like "database.host"
// resolve to "CULTURIQ_DATABASE_HOST".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Viper only consults the environment for keys it already knows about, so
	// every settable key is registered here.  Real defaults are applied later
	// by ApplyDefaults; these exist purely to make env overrides visible.
	for _, key := range settableKeys {
		v.SetDefault(key, nil)
	}
	return v
}

// settableKeys lists every configuration key so that CULTURIQ_* environment
// overrides resolve even without a config file.
var settableKeys = []string{
	"server.port", "server.mode", "server.read_timeout", "server.write_timeout",
	"server.max_body_size", "server.shutdown_timeout",
	"server.rate_limit.enabled", "server.rate_limit.requests_per_second",
	"server.rate_limit.burst", "server.rate_limit.cleanup_interval",
	"database.host", "database.port", "database.user", "database.password",
	"database.db_name", "database.ssl_mode", "database.max_conns",
	"database.max_idle_conns", "database.conn_max_lifetime", "database.conn_max_idle_time",
	"database.migration_path",
	"redis.addr", "redis.password", "redis.db", "redis.pool_size",
	"redis.min_idle_conns", "redis.dial_timeout", "redis.read_timeout",
	"redis.write_timeout", "redis.key_prefix", "redis.submit_lock_ttl",
	"kafka.brokers", "kafka.group_id", "kafka.completion_topic",
	"kafka.producer_retries", "kafka.batch_timeout",
	"minio.endpoint", "minio.access_key", "minio.secret_key", "minio.bucket",
	"minio.use_ssl", "minio.presign_expiry",
	"email.region", "email.sender", "email.reply_to", "email.template_dir",
	"worker.concurrency", "worker.max_retries", "worker.retry_backoff",
	"worker.backoff_multiplier",
	"log.level", "log.format", "log.output_paths", "log.error_output_paths",
	"scoring.section_completion_gate", "scoring.preview_min_answers",
	"recommendation.weak_threshold", "recommendation.max_recommendations",
	"recommendation.target_score", "recommendation.case_studies_per_recommendation",
	"recommendation.score_proximity_max_distance",
}

// Load reads the YAML file at configPath, merges any CULTURIQ_* environment
// variable overrides, applies engine defaults for unset fields, and
// validates the result.  It returns a fully-populated *Config or a
// descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from CULTURIQ_* environment variables,
// with no config file required.  This is the preferred loading strategy for
// containerised (12-factor) deployments.
//
// Environment variable naming convention:
//
//	CULTURIQ_<SECTION>_<FIELD>   e.g.  CULTURIQ_DATABASE_HOST, CULTURIQ_REDIS_ADDR
func LoadFromEnv() (*Config, error) {
	v := newViper()
	// No config file — rely solely on env vars and defaults.
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading non-critical settings such as log level and rate-limit
// thresholds; callers are responsible for applying only the safe subset of
// changes at runtime.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// If the changed file fails to parse or validate, onChange is NOT called and
// the error is silently swallowed (viper behaviour) — add an OnConfigChange
// hook for custom error handling if needed.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read — errors are ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			// Config change produced an invalid config; skip the callback to
			// prevent the application from entering a broken state.
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// It is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

