// Package config defines all configuration structures for the CulturIQ
// assessment engine.  No I/O or parsing logic lives here — only plain data
// types and validation.
package config

import (
	"fmt"
	"time"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int             `mapstructure:"port"`
	Mode            string          `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration   `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration   `mapstructure:"write_timeout"`
	MaxBodySize     int64           `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig throttles each client IP at the router.  Disabled by
// default; when enabled the limiter runs an in-memory token bucket per key.
type RateLimitConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int           `mapstructure:"max_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
	// SubmitLockTTL bounds how long an in-flight submission marker survives if
	// the owning request dies without releasing it.
	SubmitLockTTL time.Duration `mapstructure:"submit_lock_ttl"`
}

// KafkaConfig holds Kafka producer/consumer parameters.
type KafkaConfig struct {
	Brokers         []string      `mapstructure:"brokers"`
	GroupID         string        `mapstructure:"group_id"`
	CompletionTopic string        `mapstructure:"completion_topic"`
	ProducerRetries int           `mapstructure:"producer_retries"`
	BatchTimeout    time.Duration `mapstructure:"batch_timeout"`
}

// MinIOConfig holds MinIO / S3-compatible object-storage parameters for
// downloadable resources.
type MinIOConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	AccessKey     string        `mapstructure:"access_key"`
	SecretKey     string        `mapstructure:"secret_key"`
	Bucket        string        `mapstructure:"bucket"`
	UseSSL        bool          `mapstructure:"use_ssl"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

// EmailConfig holds SES result-summary email parameters used by the worker.
type EmailConfig struct {
	Region      string `mapstructure:"region"`
	Sender      string `mapstructure:"sender"`
	ReplyTo     string `mapstructure:"reply_to"`
	TemplateDir string `mapstructure:"template_dir"`
}

// WorkerConfig holds notification-worker execution parameters.
type WorkerConfig struct {
	Concurrency  int           `mapstructure:"concurrency"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	// BackoffMultiplier scales the delay between successive attempts.
	BackoffMultiplier float64 `mapstructure:"backoff_multiplier"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level            string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string   `mapstructure:"format"` // "json" | "console"
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// ScoringConfig holds the tunable thresholds of the pure computation layer.
// The question catalogs, section weights, and synergy pairs are static domain
// configuration and are not exposed here.
type ScoringConfig struct {
	// SectionCompletionGate is the fraction of a section's questions that must
	// be answered before the section contributes to the overall score.
	SectionCompletionGate float64 `mapstructure:"section_completion_gate"`
	// PreviewMinAnswers is the minimum number of answered questions required
	// for the non-persisted preview path.
	PreviewMinAnswers int `mapstructure:"preview_min_answers"`
}

// RecommendationConfig holds the tunables of the recommendation and
// case-study matchers.
type RecommendationConfig struct {
	// WeakThreshold is the normalized construct score below which a construct
	// is considered weak and surfaces a recommendation.
	WeakThreshold float64 `mapstructure:"weak_threshold"`
	// MaxRecommendations caps how many weak constructs surface advice.
	MaxRecommendations int `mapstructure:"max_recommendations"`
	// TargetScore is the displayed improvement target percentage.
	TargetScore int `mapstructure:"target_score"`
	// CaseStudiesPerRecommendation is the top-K case studies attached to each
	// recommendation.
	CaseStudiesPerRecommendation int `mapstructure:"case_studies_per_recommendation"`
	// ScoreProximityMaxDistance is the score distance (0-100 scale) at which
	// the case-study proximity component decays to zero.
	ScoreProximityMaxDistance float64 `mapstructure:"score_proximity_max_distance"`
}

// Config is the root configuration structure for the entire engine.
// Every infrastructure component and application service reads its settings
// from the relevant sub-struct.
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Kafka          KafkaConfig          `mapstructure:"kafka"`
	MinIO          MinIOConfig          `mapstructure:"minio"`
	Email          EmailConfig          `mapstructure:"email"`
	Worker         WorkerConfig         `mapstructure:"worker"`
	Log            LogConfig            `mapstructure:"log"`
	Scoring        ScoringConfig        `mapstructure:"scoring"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Server.RateLimit.Enabled {
		if c.Server.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("config: server.rate_limit.requests_per_second must be positive, got %g", c.Server.RateLimit.RequestsPerSecond)
		}
		if c.Server.RateLimit.Burst < 1 {
			return fmt.Errorf("config: server.rate_limit.burst must be >= 1, got %d", c.Server.RateLimit.Burst)
		}
	}

	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("config: database.port %d is out of range [1, 65535]", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.db_name is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("config: database.max_conns must be >= 1, got %d", c.Database.MaxConns)
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be >= 0, got %d", c.Redis.DB)
	}
	if c.Redis.SubmitLockTTL <= 0 {
		return fmt.Errorf("config: redis.submit_lock_ttl must be positive, got %s", c.Redis.SubmitLockTTL)
	}

	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("config: kafka.brokers must contain at least one broker address")
	}
	if c.Kafka.CompletionTopic == "" {
		return fmt.Errorf("config: kafka.completion_topic is required")
	}

	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("config: worker.concurrency must be >= 1, got %d", c.Worker.Concurrency)
	}
	if c.Worker.MaxRetries < 0 {
		return fmt.Errorf("config: worker.max_retries must be >= 0, got %d", c.Worker.MaxRetries)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if g := c.Scoring.SectionCompletionGate; g < 0 || g > 1 {
		return fmt.Errorf("config: scoring.section_completion_gate %g is out of range [0, 1]", g)
	}
	if c.Scoring.PreviewMinAnswers < 1 {
		return fmt.Errorf("config: scoring.preview_min_answers must be >= 1, got %d", c.Scoring.PreviewMinAnswers)
	}

	if t := c.Recommendation.WeakThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("config: recommendation.weak_threshold %g is out of range (0, 1]", t)
	}
	if c.Recommendation.MaxRecommendations < 1 {
		return fmt.Errorf("config: recommendation.max_recommendations must be >= 1, got %d", c.Recommendation.MaxRecommendations)
	}
	if c.Recommendation.ScoreProximityMaxDistance <= 0 {
		return fmt.Errorf("config: recommendation.score_proximity_max_distance must be positive, got %g", c.Recommendation.ScoreProximityMaxDistance)
	}

	return nil
}
