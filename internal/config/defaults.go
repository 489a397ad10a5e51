package config

import "time"

const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBName     = "culturiq"
	DefaultDBMaxConns = 25

	DefaultRedisAddr     = "localhost:6379"
	DefaultRedisDB       = 0
	DefaultSubmitLockTTL = 30 * time.Second

	DefaultKafkaBroker     = "localhost:9092"
	DefaultKafkaGroupID    = "culturiq-notify"
	DefaultCompletionTopic = "culturiq.assessment.completed"

	DefaultMinIOEndpoint = "localhost:9000"
	DefaultPresignExpiry = 15 * time.Minute

	DefaultRateLimitRPS             = 10.0
	DefaultRateLimitBurst           = 20
	DefaultRateLimitCleanupInterval = 5 * time.Minute

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultWorkerConcurrency       = 4
	DefaultWorkerMaxRetries        = 5
	DefaultWorkerRetryBackoff      = 2 * time.Second
	DefaultWorkerBackoffMultiplier = 2.0

	DefaultSectionCompletionGate = 0.5
	DefaultPreviewMinAnswers     = 10

	DefaultWeakThreshold             = 0.7
	DefaultMaxRecommendations        = 5
	DefaultTargetScore               = 70
	DefaultCaseStudiesPerRec         = 2
	DefaultScoreProximityMaxDistance = 30.0
)

// ApplyDefaults fills every zero-value field in cfg with the engine default.
// It must be called after unmarshalling raw config data and before Validate()
// so that optional-but-defaulted fields are never seen as missing.  Fields
// that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.RateLimit.RequestsPerSecond == 0 {
		cfg.Server.RateLimit.RequestsPerSecond = DefaultRateLimitRPS
	}
	if cfg.Server.RateLimit.Burst == 0 {
		cfg.Server.RateLimit.Burst = DefaultRateLimitBurst
	}
	if cfg.Server.RateLimit.CleanupInterval == 0 {
		cfg.Server.RateLimit.CleanupInterval = DefaultRateLimitCleanupInterval
	}

	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	// Redis.DB is an int; 0 is a valid explicit value so we cannot distinguish
	// "not set" from "set to 0".  We leave it as-is (0 is also the default).
	if cfg.Redis.SubmitLockTTL == 0 {
		cfg.Redis.SubmitLockTTL = DefaultSubmitLockTTL
	}

	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{DefaultKafkaBroker}
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = DefaultKafkaGroupID
	}
	if cfg.Kafka.CompletionTopic == "" {
		cfg.Kafka.CompletionTopic = DefaultCompletionTopic
	}

	if cfg.MinIO.Endpoint == "" {
		cfg.MinIO.Endpoint = DefaultMinIOEndpoint
	}
	if cfg.MinIO.PresignExpiry == 0 {
		cfg.MinIO.PresignExpiry = DefaultPresignExpiry
	}

	if cfg.Worker.Concurrency == 0 {
		cfg.Worker.Concurrency = DefaultWorkerConcurrency
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = DefaultWorkerMaxRetries
	}
	if cfg.Worker.RetryBackoff == 0 {
		cfg.Worker.RetryBackoff = DefaultWorkerRetryBackoff
	}
	if cfg.Worker.BackoffMultiplier == 0 {
		cfg.Worker.BackoffMultiplier = DefaultWorkerBackoffMultiplier
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Scoring.SectionCompletionGate == 0 {
		cfg.Scoring.SectionCompletionGate = DefaultSectionCompletionGate
	}
	if cfg.Scoring.PreviewMinAnswers == 0 {
		cfg.Scoring.PreviewMinAnswers = DefaultPreviewMinAnswers
	}

	if cfg.Recommendation.WeakThreshold == 0 {
		cfg.Recommendation.WeakThreshold = DefaultWeakThreshold
	}
	if cfg.Recommendation.MaxRecommendations == 0 {
		cfg.Recommendation.MaxRecommendations = DefaultMaxRecommendations
	}
	if cfg.Recommendation.TargetScore == 0 {
		cfg.Recommendation.TargetScore = DefaultTargetScore
	}
	if cfg.Recommendation.CaseStudiesPerRecommendation == 0 {
		cfg.Recommendation.CaseStudiesPerRecommendation = DefaultCaseStudiesPerRec
	}
	if cfg.Recommendation.ScoreProximityMaxDistance == 0 {
		cfg.Recommendation.ScoreProximityMaxDistance = DefaultScoreProximityMaxDistance
	}
}
