// The apiserver binary serves the assessment API: submissions, previews,
// results, unlock state, and resource downloads.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	appasmt "github.com/culturiq/engine/internal/application/assessment"
	"github.com/culturiq/engine/internal/config"
	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/domain/content"
	"github.com/culturiq/engine/internal/engine/recommend"
	"github.com/culturiq/engine/internal/engine/scoring"
	"github.com/culturiq/engine/internal/infrastructure/database/postgres"
	"github.com/culturiq/engine/internal/infrastructure/database/postgres/repositories"
	"github.com/culturiq/engine/internal/infrastructure/database/redis"
	"github.com/culturiq/engine/internal/infrastructure/messaging/kafka"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/prometheus"
	"github.com/culturiq/engine/internal/infrastructure/storage/minio"
	httpserver "github.com/culturiq/engine/internal/interfaces/http"
	"github.com/culturiq/engine/internal/interfaces/http/handlers"
	"github.com/culturiq/engine/internal/interfaces/http/middleware"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: CULTURIQ_* environment)")
	migrationsDir := flag.String("migrations", "migrations", "path to schema migrations")
	flag.Parse()

	if err := run(*configPath, *migrationsDir); err != nil {
		fmt.Fprintln(os.Stderr, "apiserver:", err)
		os.Exit(1)
	}
}

func run(configPath, migrationsDir string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:            cfg.Log.Level,
		Format:           cfg.Log.Format,
		OutputPaths:      cfg.Log.OutputPaths,
		ErrorOutputPaths: cfg.Log.ErrorOutputPaths,
	})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	// Postgres with migrations applied before serving.
	conn, err := postgres.NewConnection(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := conn.RunMigrations(migrationsDir); err != nil {
		return err
	}
	store := repositories.NewStore(conn, logger)

	// Redis backs the submission guard and the result cache.
	redisClient, err := redis.NewClient(cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	guard := redis.NewSubmissionGuard(redisClient, logger)
	resultCache := redis.NewResultCache(redisClient, logger)

	// Kafka carries completion events to the notification worker.
	publisher, err := kafka.NewCompletionPublisher(cfg.Kafka, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	// MinIO serves the downloadable resource library.
	resourceStore, err := minio.NewResourceStore(cfg.MinIO, logger)
	if err != nil {
		return err
	}

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            "culturiq",
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	if err != nil {
		return err
	}
	appMetrics := prometheus.NewAppMetrics(collector)

	service := buildService(cfg, store, guard, publisher, resultCache, appMetrics, logger)

	var limiter middleware.RateLimiter
	if rl := cfg.Server.RateLimit; rl.Enabled {
		bucket := middleware.NewTokenBucketLimiter(rl.RequestsPerSecond, rl.Burst, rl.CleanupInterval)
		defer bucket.Stop()
		limiter = bucket
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		AssessmentHandler: handlers.NewAssessmentHandler(service, logger),
		ResourceHandler:   handlers.NewResourceHandler(store.Grants(), resourceStore, logger),
		HealthHandler: handlers.NewHealthHandler(map[string]handlers.CheckFunc{
			"postgres": conn.HealthCheck,
			"redis":    redisClient.Ping,
			"minio":    resourceStore.HealthCheck,
		}, logger),
		MetricsHandler:  collector.Handler(),
		Metrics:         appMetrics,
		Logger:          logger,
		LoggingConfig:   middleware.DefaultLoggingConfig(),
		CORSConfig:      middleware.DefaultCORSConfig(),
		RateLimiter:     limiter,
		RateLimitConfig: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.Server.RateLimit.Burst,
		},
	})

	server := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", logging.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return server.Stop(ctx)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

// buildService assembles the scoring engine, the matchers, and the submission
// service from configuration.
func buildService(cfg *config.Config, store appasmt.Store, guard appasmt.SubmissionGuard, publisher appasmt.EventPublisher, cache appasmt.ResultCache, metrics *prometheus.AppMetrics, logger logging.Logger) *appasmt.Service {
	var scoringOpts []scoring.Option
	if cfg.Scoring.SectionCompletionGate > 0 {
		scoringOpts = append(scoringOpts, scoring.WithCompletionGate(cfg.Scoring.SectionCompletionGate))
	}
	engine := scoring.NewEngine(assessment.DefaultRegistry(), scoringOpts...)

	var csOpts []recommend.CaseStudyOption
	if cfg.Recommendation.CaseStudiesPerRecommendation > 0 {
		csOpts = append(csOpts, recommend.WithTopK(cfg.Recommendation.CaseStudiesPerRecommendation))
	}
	if cfg.Recommendation.ScoreProximityMaxDistance > 0 {
		csOpts = append(csOpts, recommend.WithMaxScoreDistance(cfg.Recommendation.ScoreProximityMaxDistance))
	}
	caseStudies := recommend.NewCaseStudyMatcher(content.DefaultCaseStudyRegistry(), csOpts...)

	matcherOpts := []recommend.MatcherOption{recommend.WithCaseStudies(caseStudies)}
	if cfg.Recommendation.WeakThreshold > 0 {
		matcherOpts = append(matcherOpts, recommend.WithWeakThreshold(cfg.Recommendation.WeakThreshold))
	}
	if cfg.Recommendation.MaxRecommendations > 0 {
		matcherOpts = append(matcherOpts, recommend.WithMaxRecommendations(cfg.Recommendation.MaxRecommendations))
	}
	if cfg.Recommendation.TargetScore > 0 {
		matcherOpts = append(matcherOpts, recommend.WithTargetScore(cfg.Recommendation.TargetScore))
	}
	matcher := recommend.NewMatcher(content.DefaultVariantRegistry(), matcherOpts...)

	serviceOpts := []appasmt.ServiceOption{
		appasmt.WithResultCache(cache),
		appasmt.WithMetrics(serviceMetrics{m: metrics}),
	}
	if cfg.Scoring.PreviewMinAnswers > 0 {
		serviceOpts = append(serviceOpts, appasmt.WithPreviewMinAnswers(cfg.Scoring.PreviewMinAnswers))
	}

	return appasmt.NewService(store, guard, publisher, engine, matcher, logger, serviceOpts...)
}
