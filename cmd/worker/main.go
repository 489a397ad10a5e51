// The worker binary consumes assessment completion events and sends result
// summary emails.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appnotif "github.com/culturiq/engine/internal/application/notification"
	"github.com/culturiq/engine/internal/config"
	"github.com/culturiq/engine/internal/infrastructure/messaging/kafka"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/internal/infrastructure/notification/ses"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: CULTURIQ_* environment)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "worker:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
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
	logger = logger.Named("worker")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender, err := ses.NewSender(ctx, cfg.Email, logger)
	if err != nil {
		return err
	}
	notifier := appnotif.NewService(sender, logger)

	// One consumer per concurrency slot, all in the same group so partitions
	// spread across them.
	concurrency := cfg.Worker.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	consumers := make([]*kafka.CompletionConsumer, 0, concurrency)
	for i := 0; i < concurrency; i++ {
		consumer, err := kafka.NewCompletionConsumer(cfg.Kafka, cfg.Worker, notifier.HandleCompletion, logger)
		if err != nil {
			return err
		}
		if err := consumer.Start(ctx); err != nil {
			return err
		}
		consumers = append(consumers, consumer)
	}
	logger.Info("worker started", logging.Int("consumers", concurrency))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logger.Info("shutting down", logging.String("signal", sig.String()))

	cancel()
	for _, consumer := range consumers {
		if err := consumer.Close(); err != nil {
			logger.Warn("failed to close consumer", logging.Err(err))
		}
	}
	return nil
}
