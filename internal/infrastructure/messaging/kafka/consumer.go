package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	appasmt "github.com/culturiq/engine/internal/application/assessment"
	"github.com/culturiq/engine/internal/config"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

var ErrAlreadyRunning = errors.New(errors.ErrCodeConflict, "consumer is already running")

// CompletionHandler processes one completion event.  A non-nil error triggers
// the consumer's retry policy.
type CompletionHandler func(ctx context.Context, event appasmt.CompletionEvent) error

// ReaderInterface abstracts kafka.Reader for testing.
type ReaderInterface interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// CompletionConsumer feeds completion events to a handler with bounded
// retries.  An event that keeps failing is logged and committed anyway so a
// poisoned message cannot stall the group.
type CompletionConsumer struct {
	reader  ReaderInterface
	handler CompletionHandler
	logger  logging.Logger

	maxRetries   int
	retryBackoff time.Duration
	multiplier   float64

	running atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	processed atomic.Int64
	dropped   atomic.Int64
}

// NewCompletionConsumer builds a group consumer on the completion topic.
func NewCompletionConsumer(kafkaCfg config.KafkaConfig, workerCfg config.WorkerConfig, handler CompletionHandler, log logging.Logger) (*CompletionConsumer, error) {
	if len(kafkaCfg.Brokers) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "kafka brokers are required")
	}
	if kafkaCfg.GroupID == "" {
		return nil, errors.New(errors.ErrCodeValidation, "kafka group id is required")
	}
	topic := kafkaCfg.CompletionTopic
	if topic == "" {
		topic = DefaultCompletionTopic
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kafkaCfg.Brokers,
		GroupID:     kafkaCfg.GroupID,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
	})
	return newCompletionConsumer(reader, workerCfg, handler, log), nil
}

// NewCompletionConsumerWithReader injects a reader, used by tests.
func NewCompletionConsumerWithReader(reader ReaderInterface, workerCfg config.WorkerConfig, handler CompletionHandler, log logging.Logger) *CompletionConsumer {
	return newCompletionConsumer(reader, workerCfg, handler, log)
}

func newCompletionConsumer(reader ReaderInterface, workerCfg config.WorkerConfig, handler CompletionHandler, log logging.Logger) *CompletionConsumer {
	maxRetries := workerCfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}
	backoff := workerCfg.RetryBackoff
	if backoff == 0 {
		backoff = time.Second
	}
	multiplier := workerCfg.BackoffMultiplier
	if multiplier < 1 {
		multiplier = 2
	}
	return &CompletionConsumer{
		reader:       reader,
		handler:      handler,
		logger:       log,
		maxRetries:   maxRetries,
		retryBackoff: backoff,
		multiplier:   multiplier,
	}
}

// Start launches the consume loop.  It returns immediately; Close stops the
// loop and waits for it to drain.
func (c *CompletionConsumer) Start(ctx context.Context) error {
	if c.running.Swap(true) {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	go c.consumeLoop(ctx)

	c.logger.Info("completion consumer started")
	return nil
}

func (c *CompletionConsumer) consumeLoop(ctx context.Context) {
	defer c.wg.Done()

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Error("failed to fetch message", logging.Err(err))
			time.Sleep(time.Second)
			continue
		}

		var event appasmt.CompletionEvent
		if err := json.Unmarshal(m.Value, &event); err != nil {
			c.logger.Error("dropping undecodable completion event",
				logging.Int64("offset", m.Offset),
				logging.Err(err))
			c.dropped.Add(1)
			c.commit(ctx, m)
			continue
		}

		if err := c.processWithRetry(ctx, event); err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Error("completion event exhausted retries",
				logging.String("event_id", event.EventID),
				logging.String("respondent_id", event.RespondentID),
				logging.Err(err))
			c.dropped.Add(1)
		} else {
			c.processed.Add(1)
		}
		c.commit(ctx, m)
	}
}

func (c *CompletionConsumer) processWithRetry(ctx context.Context, event appasmt.CompletionEvent) error {
	err := c.handler(ctx, event)
	if err == nil {
		return nil
	}

	backoff := c.retryBackoff
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		if err = c.handler(ctx, event); err == nil {
			return nil
		}
		backoff = time.Duration(float64(backoff) * c.multiplier)
	}
	return errors.Wrap(err, errors.ErrCodeNotifyExhausted, "handler failed after retries")
}

func (c *CompletionConsumer) commit(ctx context.Context, m kafka.Message) {
	if err := c.reader.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
		c.logger.Error("failed to commit offset",
			logging.Int64("offset", m.Offset),
			logging.Err(err))
	}
}

// Stats reports processed and dropped event counts.
func (c *CompletionConsumer) Stats() (processed, dropped int64) {
	return c.processed.Load(), c.dropped.Load()
}

func (c *CompletionConsumer) Close() error {
	if !c.running.CompareAndSwap(true, false) {
		return nil
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	err := c.reader.Close()
	c.logger.Info("completion consumer closed",
		logging.Int64("processed", c.processed.Load()),
		logging.Int64("dropped", c.dropped.Load()))
	return err
}
