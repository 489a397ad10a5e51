package kafka

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	appasmt "github.com/culturiq/engine/internal/application/assessment"
	"github.com/culturiq/engine/internal/config"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

var ErrProducerClosed = errors.New(errors.ErrCodeInternal, "kafka producer is closed")

// WriterInterface abstracts kafka.Writer for testing.
type WriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// CompletionPublisher writes completion events to the completion topic,
// keyed by respondent so one respondent's events stay ordered.
type CompletionPublisher struct {
	writer WriterInterface
	topic  string
	logger logging.Logger
	closed atomic.Bool

	published atomic.Int64
	failed    atomic.Int64
}

// NewCompletionPublisher builds a publisher against the configured brokers.
func NewCompletionPublisher(cfg config.KafkaConfig, log logging.Logger) (*CompletionPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "kafka brokers are required")
	}
	topic := cfg.CompletionTopic
	if topic == "" {
		topic = DefaultCompletionTopic
	}
	batchTimeout := cfg.BatchTimeout
	if batchTimeout == 0 {
		batchTimeout = 100 * time.Millisecond
	}
	retries := cfg.ProducerRetries
	if retries == 0 {
		retries = 3
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		MaxAttempts:  retries + 1,
		BatchTimeout: batchTimeout,
		RequiredAcks: kafka.RequireAll,
	}
	return &CompletionPublisher{writer: writer, topic: topic, logger: log}, nil
}

// NewCompletionPublisherWithWriter injects a writer, used by tests.
func NewCompletionPublisherWithWriter(writer WriterInterface, topic string, log logging.Logger) *CompletionPublisher {
	if topic == "" {
		topic = DefaultCompletionTopic
	}
	return &CompletionPublisher{writer: writer, topic: topic, logger: log}
}

// PublishCompletion serializes and writes one completion event.
func (p *CompletionPublisher) PublishCompletion(ctx context.Context, event appasmt.CompletionEvent) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode completion event")
	}

	msg := kafka.Message{
		Key:   []byte(event.RespondentID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.EventID)},
			{Key: HeaderEventType, Value: []byte(EventTypeCompletion)},
			{Key: HeaderContentType, Value: []byte("application/json")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.failed.Add(1)
		return errors.Wrap(err, errors.ErrCodeNotifyPublishFailed, "failed to publish completion event")
	}

	p.published.Add(1)
	p.logger.Debug("completion event published",
		logging.String("event_id", event.EventID),
		logging.String("respondent_id", event.RespondentID),
		logging.String("topic", p.topic),
	)
	return nil
}

// Stats reports how many events were published and how many failed.
func (p *CompletionPublisher) Stats() (published, failed int64) {
	return p.published.Load(), p.failed.Load()
}

func (p *CompletionPublisher) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := p.writer.Close()
	p.logger.Info("Kafka completion publisher closed",
		logging.Int64("published", p.published.Load()))
	return err
}
