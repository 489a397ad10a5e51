package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appasmt "github.com/culturiq/engine/internal/application/assessment"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

type mockWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *mockWriter) Close() error {
	w.closed = true
	return nil
}

func sampleEvent() appasmt.CompletionEvent {
	return appasmt.CompletionEvent{
		EventID:             "evt-1",
		RespondentID:        "u1",
		ResultID:            "res-1",
		AssessmentType:      "cirf",
		OverallScore:        72.5,
		Band:                "established",
		UnlockedAssessments: []string{"cimm", "tbl"},
		GrantedResources:    []string{"funding-guide-2026"},
		OccurredAt:          time.Now().UTC(),
	}
}

func TestPublishCompletion(t *testing.T) {
	writer := &mockWriter{}
	pub := NewCompletionPublisherWithWriter(writer, "", logging.NewNopLogger())

	event := sampleEvent()
	require.NoError(t, pub.PublishCompletion(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, []byte("u1"), msg.Key)

	var decoded appasmt.CompletionEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.ResultID, decoded.ResultID)
	assert.Equal(t, event.OverallScore, decoded.OverallScore)
	assert.Equal(t, event.UnlockedAssessments, decoded.UnlockedAssessments)

	headers := make(map[string]string)
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "evt-1", headers[HeaderEventID])
	assert.Equal(t, EventTypeCompletion, headers[HeaderEventType])
	assert.Equal(t, "application/json", headers[HeaderContentType])

	published, failed := pub.Stats()
	assert.Equal(t, int64(1), published)
	assert.Equal(t, int64(0), failed)
}

func TestPublishCompletion_WriteFailure(t *testing.T) {
	writer := &mockWriter{err: assert.AnError}
	pub := NewCompletionPublisherWithWriter(writer, "", logging.NewNopLogger())

	err := pub.PublishCompletion(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotifyPublishFailed))

	_, failed := pub.Stats()
	assert.Equal(t, int64(1), failed)
}

func TestPublishCompletion_AfterClose(t *testing.T) {
	writer := &mockWriter{}
	pub := NewCompletionPublisherWithWriter(writer, "", logging.NewNopLogger())

	require.NoError(t, pub.Close())
	assert.True(t, writer.closed)
	assert.Equal(t, ErrProducerClosed, pub.PublishCompletion(context.Background(), sampleEvent()))

	// Close is idempotent.
	assert.NoError(t, pub.Close())
}
