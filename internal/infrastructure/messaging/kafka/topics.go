// Package kafka carries completion events from the API server to the
// notification worker.
package kafka

// DefaultCompletionTopic is used when the configuration leaves the topic
// unset.
const DefaultCompletionTopic = "culturiq.assessment.completed"

// Header keys stamped on every published message.
const (
	HeaderEventID     = "event_id"
	HeaderEventType   = "event_type"
	HeaderContentType = "content_type"
)

// EventTypeCompletion identifies the completion event schema.
const EventTypeCompletion = "assessment.completed"
