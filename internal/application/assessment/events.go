package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/culturiq/engine/internal/domain/assessment"
)

// CompletionEvent is published after a submission commits.  The notification
// worker consumes it to send the respondent their results email.
type CompletionEvent struct {
	EventID             string    `json:"eventId"`
	RespondentID        string    `json:"respondentId"`
	Email               string    `json:"email,omitempty"`
	ResultID            string    `json:"resultId"`
	AssessmentType      string    `json:"assessmentType"`
	OverallScore        float64   `json:"overallScore"`
	Band                string    `json:"band"`
	UnlockedAssessments []string  `json:"unlockedAssessments,omitempty"`
	GrantedTools        []string  `json:"grantedTools,omitempty"`
	GrantedResources    []string  `json:"grantedResources,omitempty"`
	OccurredAt          time.Time `json:"occurredAt"`
}

// NewCompletionEvent builds the event for one committed submission.  Email
// may be empty; the worker skips the summary email when it is.
func NewCompletionEvent(respondentID, email string, result *assessment.Result, out *SubmitOutput) CompletionEvent {
	return CompletionEvent{
		EventID:             uuid.NewString(),
		RespondentID:        respondentID,
		Email:               email,
		ResultID:            result.ID,
		AssessmentType:      string(result.Type),
		OverallScore:        result.OverallScore,
		Band:                string(result.Interpretation.Level),
		UnlockedAssessments: out.UnlockedAssessments,
		GrantedTools:        out.GrantedTools,
		GrantedResources:    out.GrantedResources,
		OccurredAt:          time.Now().UTC(),
	}
}
