package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	appasmt "github.com/culturiq/engine/internal/application/assessment"
	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/domain/unlock"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// AssessmentService is the application surface the handler needs.
type AssessmentService interface {
	Submit(ctx context.Context, in appasmt.SubmitInput) (*appasmt.SubmitOutput, error)
	Preview(ctx context.Context, in appasmt.SubmitInput) (*appasmt.PreviewOutput, error)
	GetResult(ctx context.Context, id string) (*assessment.Result, error)
	ListResults(ctx context.Context, respondentID string) ([]*assessment.Result, error)
	UnlockState(ctx context.Context, respondentID string) (map[assessment.Type]unlock.Status, int, error)
}

// AssessmentHandler serves submissions, previews, and stored results.
type AssessmentHandler struct {
	service AssessmentService
	logger  logging.Logger
}

// NewAssessmentHandler creates an AssessmentHandler.
func NewAssessmentHandler(service AssessmentService, logger logging.Logger) *AssessmentHandler {
	return &AssessmentHandler{service: service, logger: logger}
}

// submitRequest is the body of a submit or preview call.
type submitRequest struct {
	RespondentID string               `json:"respondentId"`
	Email        string               `json:"email,omitempty"`
	Answers      assessment.AnswerMap `json:"answers"`
}

func (req submitRequest) toInput(assessmentType string) appasmt.SubmitInput {
	return appasmt.SubmitInput{
		RespondentID: req.RespondentID,
		Email:        req.Email,
		Type:         assessmentType,
		Answers:      req.Answers,
	}
}

// Submit handles POST /api/v1/assessments/{type}/submit.
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	out, err := h.service.Submit(r.Context(), req.toInput(chi.URLParam(r, "type")))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// Preview handles POST /api/v1/assessments/{type}/preview.  It scores
// without spending credits or persisting anything.
func (h *AssessmentHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	out, err := h.service.Preview(r.Context(), req.toInput(chi.URLParam(r, "type")))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GetResult handles GET /api/v1/results/{id}.
func (h *AssessmentHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, h.logger, errors.New(errors.ErrCodeBadRequest, "result id is required"))
		return
	}

	result, err := h.service.GetResult(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ListResults handles GET /api/v1/respondents/{id}/results.
func (h *AssessmentHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	respondentID := chi.URLParam(r, "id")
	if respondentID == "" {
		writeError(w, h.logger, errors.New(errors.ErrCodeBadRequest, "respondent id is required"))
		return
	}

	results, err := h.service.ListResults(r.Context(), respondentID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if results == nil {
		results = []*assessment.Result{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// unlockStateResponse reports the lifecycle of every assessment for one
// respondent plus their current credit balance.
type unlockStateResponse struct {
	Assessments map[assessment.Type]unlock.Status `json:"assessments"`
	Credits     int                               `json:"credits"`
}

// UnlockState handles GET /api/v1/respondents/{id}/unlocks.
func (h *AssessmentHandler) UnlockState(w http.ResponseWriter, r *http.Request) {
	respondentID := chi.URLParam(r, "id")
	if respondentID == "" {
		writeError(w, h.logger, errors.New(errors.ErrCodeBadRequest, "respondent id is required"))
		return
	}

	statuses, credits, err := h.service.UnlockState(r.Context(), respondentID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, unlockStateResponse{Assessments: statuses, Credits: credits})
}
