// Package handlers contains the HTTP handlers for the public API.
package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// ErrorResponse is the wire shape of every error the API returns.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps an error onto the submission contract: client errors keep
// their machine-readable code and message, server errors are masked so
// internals never leak to callers.
func writeError(w http.ResponseWriter, log logging.Logger, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	resp := ErrorResponse{
		Code:    errors.PublicCode(code),
		Message: errors.DefaultMessageForCode(code),
	}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && status < http.StatusInternalServerError {
		resp.Message = appErr.Message
		resp.Detail = appErr.Detail
	}
	if status >= http.StatusInternalServerError && log != nil {
		log.Error("request failed",
			logging.String("code", code.String()),
			logging.Err(err))
	}

	writeJSON(w, status, resp)
}

func decodeBody(r *http.Request, dest interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return errors.Wrap(err, errors.ErrCodeBadRequest, "malformed request body")
	}
	return nil
}

// parseLimit reads an optional ?limit= query parameter, clamped to max.
func parseLimit(r *http.Request, def, max int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
