package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusPaymentRequired, HTTPStatusForCode(ErrCodeInsufficientCredits))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusForCode(ErrCodeInvalidAnswers))
	assert.Equal(t, http.StatusConflict, HTTPStatusForCode(ErrCodeAlreadySubmitted))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatusForCode(ErrCodeInsufficientData))
	assert.Equal(t, http.StatusForbidden, HTTPStatusForCode(ErrCodeResourceLocked))
	assert.Equal(t, http.StatusNotFound, HTTPStatusForCode(ErrCodeResultNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusForCode(ErrCodeDatabaseError))

	// Unmapped codes degrade to 500 rather than leaking a zero status.
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusForCode(ErrorCode("NOPE_999")))
}

func TestDefaultMessageForCode(t *testing.T) {
	assert.Equal(t, "insufficient credits", DefaultMessageForCode(ErrCodeInsufficientCredits))
	assert.Equal(t, "assessment already submitted", DefaultMessageForCode(ErrCodeAlreadySubmitted))
	assert.Equal(t, "unknown error", DefaultMessageForCode(ErrorCode("NOPE_999")))
}

func TestPublicCode(t *testing.T) {
	assert.Equal(t, "INSUFFICIENT_CREDITS", PublicCode(ErrCodeInsufficientCredits))
	assert.Equal(t, "INVALID_ANSWERS", PublicCode(ErrCodeInvalidAnswers))
	assert.Equal(t, "ALREADY_SUBMITTED", PublicCode(ErrCodeAlreadySubmitted))
	assert.Equal(t, "INSUFFICIENT_DATA", PublicCode(ErrCodeInsufficientData))

	// Codes without a wire alias are exposed verbatim.
	assert.Equal(t, "ENT_002", PublicCode(ErrCodeResourceLocked))
	assert.Equal(t, "COMMON_001", PublicCode(ErrCodeInternal))
}

func TestIsClientAndServerError(t *testing.T) {
	assert.True(t, IsClientError(ErrCodeInvalidAnswers))
	assert.False(t, IsServerError(ErrCodeInvalidAnswers))

	assert.True(t, IsServerError(ErrCodeDatabaseError))
	assert.False(t, IsClientError(ErrCodeDatabaseError))
}

func TestModuleForCode(t *testing.T) {
	assert.Equal(t, "COMMON", ModuleForCode(ErrCodeInternal))
	assert.Equal(t, "ASMT", ModuleForCode(ErrCodeInvalidAnswers))
	assert.Equal(t, "ENT", ModuleForCode(ErrCodeResourceLocked))
	assert.Equal(t, "NTF", ModuleForCode(ErrCodeNotifyDispatchFailed))
	assert.Equal(t, "UNKNOWN", ModuleForCode(ErrorCode("")))
}
