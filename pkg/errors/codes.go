package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeDatabaseError      ErrorCode = "COMMON_012"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
	ErrCodeNotImplemented     ErrorCode = "COMMON_015"
)

// Sentinel codes used by error-chain helpers.
const (
	CodeOK      = ErrorCode("OK")
	CodeUnknown = ErrorCode("UNKNOWN")
)

// Assessment module error codes.
const (
	ErrCodeInsufficientCredits  ErrorCode = "ASMT_001"
	ErrCodeInvalidAnswers       ErrorCode = "ASMT_002"
	ErrCodeAlreadySubmitted     ErrorCode = "ASMT_003"
	ErrCodeInsufficientData     ErrorCode = "ASMT_004"
	ErrCodeAssessmentLocked     ErrorCode = "ASMT_005"
	ErrCodeUnknownAssessment    ErrorCode = "ASMT_006"
	ErrCodeResultNotFound       ErrorCode = "ASMT_007"
	ErrCodeScoringFailed        ErrorCode = "ASMT_008"
)

// Entitlement module error codes.
const (
	ErrCodeResourceNotFound  ErrorCode = "ENT_001"
	ErrCodeResourceLocked    ErrorCode = "ENT_002"
	ErrCodeToolLocked        ErrorCode = "ENT_003"
	ErrCodeGrantFailed       ErrorCode = "ENT_004"
)

// Notification module error codes.
const (
	ErrCodeNotifyDispatchFailed ErrorCode = "NTF_001"
	ErrCodeNotifyExhausted      ErrorCode = "NTF_002"
	ErrCodeNotifyPublishFailed  ErrorCode = "NTF_003"
)

// errorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var errorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeInsufficientCredits: http.StatusPaymentRequired,
	ErrCodeInvalidAnswers:      http.StatusBadRequest,
	ErrCodeAlreadySubmitted:    http.StatusConflict,
	ErrCodeInsufficientData:    http.StatusUnprocessableEntity,
	ErrCodeAssessmentLocked:    http.StatusForbidden,
	ErrCodeUnknownAssessment:   http.StatusBadRequest,
	ErrCodeResultNotFound:      http.StatusNotFound,
	ErrCodeScoringFailed:       http.StatusInternalServerError,

	ErrCodeResourceNotFound: http.StatusNotFound,
	ErrCodeResourceLocked:   http.StatusForbidden,
	ErrCodeToolLocked:       http.StatusForbidden,
	ErrCodeGrantFailed:      http.StatusInternalServerError,

	ErrCodeNotifyDispatchFailed: http.StatusInternalServerError,
	ErrCodeNotifyExhausted:      http.StatusInternalServerError,
	ErrCodeNotifyPublishFailed:  http.StatusInternalServerError,
}

// errorCodeMessage maps ErrorCodes to default messages.
var errorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeInsufficientCredits: "insufficient credits",
	ErrCodeInvalidAnswers:      "invalid or insufficient answers",
	ErrCodeAlreadySubmitted:    "assessment already submitted",
	ErrCodeInsufficientData:    "insufficient data to compute a score",
	ErrCodeAssessmentLocked:    "assessment is locked",
	ErrCodeUnknownAssessment:   "unknown assessment type",
	ErrCodeResultNotFound:      "assessment result not found",
	ErrCodeScoringFailed:       "scoring failed",

	ErrCodeResourceNotFound: "resource not found",
	ErrCodeResourceLocked:   "resource is locked",
	ErrCodeToolLocked:       "tool is locked",
	ErrCodeGrantFailed:      "failed to persist grant",

	ErrCodeNotifyDispatchFailed: "notification dispatch failed",
	ErrCodeNotifyExhausted:      "notification retries exhausted",
	ErrCodeNotifyPublishFailed:  "failed to publish notification event",
}

// publicCode maps internal codes to the machine-readable codes exposed on the
// wire by the submission contract.  Codes without a mapping are exposed as-is.
var publicCode = map[ErrorCode]string{
	ErrCodeInsufficientCredits: "INSUFFICIENT_CREDITS",
	ErrCodeInvalidAnswers:      "INVALID_ANSWERS",
	ErrCodeAlreadySubmitted:    "ALREADY_SUBMITTED",
	ErrCodeInsufficientData:    "INSUFFICIENT_DATA",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := errorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// PublicCode returns the wire-level machine-readable code for an ErrorCode.
func PublicCode(code ErrorCode) string {
	if pub, ok := publicCode[code]; ok {
		return pub
	}
	return string(code)
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
