package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeConflict            = "CONFLICT"
	CodeDuplicateReceipt    = "DUPLICATE_RECEIPT"
	CodeTokenMalformed      = "TOKEN_MALFORMED"
	CodeTokenInvalid        = "TOKEN_INVALID"
	CodeTokenExpired        = "TOKEN_EXPIRED"
	CodeClaimNotApproved    = "CLAIM_NOT_APPROVED"
	CodeAssetNotFound       = "ASSET_NOT_FOUND"
	CodeCodeNotRedeemable   = "CODE_NOT_REDEEMABLE"
	CodeCodeExhausted       = "CODE_EXHAUSTED"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	CodeFileTooLarge        = "FILE_TOO_LARGE"
	CodeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
	CodeConfigurationError  = "CONFIGURATION_ERROR"
	CodeEmailServiceError   = "EMAIL_SERVICE_ERROR"
	CodeAIServiceError      = "AI_SERVICE_ERROR"
	CodeInternalError       = "INTERNAL_ERROR"
)

// APIError is a structured error carrying an HTTP status, a machine-readable
// code, and a user-facing message. It wraps the underlying error for logs.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden creates a 403 error
func Forbidden(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: code, Message: message}
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// Gone creates a 410 error, used for expired download links so clients can
// tell "request a new link" apart from "broken link"
func Gone(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusGone, Code: code, Message: message}
}

// ContentTooLarge creates a 413 error
func ContentTooLarge(message string) *APIError {
	return &APIError{StatusCode: http.StatusRequestEntityTooLarge, Code: CodeFileTooLarge, Message: message}
}

// TooManyRequests creates a 429 error
func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimitExceeded, Message: message}
}

// ServiceUnavailable creates a 503 error wrapping the internal cause
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError creates a sanitized 500 error; the cause goes to logs only
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
