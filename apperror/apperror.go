package apperror

import (
	"fmt"
	"net/http"
)

// Error codes exposed in API error payloads
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Error is a structured application error carrying the HTTP status it maps to.
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
	Cause      error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Validation(message string, details any, cause error) *Error {
	return &Error{
		Code:       CodeValidationFailed,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

func Unauthorized(message string) *Error {
	return &Error{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NotFound(message string) *Error {
	return &Error{
		Code:       CodeNotFound,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

func Conflict(message string, cause error) *Error {
	return &Error{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
		Cause:      cause,
	}
}

func Internal(message string, cause error) *Error {
	return &Error{
		Code:       CodeInternalError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}
