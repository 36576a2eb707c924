package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeNotFound     = "NOT_FOUND"
	CodeInvalidInput = "INVALID_INPUT"
	CodeInternal     = "INTERNAL_ERROR"
)

// APIError is an error that knows how it should be rendered over HTTP.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound builds a 404. Rendered with an empty body.
func NotFound(err error) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: "Not found", Err: err}
}

// BadRequest builds a 400
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// InternalError builds a sanitized 500 - never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
