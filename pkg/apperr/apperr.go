package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries a stable code for the HTTP boundary plus a message that is
// safe to show to the end user. Cause keeps the underlying error for logs only.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Constructors
func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func InvalidRequest(msg string) error {
	return New(CodeInvalidRequest, msg)
}

func Unauthorized(msg string) error {
	return New(CodeUnauthorized, msg)
}

func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

func InvalidTransition(msg string) error {
	return New(CodeInvalidTransition, msg)
}

// StoreUnavailable hides storage details behind a generic retryable failure.
func StoreUnavailable(cause error) error {
	return Wrap(CodeStoreUnavailable, "storage is temporarily unavailable", cause)
}

// CodeOf extracts the taxonomy code from err, or CodeUnknown for untyped errors.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// HTTPStatus maps a taxonomy code to its stable status class.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidTransition:
		return http.StatusConflict
	case CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// SafeMessage returns the user-facing message for err. Untyped errors collapse
// to a generic message so internals never leak to clients.
func SafeMessage(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "something went wrong"
}
