// Package apperror defines the error taxonomy shared by the service and
// handler layers. Every failed operation maps to exactly one code, and
// every code maps to exactly one HTTP status.
package apperror

import (
	"errors"
	"net/http"
)

// Code classifies an error for transport mapping.
type Code int

const (
	// CodeInvalidArgument marks malformed, incomplete, or inconsistent
	// input. Maps to 400.
	CodeInvalidArgument Code = iota + 1

	// CodeNotFound marks a referenced entity that does not exist.
	// Maps to 404.
	CodeNotFound

	// CodeInternal is the fallback for everything else: store failures,
	// decode failures, unparseable numbers. Maps to 500. The underlying
	// message is exposed to the caller as-is.
	CodeInternal
)

// Error is a coded error with a caller-visible message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New returns an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Internal wraps an arbitrary failure as a CodeInternal error, exposing
// the raw underlying message.
func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: err.Error()}
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// errors that carry no code.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HTTPStatus maps an error to its HTTP status code.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
