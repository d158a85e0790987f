// Package derrors defines the coded domain errors shared by every service.
// Stores speak sentinel errors; services translate those into coded errors
// carrying a user-facing message; the transport layer maps codes to HTTP
// statuses. Import aliased as dErrors.
package derrors

import (
	"errors"
	"net/http"
)

// Code classifies a domain error for transport-level translation.
type Code string

const (
	// CodeInvalidInput marks malformed or missing request input.
	CodeInvalidInput Code = "invalid_input"
	// CodeDuplicate marks a uniqueness violation surfaced to the client as a
	// bad request rather than a conflict (registration name/card reuse).
	CodeDuplicate Code = "duplicate"
	// CodeUnauthenticated marks a missing or unresolvable bearer credential.
	CodeUnauthenticated Code = "unauthenticated"
	// CodeNotFound marks a reference to an entity that does not exist for
	// the caller.
	CodeNotFound Code = "not_found"
	// CodeConflict marks an operation that contradicts current state
	// (already-owned film, unavailable format).
	CodeConflict Code = "conflict"
	// CodeRateLimited marks a client that exceeded the request rate.
	CodeRateLimited Code = "rate_limited"
	// CodeInternal marks an unexpected failure.
	CodeInternal Code = "internal"
)

// Error is a coded domain error with a message safe to return to clients.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and client-facing message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause. The cause stays
// reachable through errors.Is/errors.As.
func Wrap(cause error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// HasCode reports whether err (or anything it wraps) is a domain error with
// the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ToHTTPStatus maps a code to its HTTP status. Unknown codes are treated as
// internal failures.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput, CodeDuplicate:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
