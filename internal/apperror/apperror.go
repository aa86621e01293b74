package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a domain error. Every kind maps to exactly one HTTP status.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is the single domain error type surfaced to the HTTP boundary.
type Error struct {
	Kind     Kind
	Message  string
	Metadata map[string]any

	cause error
}

func New(kind Kind, message string, metadata map[string]any) *Error {
	return &Error{Kind: kind, Message: message, Metadata: metadata}
}

func Validation(message string, metadata map[string]any) *Error {
	return New(KindValidation, message, metadata)
}

func Unauthorized(message string, metadata map[string]any) *Error {
	return New(KindUnauthorized, message, metadata)
}

func Forbidden(message string, metadata map[string]any) *Error {
	return New(KindForbidden, message, metadata)
}

func NotFound(message string, metadata map[string]any) *Error {
	return New(KindNotFound, message, metadata)
}

func Conflict(message string, metadata map[string]any) *Error {
	return New(KindConflict, message, metadata)
}

func Internal(message string, metadata map[string]any) *Error {
	return New(KindInternal, message, metadata)
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// StatusCode returns the HTTP status code of the error's kind.
func (e *Error) StatusCode() int { return e.Kind.Status() }

// Wrap returns a copy of e that records cause. The cause is kept for logging
// and errors.Is/As; it never reaches the rendered message.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

// As reports whether err is, or wraps, a domain error and returns it.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
