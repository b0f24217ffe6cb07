// Package errors defines site typed application errors.
package errors

import (
	stderrors "errors"
	"maps"
	"net/http"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
	KindRateLimited  Kind = "rate_limited"
)

// Error is a typed site application failure.
type Error struct {
	Kind    Kind
	Message string
	// Fields maps input field names to validation messages.
	Fields map[string]string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches another Error with the same kind and message, so typed
// sentinels work with errors.Is.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == e.Kind && t.Message == e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// Invalid builds an invalid-input Error carrying per-field messages.
func Invalid(message string, fields map[string]string) error {
	return Error{Kind: KindInvalidInput, Message: message, Fields: maps.Clone(fields)}
}

// KindOf returns the error kind, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// FieldErrors returns field validation messages when err carries them.
func FieldErrors(err error) map[string]string {
	var appErr Error
	if !stderrors.As(err, &appErr) || len(appErr.Fields) == 0 {
		return nil
	}
	return maps.Clone(appErr.Fields)
}

// PublicMessage returns a message safe to show to visitors.
func PublicMessage(err error) string {
	var appErr Error
	if stderrors.As(err, &appErr) && appErr.Kind != KindUnknown {
		return appErr.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
