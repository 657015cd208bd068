// Package apperrors carries the error taxonomy shared by every service:
// expected outcomes are surfaced verbatim to callers, transient failures may
// be retried by the caller, fatal ones abort with full context.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for propagation and HTTP mapping.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation is malformed or missing input, user-correctable.
	KindValidation
	// KindNotFound covers missing credentials, requests and identities.
	KindNotFound
	// KindConflict covers duplicate responses, duplicate registrations and
	// already-terminal statuses.
	KindConflict
	// KindUnauthorized means no usable session.
	KindUnauthorized
	// KindForbidden covers role mismatches and non-owner mutations.
	KindForbidden
	// KindExpired means an OTP past its TTL.
	KindExpired
	// KindTransient is a store timeout, safe for the caller to retry.
	KindTransient
	// KindFatal is a programming or data-integrity violation; never
	// converted into a user-facing success.
	KindFatal
)

// Error pairs a kind with a caller-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain; unclassified errors are
// treated as fatal so they are never silently swallowed.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindFatal
}

// Is reports whether the error chain carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the caller-facing message, or a generic one for
// unclassified errors.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// Convenience constructors for the common kinds.

func Validation(message string) *Error   { return New(KindValidation, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func Expired(message string) *Error      { return New(KindExpired, message) }

// Transient wraps a store timeout or connectivity failure.
func Transient(message string, err error) *Error {
	return Wrap(KindTransient, message, err)
}

// Fatal wraps an integrity violation.
func Fatal(message string, err error) *Error {
	return Wrap(KindFatal, message, err)
}
