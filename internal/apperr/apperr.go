// Package apperr defines the error taxonomy shared by the handlers,
// the bookmark service and the validators. Every client-correctable
// failure carries a Kind; the kind is mapped to an HTTP status code
// only at the response-building boundary.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	// KindInternal covers storage failures, misconfiguration and
	// everything else the client cannot correct.
	KindInternal Kind = iota

	// KindValidation marks malformed or out-of-range client input.
	KindValidation

	// KindAuthentication marks a missing or incorrect API key.
	KindAuthentication
)

// Error is a tagged application error with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.err.Error())
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.err
}

// Validation builds a KindValidation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Validationf builds a KindValidation error with a formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Authentication builds a KindAuthentication error.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Internal wraps an unexpected failure. The message is what the client
// may see; the cause stays server-side.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, err: err}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for
// plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ClientMessage returns the message safe to surface to the caller.
// Internal errors collapse to a generic message so backend detail
// never leaks.
func ClientMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "Internal server error"
}
