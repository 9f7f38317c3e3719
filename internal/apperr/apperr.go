package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the HTTP boundary. Every expected
// failure in the service is one of these; anything else is Internal.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindBadRequest
)

// Error is the single error type the modules return for expected
// failures. The web package maps Kind to a status code exactly once.
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

// NotFound reports that the requested row does not exist, or that a
// mutation targeting an existing identifier affected zero rows.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict reports a failed uniqueness precondition or a referential
// integrity violation surfaced by the store.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// BadRequest reports a caller error in the request itself, such as a
// missing disambiguating parameter or a malformed body.
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// Internal wraps an unclassified failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for
// anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
