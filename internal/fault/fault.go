// Package fault defines the error taxonomy shared by the service and
// API layers. Every domain error carries a machine-readable Kind plus a
// human-readable detail; the API layer maps kinds to HTTP statuses.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller.
type Kind string

const (
	// BadRequest covers schema validation failures and referential
	// integrity violations (unknown payer/participant, amount <= 0).
	BadRequest Kind = "bad_request"

	// Unauthorized covers bad credentials and invalid, expired or
	// malformed tokens.
	Unauthorized Kind = "unauthorized"

	// Forbidden means the caller is authenticated but not allowed to
	// act on the resource (non-creator touching a group).
	Forbidden Kind = "forbidden"

	// NotFound means the referenced resource does not exist.
	NotFound Kind = "not_found"

	// Conflict means the resource already exists (duplicate registration).
	Conflict Kind = "conflict"

	// Internal is the fallback for unclassified failures.
	Internal Kind = "internal"
)

// Error is a kinded error with a caller-facing detail message.
type Error struct {
	Kind   Kind
	Detail string
	Err    error // optional cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a kinded error with the given detail.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Errorf returns a kinded error with a formatted detail.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and detail to an underlying cause.
func Wrap(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// KindOf extracts the Kind from err, or Internal if err carries none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Internal
}

// DetailOf extracts the caller-facing detail from err. Unclassified
// errors get a generic message so internals do not leak to clients.
func DetailOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Detail
	}
	return "internal server error"
}
