package errs

import (
	"errors"
	"fmt"

	cr "github.com/cockroachdb/errors"
)

// Kind classifies a failure for callers of the booking core.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindBadRequest   Kind = "BAD_REQUEST"
	KindConflict     Kind = "CONFLICT"
	KindForbidden    Kind = "FORBIDDEN"
	KindInvalidState Kind = "INVALID_STATE"
)

func (k Kind) String() string {
	return string(k)
}

// Error carries a Kind and a message that is safe to show to the caller.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func BadRequest(msg string) error {
	return &Error{Kind: KindBadRequest, Msg: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Msg: msg}
}

func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

func InvalidState(msg string) error {
	return &Error{Kind: KindInvalidState, Msg: msg}
}

// Newf builds a kind error with a formatted message and records the call site.
func Newf(kind Kind, format string, args ...any) error {
	return cr.WithStackDepth(&Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}, 1)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Message returns the caller-facing message of the innermost kind error,
// or an empty string if err carries no kind.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return ""
}
