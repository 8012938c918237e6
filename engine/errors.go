// Package engine derives summary views (balances, statistics, budget
// utilization, goal progress, reminder windows) from already-fetched
// financial records. Every function is pure: it receives rows scoped to a
// single user and never touches storage or performs authorization.
package engine

import "errors"

// Kind classifies engine errors so callers can map them to a transport
// status without inspecting messages.
type Kind int

const (
	// KindNotFound covers both "does not exist" and "not owned by the
	// caller"; the two are deliberately indistinguishable.
	KindNotFound Kind = iota
	// KindInvalidInput is a missing field or a violated numeric constraint.
	KindInvalidInput
	// KindAlreadyCompleted is a completion request on a completed goal.
	KindAlreadyCompleted
)

// Error is a structured engine error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound builds a KindNotFound error.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// InvalidInput builds a KindInvalidInput error.
func InvalidInput(msg string) *Error { return &Error{Kind: KindInvalidInput, Message: msg} }

// AlreadyCompleted builds a KindAlreadyCompleted error.
func AlreadyCompleted(msg string) *Error { return &Error{Kind: KindAlreadyCompleted, Message: msg} }

// IsKind reports whether err is an engine error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
