// Package coreerrors defines the two error kinds the scheduling core
// returns: InvalidInput and ProgrammerError. A section with no
// conflict-free slot is not an error and has no Kind here; its violations
// are carried as data inside a ScheduleResult.
package coreerrors

import (
	"errors"
	"fmt"
)

// Kind is one of the core's recognized error categories.
type Kind string

const (
	// KindInvalidInput marks a dataset or parameter that contradicts a
	// stated invariant. Raised eagerly, before phase A; nothing is computed.
	KindInvalidInput Kind = "invalid_input"

	// KindProgrammerError marks an internal contract violation never
	// expected in production (e.g. coloring requested on an empty graph
	// built from a non-empty dataset).
	KindProgrammerError Kind = "programmer_error"
)

// Error is the core's typed error value.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidInput constructs a KindInvalidInput error.
func InvalidInput(code, message string) *Error {
	return &Error{Kind: KindInvalidInput, Code: code, Message: message}
}

// InvalidInputf is InvalidInput with a formatted message.
func InvalidInputf(code, format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Code: code, Message: fmt.Sprintf(format, args...)}
}

// ProgrammerError constructs a KindProgrammerError error.
func ProgrammerError(code, message string) *Error {
	return &Error{Kind: KindProgrammerError, Code: code, Message: message}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
