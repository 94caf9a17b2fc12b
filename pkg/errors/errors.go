// Package errors augments the standard errors
// provided by fmt (https://golang.org/src/fmt/errors.go)
// with a Wrap() method to wrap errors without resorting
// to fmt.Errorf("%w", err).
package errors

import (
	stderr "errors"
	"fmt"
)

var _ error = New("")

// New Error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// NewChild returns a sentinel that errors.Is also matches against
// parent, so callers may classify at either level of the taxonomy.
func NewChild(parent *Error, msg string) *Error {
	return &Error{msg: msg, parent: parent}
}

// Error augments the standard error interface with a Wrap method.
//
// Sentinel errors declared with New stay immutable: Wrap returns a copy
// carrying the cause, and Is matches the copy back to its sentinel.
type Error struct {
	msg    string
	err    error
	base   *Error
	parent *Error
}

// Error message, with the cause appended when present
func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap returns a copy of this error wrapping a cause
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, base: e.root()}
}

// WrapMessage returns a copy of this error wrapping a formatted message
func (e *Error) WrapMessage(format string, args ...interface{}) *Error {
	return &Error{msg: e.msg, err: fmt.Errorf(format, args...), base: e.root()}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}
	return e
}

// Is of some error type? Matches the sentinel this error was wrapped
// from, any parent sentinel up the taxonomy, and the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == target || e.err == target {
		return true
	}
	for p := e.root(); p != nil; p = p.parent {
		if p == target {
			return true
		}
	}
	return false
}

// As finds the first error in err's chain that matches target, and if so, sets target to that error value and returns true.
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.As)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
