// Package domainerrors is the error channel of every aggregate constructor and
// use case. Errors carry a Code so callers (and the outer transport layer) can
// branch on the failure class without string matching.
//
// Infrastructure failures (network, database) are NOT coded: data sources
// return plain wrapped errors and those propagate unchanged.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain failure.
type Code string

const (
	// CodeInvalid means the input failed an entity or value-object invariant.
	CodeInvalid Code = "resource_invalid"
	// CodeNotFound means a lookup missed.
	CodeNotFound Code = "resource_not_found"
	// CodeConflict means a uniqueness or state-machine violation.
	CodeConflict Code = "resource_conflict"
	// CodeUnexpected is for unclassified failures, e.g. a missing association
	// detected right before serialization.
	CodeUnexpected Code = "unexpected"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the outermost coded error in the chain, or "" if none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// Is is an alias for HasCode kept for call sites that read better as Is(err, CodeX).
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// IsDomain reports whether err is a coded domain error (as opposed to a raw
// infrastructure failure).
func IsDomain(err error) bool {
	var de *Error
	return errors.As(err, &de)
}
