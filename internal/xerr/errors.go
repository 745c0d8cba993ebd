// Package xerr provides the structured error type shared by every xmldiff
// package.
package xerr

import (
	"errors"
)

// ErrMalformedXML is returned when an input document fails to parse. Wrap
// it into an *Error with Wrap so callers can still errors.Is against the
// sentinel.
var ErrMalformedXML = errors.New("malformed xml")

// Error represents an operation error with context, in the style used
// throughout this module: package, operation, and an optional path,
// wrapping an underlying cause.
type Error struct {
	// Package identifies the package where the error originated, e.g.
	// "unode", "xmldiff", "overlay".
	Package string

	// Op describes the operation being performed, e.g. "parse", "project".
	Op string

	// Path is the xpath or file path involved, if any.
	Path string

	Err error
}

func (e *Error) Error() string {
	msg := e.Package
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns nil if err is nil, otherwise an *Error carrying pkg/op/path
// context around err.
func Wrap(pkg, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Package: pkg, Op: op, Path: path, Err: err}
}
