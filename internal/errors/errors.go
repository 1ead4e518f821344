// Package errors provides sentinel errors and error types for intboard.
// Callers inspect them with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidArgument indicates a contract violation at an encoding
	// boundary: an absent value, a sentinel, or a value outside the domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownMove indicates a move text that matches no legal move.
	ErrUnknownMove = errors.New("unknown move")

	// ErrMismatch indicates the packed position diverged from the reference.
	ErrMismatch = errors.New("position mismatch")
)

// FENError reports which FEN field could not be parsed.
type FENError struct {
	Err   error  // The underlying error
	Field string // Name of the field, e.g. "castling"
	Value string // The offending text
}

// Error returns a message naming the field and value.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	msg := strings.Join(parts, " ")
	if e.Err == nil {
		if msg == "" {
			return ErrInvalidFEN.Error()
		}
		return msg
	}
	if msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// MismatchError describes where a verification walk diverged.
type MismatchError struct {
	Err   error  // The underlying error, usually ErrMismatch
	Path  string // Moves from the root, space separated
	Want  string // Expected FEN
	Got   string // Actual FEN
	Stage string // "make" or "undo"
}

// Error returns a formatted message with the move path and both positions.
func (e *MismatchError) Error() string {
	var sb strings.Builder
	if e.Stage != "" {
		sb.WriteString(e.Stage)
		sb.WriteString(" ")
	}
	if e.Path != "" {
		fmt.Fprintf(&sb, "after %q", e.Path)
	} else {
		sb.WriteString("at root")
	}
	if e.Want != "" || e.Got != "" {
		fmt.Fprintf(&sb, ": want %q, got %q", e.Want, e.Got)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", sb.String(), e.Err)
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *MismatchError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
