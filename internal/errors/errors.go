// Package errors provides structured error types and exit codes for the aoc CLI.
package errors

import (
	"fmt"
)

// Exit codes reported by the aoc binary.
const (
	ExitSuccess          = 0 // Success, all answers printed
	ExitComputationError = 1 // A day's logic could not produce an answer
	ExitInputError       = 2 // Input file missing, unreadable, or not text
	ExitConfigError      = 3 // Invalid configuration file
)

// Kind represents the type of error.
type Kind int

const (
	KindComputation Kind = iota
	KindInputNotFound
	KindInputDecode
	KindConfig
)

// Error is the base error type for the aoc CLI.
type Error struct {
	Kind    Kind
	Message string
	Day     int    // puzzle day if applicable
	Part    string // part name if applicable
	Cause   error  // underlying error
}

func (e *Error) Error() string {
	if e.Day != 0 && e.Part != "" {
		return fmt.Sprintf("[day %d part %s] %s", e.Day, e.Part, e.Message)
	}
	if e.Day != 0 {
		return fmt.Sprintf("[day %d] %s", e.Day, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindInputNotFound, KindInputDecode:
		return ExitInputError
	case KindConfig:
		return ExitConfigError
	default:
		return ExitComputationError
	}
}

// InputNotFound reports a resolved input path that does not exist or
// cannot be opened.
func InputNotFound(path string, cause error) *Error {
	return &Error{
		Kind:    KindInputNotFound,
		Message: fmt.Sprintf("input file not found: %s", path),
		Cause:   cause,
	}
}

// InputDecode reports an input file whose content is not valid text.
func InputDecode(path string) *Error {
	return &Error{
		Kind:    KindInputDecode,
		Message: fmt.Sprintf("input file is not valid UTF-8 text: %s", path),
	}
}

// Computation wraps a solver failure with the day and part it came from.
func Computation(day int, part string, cause error) *Error {
	return &Error{
		Kind:    KindComputation,
		Message: cause.Error(),
		Day:     day,
		Part:    part,
		Cause:   cause,
	}
}

// Computationf creates a solver failure with formatting.
func Computationf(day int, part string, format string, args ...any) *Error {
	return &Error{
		Kind:    KindComputation,
		Message: fmt.Sprintf(format, args...),
		Day:     day,
		Part:    part,
	}
}

// Config creates a new configuration error.
func Config(message string) *Error {
	return &Error{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...any) *Error {
	return Config(fmt.Sprintf(format, args...))
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ae, ok := err.(*Error); ok {
		return ae.ExitCode()
	}
	return ExitComputationError
}
