package level

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	// ErrMissingParam indicates a required parameter was not written on the line.
	ErrMissingParam = errors.New("missing required parameter")

	// ErrBadParam indicates a parameter was present but could not be used.
	ErrBadParam = errors.New("bad parameter value")
)

// MissingParamError is returned by a strict accessor on an absent parameter.
type MissingParamError struct {
	Param string
	File  string
	Line  int
}

// Error implements the error interface.
func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing required parameter %q (in %s)", e.Param, location(e.File, e.Line))
}

// Is implements error matching for MissingParamError.
func (e *MissingParamError) Is(target error) bool {
	return target == ErrMissingParam
}

// BadParamError is returned when a present parameter fails the parse rule of
// the requested type, or when a line carries an argument nobody reads.
type BadParamError struct {
	Param    string
	File     string
	Line     int
	Expected string // type name the coercion was attempting
	Value    string // offending raw text
	Unused   bool   // argument not recognized by the reader
	Err      error  // underlying parse error, if any
}

// Error implements the error interface.
func (e *BadParamError) Error() string {
	if e.Unused {
		return fmt.Sprintf("unused argument %q (in %s)", e.Param, location(e.File, e.Line))
	}
	return fmt.Sprintf("unable to parse %q as %s (parameter %q in %s)",
		e.Value, e.Expected, e.Param, location(e.File, e.Line))
}

// Is implements error matching for BadParamError.
func (e *BadParamError) Is(target error) bool {
	return target == ErrBadParam
}

// Unwrap returns the underlying parse error.
func (e *BadParamError) Unwrap() error {
	return e.Err
}

// SyntaxError is returned by the tokenizer for a line it cannot split into
// a command and key=value arguments.
type SyntaxError struct {
	File    string
	Line    int
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in %s: %s", location(e.File, e.Line), e.Message)
}

// WriteError reports a line whose text would not read back as written:
// a value holding a line break, an unbalanced quote, or unquoted spaces.
type WriteError struct {
	Command string
	Param   string // empty when the command itself is at fault
	Value   string
	Reason  string
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("cannot write command %q: %s", e.Command, e.Reason)
	}
	return fmt.Sprintf("cannot write %s %s=%s: %s", e.Command, e.Param, e.Value, e.Reason)
}

func location(file string, line int) string {
	if file == "" {
		file = "<unknown>"
	}
	if line > 0 {
		return fmt.Sprintf("%s:%d", file, line)
	}
	return file
}
