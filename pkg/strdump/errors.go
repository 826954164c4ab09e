package strdump

import (
	"fmt"
	"strings"
)

// EvalError reports that the host failed to evaluate the length field.
type EvalError struct {
	Target string
	Err    error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("dbgvis %v", e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// ParseError reports a length evaluation that did not print an integer.
type ParseError struct {
	Target string
	Output string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("length of %s is not an integer: %q", e.Target, strings.TrimSpace(e.Output))
}

// LimitError reports a declared length over the dump threshold.
type LimitError struct {
	Requested int
	Threshold int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("Unable to read %d bytes (threshold = %d)", e.Requested, e.Threshold)
}

// ReadError reports a failed memory-read command.
type ReadError struct {
	Target string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("dbgvis %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
