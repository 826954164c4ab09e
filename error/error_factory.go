package error

import "errors"

var (
	InterpreterClosed = errors.New("interpreter closed")
	CommandTimeout    = errors.New("command timed out")
)
