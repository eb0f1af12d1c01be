package export

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a call was rejected before any output was produced.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which argument was rejected and why.
type ArgumentError struct {
	Argument string
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidArgument, e.Argument, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArgument(argument, format string, args ...any) *ArgumentError {
	return &ArgumentError{
		Argument: argument,
		Reason:   fmt.Sprintf(format, args...),
	}
}
