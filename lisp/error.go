package lisp

import (
	"errors"
	"fmt"
)

// ErrExit is returned from evaluation when the exit special form is
// encountered.  It terminates the session, not the process, so embedders
// decide what exiting means.
var ErrExit = errors.New("exit")

// ErrorVal is the single kind of error produced by the language.  Reason is
// a human readable description.  Stack holds the call stack at the point the
// error escaped its innermost function call, when known.
type ErrorVal struct {
	Reason string
	Stack  *CallStack
}

// Errorf returns an ErrorVal with a formatted reason.
func Errorf(format string, v ...interface{}) error {
	return &ErrorVal{Reason: fmt.Sprintf(format, v...)}
}

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	return e.Reason
}

// ErrorStack returns the call stack attached to err if err is an ErrorVal.
func ErrorStack(err error) *CallStack {
	var lerr *ErrorVal
	if errors.As(err, &lerr) {
		return lerr.Stack
	}
	return nil
}
