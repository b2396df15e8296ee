// Package errors builds formatted errors that keep their cause available
// for errors.Unwrap.
package errors

import (
	"fmt"
)

type err struct {
	msg  string
	args []interface{}
}

// Error formats the message with its args, like fmt.Errorf.
func (err err) Error() string {
	return fmt.Sprintf(err.msg, err.args...)
}

// Unwrap returns the first arg that is itself an error, if any.
func (err err) Unwrap() error {
	for _, arg := range err.args {
		if wrapped, ok := arg.(error); ok {
			return wrapped
		}
	}
	return nil
}

// New returns an error with a printf-style message. If any arg is an error,
// it becomes the wrapped cause.
func New(msg string, args ...interface{}) error {
	return err{msg, args}
}
