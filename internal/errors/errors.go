package errors

import "fmt"

// Error tags a failure with the command operation it interrupted.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("operation %q failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func E(op string, err error) error {
	return &Error{Op: op, Err: err}
}
