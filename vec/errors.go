package vec

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Insert and Replace for invalid positions.
var ErrIndexOutOfRange = errors.New("index out of range")

// Error describes a failed vector operation.
type Error struct {
	// Op is the operation that failed (e.g., "push", "clone").
	Op string
	// Index is the position involved, or -1.
	Index int
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("vec: %s at %d: %v", e.Op, e.Index, e.Err)
	}
	return fmt.Sprintf("vec: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	return &Error{Op: op, Index: -1, Err: err}
}

func indexError(op string, index int, err error) error {
	return &Error{Op: op, Index: index, Err: err}
}
