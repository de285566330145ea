package stack

import "github.com/pkg/errors"

var (
	// ErrUnderflow is returned when Pop or Peek is called on an empty Stack.
	ErrUnderflow = errors.New("stack underflow: the stack holds no elements")

	// ErrOverflow is returned when Push is called on a bounded Stack that reached its capacity.
	ErrOverflow = errors.New("stack overflow: the stack reached its capacity")
)
