// Package stack provides a last-in-first-out container with interchangeable internal
// representations behind a single behavioral contract.
package stack

import (
	"fmt"
	"strings"
)

// Stack is a stack of elements.
type Stack[T any] interface {
	// Push pushes an element onto the top of this Stack.
	// It fails with ErrOverflow if the Stack was created with a capacity and is full.
	Push(element T) error

	// Pop removes and returns the top element of this Stack.
	// It fails with ErrUnderflow if the Stack is empty.
	Pop() (T, error)

	// Peek returns the top element of this Stack without removing it.
	// It fails with ErrUnderflow if the Stack is empty.
	Peek() (T, error)

	// Clear removes all elements from this Stack.
	Clear()

	// Size returns the amount of elements in this Stack.
	Size() int

	// IsEmpty checks if this Stack is empty.
	IsEmpty() bool

	// Capacity returns the maximum amount of elements this Stack accepts, or Unbounded.
	Capacity() int

	// String returns a human-readable version of this Stack (top element first).
	String() string
}

// New returns a new empty Stack that uses the representation and limits configured by the given
// options. Without options it returns an unbounded, array backed, non-thread safe Stack.
func New[T any](opts ...Option) Stack[T] {
	stackOpts := &Options{}
	stackOpts.apply(defaultOptions...)
	stackOpts.apply(opts...)

	var stack Stack[T]
	switch stackOpts.backend {
	case ArrayBackend:
		stack = newArrayStack[T]()
	case MapBackend:
		stack = newMapStack[T](stackOpts)
	case ListBackend:
		stack = newLinkedStack[T]()
	default:
		panic(fmt.Sprintf("unknown stack backend (%d)", stackOpts.backend))
	}

	if stackOpts.capacity != Unbounded {
		stack = newBoundedStack[T](stack, stackOpts.capacity)
	}

	if stackOpts.threadSafe {
		stack = newThreadSafeStack[T](stack)
	}

	return stack
}

// Backend selects the internal representation of a Stack.
type Backend uint8

const (
	// ArrayBackend holds the elements in a contiguous slice whose last index is the top.
	ArrayBackend Backend = iota

	// MapBackend holds the elements in a map keyed by a dense index with an explicit top index counter.
	MapBackend

	// ListBackend holds the elements in singly linked nodes leading from the top towards the bottom.
	ListBackend
)

// String returns a human-readable version of the Backend.
func (b Backend) String() string {
	switch b {
	case ArrayBackend:
		return "ArrayBackend"
	case MapBackend:
		return "MapBackend"
	case ListBackend:
		return "ListBackend"
	default:
		return fmt.Sprintf("Backend(%d)", b)
	}
}

// stringifyElements renders the given elements as a single line (top element first).
func stringifyElements[T any](elements []T) string {
	parts := make([]string, len(elements))
	for i, element := range elements {
		parts[i] = fmt.Sprint(element)
	}

	return "Stack[" + strings.Join(parts, ", ") + "]"
}
