package stack

import "github.com/pkg/errors"

// boundedStack implements a Stack decorator that enforces a maximum amount of elements.
type boundedStack[T any] struct {
	stack    Stack[T]
	capacity int
}

// newBoundedStack returns a new Stack whose Push fails with ErrOverflow once the given
// capacity is reached.
func newBoundedStack[T any](stack Stack[T], capacity int) *boundedStack[T] {
	return &boundedStack[T]{
		stack:    stack,
		capacity: capacity,
	}
}

// Push pushes an element onto the top of this Stack.
// It fails with ErrOverflow if the Stack is full.
func (s *boundedStack[T]) Push(element T) error {
	if s.stack.Size() == s.capacity {
		return errors.Wrapf(ErrOverflow, "the stack is at its capacity of %d elements", s.capacity)
	}

	return s.stack.Push(element)
}

// Pop removes and returns the top element of this Stack.
func (s *boundedStack[T]) Pop() (T, error) {
	return s.stack.Pop()
}

// Peek returns the top element of this Stack without removing it.
func (s *boundedStack[T]) Peek() (T, error) {
	return s.stack.Peek()
}

// Clear removes all elements from this Stack.
func (s *boundedStack[T]) Clear() {
	s.stack.Clear()
}

// Size returns the amount of elements in this Stack.
func (s *boundedStack[T]) Size() int {
	return s.stack.Size()
}

// IsEmpty checks if this Stack is empty.
func (s *boundedStack[T]) IsEmpty() bool {
	return s.stack.IsEmpty()
}

// Capacity returns the maximum amount of elements this Stack accepts.
func (s *boundedStack[T]) Capacity() int {
	return s.capacity
}

// String returns a human-readable version of this Stack (top element first).
func (s *boundedStack[T]) String() string {
	return s.stack.String()
}

// code contract - make sure the type implements the interface.
var _ Stack[int] = &boundedStack[int]{}
