package stack

// arrayStack implements a Stack that holds its elements in a contiguous slice.
type arrayStack[T any] []T

// newArrayStack returns a new array backed Stack.
func newArrayStack[T any]() *arrayStack[T] {
	return new(arrayStack[T])
}

// Push pushes an element onto the top of this Stack.
func (s *arrayStack[T]) Push(element T) error {
	*s = append(*s, element)

	return nil
}

// Pop removes and returns the top element of this Stack.
func (s *arrayStack[T]) Pop() (value T, err error) {
	if s.IsEmpty() {
		return value, ErrUnderflow
	}

	index := len(*s) - 1
	value = (*s)[index]

	var emptyElement T
	(*s)[index] = emptyElement
	*s = (*s)[:index]

	return value, nil
}

// Peek returns the top element of this Stack without removing it.
func (s *arrayStack[T]) Peek() (value T, err error) {
	if s.IsEmpty() {
		return value, ErrUnderflow
	}

	return (*s)[len(*s)-1], nil
}

// Clear removes all elements from this Stack.
func (s *arrayStack[T]) Clear() {
	*s = nil
}

// Size returns the amount of elements in this Stack.
func (s *arrayStack[T]) Size() int {
	return len(*s)
}

// IsEmpty checks if this Stack is empty.
func (s *arrayStack[T]) IsEmpty() bool {
	return len(*s) == 0
}

// Capacity returns the maximum amount of elements this Stack accepts, or Unbounded.
func (s *arrayStack[T]) Capacity() int {
	return Unbounded
}

// String returns a human-readable version of this Stack (top element first).
func (s *arrayStack[T]) String() string {
	elements := make([]T, 0, len(*s))
	for index := len(*s) - 1; index >= 0; index-- {
		elements = append(elements, (*s)[index])
	}

	return stringifyElements(elements)
}

// code contract - make sure the type implements the interface.
var _ Stack[int] = &arrayStack[int]{}
