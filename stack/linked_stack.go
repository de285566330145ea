package stack

// linkedStack implements a Stack that holds its elements in singly linked nodes.
type linkedStack[T any] struct {
	// top is the node holding the most recently pushed element, or nil when the Stack is empty.
	top *stackNode[T]

	// size is the maintained amount of elements in this Stack.
	size int
}

// stackNode is a container for an element and the link towards the node below it.
type stackNode[T any] struct {
	element T
	next    *stackNode[T]
}

// newLinkedStack returns a new linked list backed Stack.
func newLinkedStack[T any]() *linkedStack[T] {
	return &linkedStack[T]{}
}

// Push pushes an element onto the top of this Stack.
func (s *linkedStack[T]) Push(element T) error {
	s.top = &stackNode[T]{
		element: element,
		next:    s.top,
	}
	s.size++

	return nil
}

// Pop removes and returns the top element of this Stack.
func (s *linkedStack[T]) Pop() (value T, err error) {
	if s.IsEmpty() {
		return value, ErrUnderflow
	}

	poppedNode := s.top
	s.top = poppedNode.next
	s.size--

	// the popped node must not keep a link into the remaining chain
	poppedNode.next = nil

	return poppedNode.element, nil
}

// Peek returns the top element of this Stack without removing it.
func (s *linkedStack[T]) Peek() (value T, err error) {
	if s.IsEmpty() {
		return value, ErrUnderflow
	}

	return s.top.element, nil
}

// Clear removes all elements from this Stack.
func (s *linkedStack[T]) Clear() {
	s.top = nil
	s.size = 0
}

// Size returns the amount of elements in this Stack.
func (s *linkedStack[T]) Size() int {
	return s.size
}

// IsEmpty checks if this Stack is empty.
func (s *linkedStack[T]) IsEmpty() bool {
	return s.size == 0
}

// Capacity returns the maximum amount of elements this Stack accepts, or Unbounded.
func (s *linkedStack[T]) Capacity() int {
	return Unbounded
}

// String returns a human-readable version of this Stack (top element first).
func (s *linkedStack[T]) String() string {
	elements := make([]T, 0, s.size)
	for node := s.top; node != nil; node = node.next {
		elements = append(elements, node.element)
	}

	return stringifyElements(elements)
}

// code contract - make sure the type implements the interface.
var _ Stack[int] = &linkedStack[int]{}
