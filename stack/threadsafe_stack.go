package stack

import (
	"sync"
)

// threadSafeStack implements a Stack decorator that serializes all accesses with a mutex.
type threadSafeStack[T any] struct {
	stack Stack[T]
	mutex sync.RWMutex
}

// newThreadSafeStack returns a new thread safe Stack around the given Stack.
func newThreadSafeStack[T any](stack Stack[T]) *threadSafeStack[T] {
	return &threadSafeStack[T]{
		stack: stack,
	}
}

// Push pushes an element onto the top of this Stack.
// It fails with ErrOverflow if the Stack was created with a capacity and is full.
func (s *threadSafeStack[T]) Push(element T) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.stack.Push(element)
}

// Pop removes and returns the top element of this Stack.
func (s *threadSafeStack[T]) Pop() (T, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.stack.Pop()
}

// Peek returns the top element of this Stack without removing it.
func (s *threadSafeStack[T]) Peek() (T, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.stack.Peek()
}

// Clear removes all elements from this Stack.
func (s *threadSafeStack[T]) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.stack.Clear()
}

// Size returns the amount of elements in this Stack.
func (s *threadSafeStack[T]) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.stack.Size()
}

// IsEmpty checks if this Stack is empty.
func (s *threadSafeStack[T]) IsEmpty() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.stack.IsEmpty()
}

// Capacity returns the maximum amount of elements this Stack accepts, or Unbounded.
func (s *threadSafeStack[T]) Capacity() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.stack.Capacity()
}

// String returns a human-readable version of this Stack (top element first).
func (s *threadSafeStack[T]) String() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.stack.String()
}

// code contract - make sure the type implements the interface.
var _ Stack[int] = &threadSafeStack[int]{}
