package stack

// mapStack implements a Stack that holds its elements in a map keyed by a dense index.
// Deleted keys do not release a Go map's buckets, so the map is re-allocated
// once the shrinking conditions are met (AND condition).
// Default values are:
// - ShrinkingThresholdRatio: 10.0	(set to 0.0 to disable)
// - ShrinkingThresholdCount: 100	(set to 0 to disable).
type mapStack[T any] struct {
	// elements maps every index between 0 and topIndex to the element stored at it.
	elements map[int]T

	// topIndex is the index of the current top element, or -1 when the Stack is empty.
	topIndex int

	// deletedKeys counts the deletions since the elements map was last allocated.
	deletedKeys int

	// holds the Stack options (shrinking thresholds).
	opts *Options
}

// newMapStack returns a new map backed Stack.
func newMapStack[T any](opts *Options) *mapStack[T] {
	return &mapStack[T]{
		elements: make(map[int]T),
		topIndex: -1,
		opts:     opts,
	}
}

// Push pushes an element onto the top of this Stack.
func (s *mapStack[T]) Push(element T) error {
	s.elements[s.topIndex+1] = element
	s.topIndex++

	return nil
}

// Pop removes and returns the top element of this Stack.
func (s *mapStack[T]) Pop() (value T, err error) {
	if s.IsEmpty() {
		return value, ErrUnderflow
	}

	value = s.elements[s.topIndex]
	s.delete(s.topIndex)
	s.topIndex--

	return value, nil
}

// Peek returns the top element of this Stack without removing it.
func (s *mapStack[T]) Peek() (value T, err error) {
	if s.IsEmpty() {
		return value, ErrUnderflow
	}

	return s.elements[s.topIndex], nil
}

// Clear removes all elements from this Stack.
func (s *mapStack[T]) Clear() {
	s.elements = make(map[int]T)
	s.topIndex = -1
	s.deletedKeys = 0
}

// Size returns the amount of elements in this Stack.
func (s *mapStack[T]) Size() int {
	return s.topIndex + 1
}

// IsEmpty checks if this Stack is empty.
func (s *mapStack[T]) IsEmpty() bool {
	return s.Size() == 0
}

// Capacity returns the maximum amount of elements this Stack accepts, or Unbounded.
func (s *mapStack[T]) Capacity() int {
	return Unbounded
}

// String returns a human-readable version of this Stack (top element first).
func (s *mapStack[T]) String() string {
	elements := make([]T, 0, s.Size())
	for index := s.topIndex; index >= 0; index-- {
		elements = append(elements, s.elements[index])
	}

	return stringifyElements(elements)
}

// delete removes the entry at the given index, and possibly
// shrinks the map if the shrinking conditions have been reached.
func (s *mapStack[T]) delete(index int) {
	delete(s.elements, index)
	s.deletedKeys++

	if s.shouldShrink() {
		s.shrink()
	}
}

// shouldShrink checks if the conditions to shrink the map are met.
func (s *mapStack[T]) shouldShrink() bool {
	size := len(s.elements)

	// check if one of the conditions was defined, otherwise never shrink
	if !(s.opts.shrinkingThresholdRatio != 0.0 || s.opts.shrinkingThresholdCount != 0) {
		return false
	}

	if s.opts.shrinkingThresholdRatio != 0.0 {
		// ratio was defined

		// check for division by zero
		if size == 0 {
			return false
		}

		if float32(s.deletedKeys)/float32(size) < s.opts.shrinkingThresholdRatio {
			// condition not reached
			return false
		}
	}

	if s.opts.shrinkingThresholdCount != 0 {
		// count was defined

		if s.deletedKeys < s.opts.shrinkingThresholdCount {
			// condition not reached
			return false
		}
	}

	return true
}

// shrink re-allocates the map holding the elements.
func (s *mapStack[T]) shrink() {
	newElements := make(map[int]T, len(s.elements))
	for index, element := range s.elements {
		newElements[index] = element
	}

	s.deletedKeys = 0
	s.elements = newElements
}

// code contract - make sure the type implements the interface.
var _ Stack[int] = &mapStack[int]{}
