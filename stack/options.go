package stack

// Unbounded is the Capacity of a Stack that accepts elements without a limit.
const Unbounded = 0

// the default options applied to a Stack.
var defaultOptions = []Option{
	WithBackend(ArrayBackend),
	WithCapacity(Unbounded),
	WithShrinkingThresholdRatio(10.0),
	WithShrinkingThresholdCount(100),
}

// Options define options for a Stack.
type Options struct {
	// The internal representation holding the elements.
	backend Backend
	// The maximum amount of elements, or Unbounded.
	capacity int
	// The ratio between the amount of deleted keys and
	// the current size of the map backend before shrinking is triggered.
	shrinkingThresholdRatio float32
	// The count of deletions that triggers shrinking of the map backend.
	shrinkingThresholdCount int
	// Whether all accesses are serialized by a mutex.
	threadSafe bool
}

// applies the given Option.
func (so *Options) apply(opts ...Option) {
	for _, opt := range opts {
		opt(so)
	}
}

// Option is a function setting an Options option.
type Option func(opts *Options)

// WithBackend defines the internal representation holding the elements of the Stack.
func WithBackend(backend Backend) Option {
	return func(opts *Options) {
		opts.backend = backend
	}
}

// WithCapacity defines the maximum amount of elements the Stack accepts before Push
// fails with ErrOverflow. Values below 1 mean Unbounded.
func WithCapacity(capacity int) Option {
	return func(opts *Options) {
		if capacity < 1 {
			capacity = Unbounded
		}

		opts.capacity = capacity
	}
}

// WithShrinkingThresholdRatio defines the ratio between the amount of deleted keys and
// the current size of the map backend before shrinking is triggered (set to 0.0 to disable).
func WithShrinkingThresholdRatio(ratio float32) Option {
	return func(opts *Options) {
		opts.shrinkingThresholdRatio = ratio
	}
}

// WithShrinkingThresholdCount defines the count of deletions that triggers
// shrinking of the map backend (set to 0 to disable).
func WithShrinkingThresholdCount(count int) Option {
	return func(opts *Options) {
		opts.shrinkingThresholdCount = count
	}
}

// WithThreadSafety serializes all accesses to the Stack with a mutex.
func WithThreadSafety() Option {
	return func(opts *Options) {
		opts.threadSafe = true
	}
}
