package linear

import "fmt"

// DefaultCapacity is the capacity of a CircularQueue created without
// WithCapacityOption. It is also the capacity of a zero value CircularQueue.
const DefaultCapacity = 10

// Option configures a container on creation.
type Option interface {
	apply(*options)
}

type options struct {
	capacity int
}

type optionf func(*options)

func (f optionf) apply(o *options) {
	f(o)
}

func newOptions(opts []Option) options {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}

// WithCapacityOption returns an Option that sets the container capacity.
//
// For bounded containers (CircularQueue, StackUsingQueue) it is the maximum
// number of elements. For unbounded ones (Stack, QueueUsingStack)
// it is only a preallocation hint.
//
// The container constructor panics if n is less than or equal to zero.
func WithCapacityOption(n int) Option {
	return optionf(func(o *options) {
		o.capacity = n
	})
}

func (o options) mustCapacity() int {
	if o.capacity <= 0 {
		panic(fmt.Sprintf("linear: capacity must be greater than 0, got %d", o.capacity))
	}
	return o.capacity
}
