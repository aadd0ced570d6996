package linear

import "fmt"

// NewCircularQueue returns a new CircularQueue instance.
//
// By default, a returned CircularQueue has DefaultCapacity capacity.
// WithCapacityOption can be used to change it. NewCircularQueue panics
// if the capacity is less than or equal to zero.
func NewCircularQueue[T any](opts ...Option) *CircularQueue[T] {
	o := newOptions(opts)
	return newCircularQueue[T](o.mustCapacity())
}

func newCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{store: make([]T, capacity)}
}

// CircularQueue is a fixed capacity FIFO queue backed by a circular buffer.
//
// Enqueue and Dequeue run in constant time. The capacity never changes,
// enqueueing into a full queue fails instead of growing it.
//
// The zero value CircularQueue is ready to use and has DefaultCapacity
// capacity. It is not safe for concurrent use.
type CircularQueue[T any] struct {
	store []T
	// head is the index of the front element.
	head int
	// tail is the index the next Enqueue writes to.
	tail  int
	count int
}

// init initializes the zero value CircularQueue.
func (q *CircularQueue[T]) init() {
	if q.store == nil {
		q.store = make([]T, DefaultCapacity)
	}
}

// Enqueue adds item to the back of the queue.
// It returns false if the queue is full.
func (q *CircularQueue[T]) Enqueue(item T) bool {
	q.init()
	if q.count == len(q.store) {
		return false
	}
	q.store[q.tail] = item
	q.tail = (q.tail + 1) % len(q.store)
	q.count++
	return true
}

// Dequeue removes the front item.
// It returns false if the queue is empty.
//
// The removed item stays in the buffer until it's overwritten.
func (q *CircularQueue[T]) Dequeue() bool {
	if q.count == 0 {
		return false
	}
	q.head = (q.head + 1) % len(q.store)
	q.count--
	return true
}

// Front returns the front item without removing it.
// If the queue is empty, it returns the zero value and false.
func (q *CircularQueue[T]) Front() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.store[q.head], true
}

// End returns the most recently enqueued item without removing it.
// If the queue is empty, it returns the zero value and false.
func (q *CircularQueue[T]) End() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.store[(q.tail-1+len(q.store))%len(q.store)], true
}

// IsEmpty reports whether the queue has no items.
func (q *CircularQueue[T]) IsEmpty() bool {
	return q.count == 0
}

// IsFull reports whether the queue holds Cap items.
func (q *CircularQueue[T]) IsFull() bool {
	q.init()
	return q.count == len(q.store)
}

// Len returns the number of items in the queue.
func (q *CircularQueue[T]) Len() int {
	return q.count
}

// Cap returns the queue capacity.
func (q *CircularQueue[T]) Cap() int {
	q.init()
	return len(q.store)
}

// String renders the raw buffer together with the head and tail indexes.
// Slots of dequeued items are shown until they are overwritten.
func (q *CircularQueue[T]) String() string {
	return fmt.Sprintf("queue=%v, head=%d, tail=%d", q.store, q.head, q.tail)
}
