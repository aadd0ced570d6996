package linear

// NewStackUsingQueue returns a new StackUsingQueue instance.
//
// By default, a returned StackUsingQueue has DefaultCapacity capacity.
// WithCapacityOption can be used to change it. NewStackUsingQueue panics
// if the capacity is less than or equal to zero.
func NewStackUsingQueue[T any](opts ...Option) *StackUsingQueue[T] {
	capacity := newOptions(opts).mustCapacity()
	return &StackUsingQueue[T]{
		queue: *newCircularQueue[T](capacity),
		aux:   *newCircularQueue[T](capacity),
	}
}

// StackUsingQueue is a bounded LIFO stack built on top of CircularQueue.
//
// Push runs in constant time. Pop runs in linear time as it rotates
// the queue through an auxiliary queue to reach the most recently
// pushed item.
//
// The zero value StackUsingQueue is ready to use and has DefaultCapacity
// capacity. It is not safe for concurrent use.
type StackUsingQueue[T any] struct {
	queue   CircularQueue[T]
	aux     CircularQueue[T]
	maxSize int
}

// Push adds item to the top of the stack.
// It returns false if the stack is full.
func (s *StackUsingQueue[T]) Push(item T) bool {
	if !s.queue.Enqueue(item) {
		return false
	}
	if n := s.queue.Len(); n > s.maxSize {
		s.maxSize = n
	}
	return true
}

// Pop removes and returns the top item.
// If the stack is empty, it returns the zero value and false.
func (s *StackUsingQueue[T]) Pop() (T, bool) {
	top, ok := s.queue.End()
	if !ok {
		return top, false
	}
	// Moving items from the front of one queue to the back of another
	// keeps their order. Everything but the top goes to aux.
	for n := s.queue.Len() - 1; n > 0; n-- {
		item, _ := s.queue.Front()
		s.queue.Dequeue()
		s.aux.Enqueue(item)
	}
	s.queue.Dequeue()
	for !s.aux.IsEmpty() {
		item, _ := s.aux.Front()
		s.aux.Dequeue()
		s.queue.Enqueue(item)
	}
	return top, true
}

// Top returns the top item without removing it.
// If the stack is empty, it returns the zero value and false.
func (s *StackUsingQueue[T]) Top() (T, bool) {
	return s.queue.End()
}

// Peek is an alias for Top.
func (s *StackUsingQueue[T]) Peek() (T, bool) {
	return s.Top()
}

// IsEmpty reports whether the stack has no items.
func (s *StackUsingQueue[T]) IsEmpty() bool {
	return s.queue.IsEmpty()
}

// IsFull reports whether the underlying queue is full.
func (s *StackUsingQueue[T]) IsFull() bool {
	return s.queue.IsFull()
}

// Space returns the largest number of items the stack has ever held.
func (s *StackUsingQueue[T]) Space() int {
	return s.maxSize
}

// Len returns the number of items on the stack.
func (s *StackUsingQueue[T]) Len() int {
	return s.queue.Len()
}

// NewQueueUsingStack returns a new QueueUsingStack instance.
//
// WithCapacityOption can be used to preallocate room for the given number
// of items. The queue grows beyond it when needed.
func NewQueueUsingStack[T any](opts ...Option) *QueueUsingStack[T] {
	return &QueueUsingStack[T]{
		stack: *NewStack[T](opts...),
		aux:   *NewStack[T](opts...),
	}
}

// QueueUsingStack is an unbounded FIFO queue built on top of Stack.
//
// Enqueue and Front run in constant time. Dequeue runs in linear time
// as it empties the stack to reach the least recently enqueued item.
//
// The zero value QueueUsingStack is ready to use.
// It is not safe for concurrent use.
type QueueUsingStack[T any] struct {
	stack Stack[T]
	aux   Stack[T]
	// front is valid only if stack is not empty.
	front T
}

// Enqueue adds item to the back of the queue.
func (q *QueueUsingStack[T]) Enqueue(item T) {
	if q.stack.IsEmpty() {
		q.front = item
	}
	q.stack.Push(item)
}

// Dequeue removes and returns the front item.
// If the queue is empty, it returns the zero value and false.
func (q *QueueUsingStack[T]) Dequeue() (T, bool) {
	if q.stack.IsEmpty() {
		var zero T
		return zero, false
	}
	for q.stack.Len() > 1 {
		item, _ := q.stack.Pop()
		q.aux.Push(item)
	}
	front, _ := q.stack.Pop()
	// The item popped right before front is the new front.
	q.front, _ = q.aux.Top()
	for {
		item, ok := q.aux.Pop()
		if !ok {
			break
		}
		q.stack.Push(item)
	}
	return front, true
}

// Front returns the front item without removing it.
// If the queue is empty, it returns the zero value and false.
func (q *QueueUsingStack[T]) Front() (T, bool) {
	if q.stack.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.front, true
}

// Peek is an alias for Front.
func (q *QueueUsingStack[T]) Peek() (T, bool) {
	return q.Front()
}

// IsEmpty reports whether the queue has no items.
func (q *QueueUsingStack[T]) IsEmpty() bool {
	return q.stack.IsEmpty()
}

// IsFull reports whether the underlying stack is full.
// It always returns false as Stack is unbounded.
func (q *QueueUsingStack[T]) IsFull() bool {
	return q.stack.IsFull()
}

// Space returns the largest number of items the queue has ever held.
func (q *QueueUsingStack[T]) Space() int {
	return q.stack.Space()
}

// Len returns the number of items in the queue.
func (q *QueueUsingStack[T]) Len() int {
	return q.stack.Len()
}
