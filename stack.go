package linear

// NewStack returns a new Stack instance.
//
// WithCapacityOption can be used to preallocate room for the given number
// of items. The stack grows beyond it when needed.
func NewStack[T any](opts ...Option) *Stack[T] {
	o := newOptions(opts)
	return &Stack[T]{items: make([]T, 0, o.mustCapacity())}
}

// Stack is an unbounded LIFO stack backed by a dynamic array.
//
// The zero value Stack is ready to use.
// It is not safe for concurrent use.
type Stack[T any] struct {
	items   []T
	size    int
	maxSize int
}

// Push adds item to the top of the stack.
// Slots freed by Pop are reused before the backing array grows.
func (s *Stack[T]) Push(item T) {
	if s.size < len(s.items) {
		s.items[s.size] = item
	} else {
		s.items = append(s.items, item)
	}
	s.size++
	if s.size > s.maxSize {
		s.maxSize = s.size
	}
}

// Pop removes and returns the top item.
// If the stack is empty, it returns the zero value and false.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.size == 0 {
		return zero, false
	}
	s.size--
	item := s.items[s.size]
	// Do not keep a reference to the popped item.
	s.items[s.size] = zero
	return item, true
}

// Top returns the top item without removing it.
// If the stack is empty, it returns the zero value and false.
func (s *Stack[T]) Top() (T, bool) {
	if s.size == 0 {
		var zero T
		return zero, false
	}
	return s.items[s.size-1], true
}

// Peek is an alias for Top.
func (s *Stack[T]) Peek() (T, bool) {
	return s.Top()
}

// IsEmpty reports whether the stack has no items.
func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// IsFull always returns false as the stack is unbounded.
func (s *Stack[T]) IsFull() bool {
	return false
}

// Space returns the largest number of items the stack has ever held.
func (s *Stack[T]) Space() int {
	return s.maxSize
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return s.size
}
