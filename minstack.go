package linear

import "cmp"

// MinStack is a LIFO stack that also returns its smallest item
// in constant time.
//
// The zero value MinStack is ready to use.
// It is not safe for concurrent use.
type MinStack[T cmp.Ordered] struct {
	values Stack[T]
	// mins holds every item that was a minimum when pushed.
	mins Stack[T]
}

// Push adds item to the top of the stack.
func (s *MinStack[T]) Push(item T) {
	s.values.Push(item)
	if top, ok := s.mins.Top(); !ok || item <= top {
		s.mins.Push(item)
	}
}

// Pop removes and returns the top item.
// If the stack is empty, it returns the zero value and false.
func (s *MinStack[T]) Pop() (T, bool) {
	item, ok := s.values.Pop()
	if !ok {
		return item, false
	}
	if top, _ := s.mins.Top(); item == top {
		s.mins.Pop()
	}
	return item, true
}

// Top returns the top item without removing it.
// If the stack is empty, it returns the zero value and false.
func (s *MinStack[T]) Top() (T, bool) {
	return s.values.Top()
}

// Min returns the smallest item on the stack.
// If the stack is empty, it returns the zero value and false.
func (s *MinStack[T]) Min() (T, bool) {
	return s.mins.Top()
}

// IsEmpty reports whether the stack has no items.
func (s *MinStack[T]) IsEmpty() bool {
	return s.values.IsEmpty()
}

// Len returns the number of items on the stack.
func (s *MinStack[T]) Len() int {
	return s.values.Len()
}
