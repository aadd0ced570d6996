package linear

import (
	"fmt"
	"strings"
)

// NewLinkedList returns a new LinkedList holding values in the given order.
// Calling it without values returns an empty list.
func NewLinkedList[T comparable](values ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	if len(values) > 0 {
		// Cannot fail for a non-empty source.
		_ = l.Reset(values...)
	}
	return l
}

// LinkedList is a singly linked list that tracks both of its ends.
//
// Inserting at either end takes constant time. Removing the tail node takes
// linear time as nodes do not link back to their predecessors.
//
// The zero value LinkedList is an empty list ready to use.
// It is not safe for concurrent use.
type LinkedList[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// Reset replaces the content of the list with values.
//
// It returns ErrEmptySource if no values are given, in which case
// the list is left unchanged.
func (l *LinkedList[T]) Reset(values ...T) error {
	if len(values) == 0 {
		return ErrEmptySource
	}
	head := &Node[T]{Value: values[0]}
	tail := head
	for _, v := range values[1:] {
		tail.next = &Node[T]{Value: v}
		tail = tail.next
	}
	l.head, l.tail, l.size = head, tail, len(values)
	return nil
}

// Prepend inserts value at the front of the list.
func (l *LinkedList[T]) Prepend(value T) {
	n := &Node[T]{Value: value, next: l.head}
	if l.head == nil {
		l.tail = n
	}
	l.head = n
	l.size++
}

// Append inserts value at the back of the list.
func (l *LinkedList[T]) Append(value T) {
	n := &Node[T]{Value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Head returns the first node or nil if the list is empty.
func (l *LinkedList[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node or nil if the list is empty.
func (l *LinkedList[T]) Tail() *Node[T] {
	return l.tail
}

// Delete removes the first node holding value.
// It returns true if a node was removed, otherwise it returns false.
func (l *LinkedList[T]) Delete(value T) bool {
	if l.head == nil {
		return false
	}
	if l.head.Value == value {
		return l.DeleteHead()
	}
	prev := l.head
	for n := l.head.next; n != nil; prev, n = n, n.next {
		if n.Value != value {
			continue
		}
		prev.next = n.next
		if n == l.tail {
			l.tail = prev
		}
		n.next = nil
		l.size--
		return true
	}
	return false
}

// DeleteHead removes the first node.
// It returns false if the list is empty.
func (l *LinkedList[T]) DeleteHead() bool {
	if l.head == nil {
		return false
	}
	if l.head == l.tail {
		l.clear()
		return true
	}
	n := l.head
	l.head = n.next
	n.next = nil
	l.size--
	return true
}

// DeleteTail removes the last node.
// It returns false if the list is empty.
//
// It runs in linear time since the new tail has to be found from the head.
func (l *LinkedList[T]) DeleteTail() bool {
	if l.tail == nil {
		return false
	}
	if l.head == l.tail {
		l.clear()
		return true
	}
	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	prev.next = nil
	l.tail = prev
	l.size--
	return true
}

func (l *LinkedList[T]) clear() {
	l.head, l.tail, l.size = nil, nil, 0
}

// Reverse reverses the list in place.
// The former head becomes the tail and vice versa.
func (l *LinkedList[T]) Reverse() {
	var prev *Node[T]
	l.tail = l.head
	for n := l.head; n != nil; {
		next := n.next
		n.next = prev
		prev, n = n, next
	}
	l.head = prev
}

// MidPoint returns the middle node or nil if the list is empty.
//
// For lists of even length it returns the last node of the first half,
// e.g. 2 for 1->2->3->4.
func (l *LinkedList[T]) MidPoint() *Node[T] {
	if l.head == nil {
		return nil
	}
	slow, fast := l.head, l.head.next
	for fast != nil && fast != l.tail && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow
}

// At returns the node at index i or nil if i is out of range.
func (l *LinkedList[T]) At(i int) *Node[T] {
	if i < 0 || i >= l.size {
		return nil
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

// Contains reports whether any node holds value.
func (l *LinkedList[T]) Contains(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.Value == value {
			return true
		}
	}
	return false
}

// Len returns the number of nodes.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no nodes.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Values returns a copy of the list values from head to tail.
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.Value)
	}
	return values
}

// String renders the list as "v1->v2->...->vn->nil".
func (l *LinkedList[T]) String() string {
	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprint(&b, n.Value)
		b.WriteString("->")
	}
	b.WriteString("nil")
	return b.String()
}
