// Package linear provides generic linear data structures.
//
// LinkedList is a singly linked list tracking its head, tail and size.
// CircularQueue is a fixed capacity FIFO queue backed by a circular buffer.
// Stack is an unbounded LIFO stack backed by a dynamic array and MinStack
// additionally tracks its smallest item.
//
// StackUsingQueue and QueueUsingStack build one contract on top of the
// other one. IntList adds arbitrarily long non-negative integers digit
// by digit on top of LinkedList.
//
// None of the types is safe for concurrent use.
package linear
