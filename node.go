package linear

// Node is a single LinkedList cell.
type Node[T comparable] struct {
	next  *Node[T]
	Value T
}

// Next returns the node that follows n or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}
