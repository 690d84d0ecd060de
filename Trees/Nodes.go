package Trees

// A node in the LinkedBST.
// l and r are owned by this node only; nodes are never handed out of the tree.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// leftmost node of the subtree rooting at n. n mustn't be nil.
func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooting at n. n mustn't be nil.
func rightmost[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}
