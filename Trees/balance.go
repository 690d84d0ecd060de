package Trees

import (
	"math"
	"slices"

	"github.com/g-m-twostay/linkedbst/Queues"
	"golang.org/x/exp/constraints"
)

// Height [OrderedTree.Height]. Counts levels breadth first instead of recursing,
// so degenerate trees don't grow the call stack.
// Time: O(n); Space: O(w) for the widest level w.
func (u *LinkedBST[T]) Height() int {
	h := -1
	if u.root == nil {
		return h
	}
	q := Queues.MakeArrayQueue[*node[T]](4)
	for q.Push(u.root); !q.Empty(); h++ {
		for w := q.Size(); w > 0; w-- {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return h
}

// IsBalanced [OrderedTree.IsBalanced]. True iff Height() < 2*log2(Size()+1)-1.
// This is a global check on the whole shape, not a per node balance factor.
// An empty tree isn't balanced under this bound.
// Time: O(n)
func (u *LinkedBST[T]) IsBalanced() bool {
	return float64(u.Height()) < 2*math.Log2(float64(u.sz+1))-1
}

// Rebalance [OrderedTree.Rebalance]. The values are taken in ascending order,
// queued median first (see medianFirst), and added back to the emptied tree in
// queue order. The result has height ceil(log2(n+1))-1 when the values are
// distinct.
// Time: O(n*log n); Space: O(n)
func (u *LinkedBST[T]) Rebalance() {
	vs := u.Values()
	tracer().Debugf("rebalance: %d values, height %d", len(vs), u.Height())
	q := medianFirst(vs)
	u.Clear()
	u.addAll(q)
	tracer().Debugf("rebalance: height now %d", u.Height())
}

// BuildBalanced returns a new minimal height tree holding the values of sli.
// sli doesn't need to be sorted, and isn't modified.
// Time: O(n*log n)
func BuildBalanced[T constraints.Ordered](sli []T) *LinkedBST[T] {
	s := slices.Clone(sli)
	slices.Sort(s)
	u := new(LinkedBST[T])
	u.addAll(medianFirst(s))
	tracer().Debugf("build balanced: %d values, height %d", u.sz, u.Height())
	return u
}

// addAll drains q into u, in FIFO order.
func (u *LinkedBST[T]) addAll(q Queues.Queue[T]) {
	for !q.Empty() {
		v, _ := q.Pop()
		u.Add(v)
	}
}

// medianFirst queues the values of the sorted slice s in the pre-order of the
// complete tree built on s: the middle element, then the left half by the same
// rule, then the right half. Adding the values in this order to an empty tree
// reproduces that complete tree, since every value reaches an empty slot only
// after its parent has been placed.
// Recursive, with depth log2(len(s)).
func medianFirst[T any](s []T) Queues.Queue[T] {
	q := Queues.MakeArrayQueue[T](uint(len(s)))
	var emit func([]T)
	emit = func(s []T) {
		if len(s) > 0 {
			mid := len(s) >> 1
			q.Push(s[mid])
			emit(s[:mid])
			emit(s[mid+1:])
		}
	}
	emit(s)
	return q
}
