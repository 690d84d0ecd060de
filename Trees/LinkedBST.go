package Trees

import (
	"golang.org/x/exp/constraints"
)

// LinkedBST is a binary search tree linked through node pointers. Every value
// in the left subtree of a node is less than the node's value, and every value
// in the right subtree is greater or equal, so repeated values accumulate to
// the right.
// The tree never balances itself. D below is the current height of the tree,
// which is n-1 in the worst case, e.g. after adding values in sorted order.
// The zero value is an empty tree ready to use.
type LinkedBST[T constraints.Ordered] struct {
	collection
	root *node[T]
}

var _ OrderedTree[int] = (*LinkedBST[int])(nil)

// MakeLinkedBST returns a tree holding src, added one by one in the given order.
// Time: O(n*D)
func MakeLinkedBST[T constraints.Ordered](src ...T) *LinkedBST[T] {
	u := new(LinkedBST[T])
	for _, v := range src {
		u.Add(v)
	}
	return u
}

// Find [OrderedTree.Find]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Find(v T) (T, bool) {
	for cur := u.root; cur != nil; {
		if v == cur.v {
			return cur.v, true
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Has [OrderedTree.Has]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Has(v T) bool {
	_, has := u.Find(v)
	return has
}

// Add [OrderedTree.Add]. The new node always becomes a leaf.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Add(v T) {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &node[T]{v: v}
	u.sz++
}

// Remove [OrderedTree.Remove]. The first node equal to v on the search path is
// removed. When that node has two children, it takes the value of the maximum
// in its left subtree, and that maximum node is unlinked instead; repeats of
// the maximum are moved to the right subtree.
// On failure the returned error is a *NotFoundError[T] and u is unchanged.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Remove(v T) (T, error) {
	if !u.Has(v) {
		tracer().Debugf("remove: %v not in tree of size %d", v, u.sz)
		return *new(T), &NotFoundError[T]{v}
	}
	//preRoot.l holds the root so that replacing the root needs no special case.
	preRoot := &node[T]{l: u.root}
	parent, cur, left := preRoot, u.root, true
	for cur.v != v {
		parent = cur
		if v < cur.v {
			cur, left = cur.l, true
		} else {
			cur, left = cur.r, false
		}
	}
	removed := cur.v
	if cur.l != nil && cur.r != nil {
		liftMaxOfLeft(cur)
	} else {
		child := cur.l
		if child == nil {
			child = cur.r
		}
		if left {
			parent.l = child
		} else {
			parent.r = child
		}
	}
	if u.sz--; u.Empty() {
		u.root = nil
	} else {
		u.root = preRoot.l
	}
	return removed, nil
}

// liftMaxOfLeft replaces top.v with the maximum m in top's left subtree and
// unlinks the shallowest node p on the left subtree's right spine holding m.
// Any other copies of m are in p.r; they move under the leftmost node of
// top.r, since they mustn't stay left of top. top.l and top.r mustn't be nil.
func liftMaxOfLeft[T constraints.Ordered](top *node[T]) {
	m := rightmost(top.l).v
	parent, p := top, top.l
	for p.v < m {
		parent, p = p, p.r
	}
	if parent == top {
		top.l = p.l
	} else {
		parent.r = p.l
	}
	top.v = p.v
	if p.r != nil {
		leftmost(top.r).l = p.r
	}
}

// Replace [OrderedTree.Replace]. The node found for v is overwritten in place
// only if nv still fits its position in the ordering; otherwise v is removed
// and nv added, which moves nv to wherever it belongs.
// Returns (v's stored value, true), or (zero, false) if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Replace(v, nv T) (T, bool) {
	var lo, hi T //nv must satisfy lo<=nv<hi for the bounds that are set.
	hasLo, hasHi := false, false
	cur := u.root
	for cur != nil && cur.v != v {
		if v < cur.v {
			hi, hasHi = cur.v, true
			cur = cur.l
		} else {
			lo, hasLo = cur.v, true
			cur = cur.r
		}
	}
	if cur == nil {
		return *new(T), false
	}
	old := cur.v
	if (!hasLo || lo <= nv) && (!hasHi || nv < hi) &&
		(cur.l == nil || rightmost(cur.l).v < nv) && (cur.r == nil || nv <= leftmost(cur.r).v) {
		cur.v = nv
		return old, true
	}
	tracer().Debugf("replace: %v doesn't fit the place of %v, moving it", nv, old)
	_, _ = u.Remove(old) //cur holds old, so this can't fail.
	u.Add(nv)
	return old, true
}

// Clear [OrderedTree.Clear]
// Time: O(1)
func (u *LinkedBST[T]) Clear() {
	u.root = nil
	u.sz = 0
}

// Minimum [OrderedTree.Minimum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [OrderedTree.Maximum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// Successor [OrderedTree.Successor]. v doesn't need to be in the tree.
// Values equal to v are skipped, so repeated values never succeed themselves.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Predecessor [OrderedTree.Predecessor]. v doesn't need to be in the tree.
// Values equal to v are skipped.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// RangeFind [OrderedTree.RangeFind]. Subtrees entirely outside [lo, hi] are
// skipped. Returns (nil, false) when nothing is in range.
// Time: O(D+k) for k results; Space: O(D)
func (u *LinkedBST[T]) RangeFind(lo, hi T) ([]T, bool) {
	var res []T
	var st []*node[T]
	push := func(cur *node[T]) {
		for cur != nil {
			if cur.v < lo {
				cur = cur.r
			} else {
				st = append(st, cur)
				cur = cur.l
			}
		}
	}
	for push(u.root); len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if hi < cur.v {
			break
		}
		res = append(res, cur.v)
		push(cur.r)
	}
	return res, len(res) > 0
}
