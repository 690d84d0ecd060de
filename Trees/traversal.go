package Trees

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/g-m-twostay/linkedbst/Queues"
)

// Iter [OrderedTree.Iter]. Pre-order: a node, then its left subtree, then its
// right subtree. The right child is pushed before the left one so the left is
// popped first.
// Time: f(): O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) Iter() func() (T, bool) {
	st := linkedliststack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (T, bool) {
		top, ok := st.Pop()
		if !ok {
			return *new(T), false
		}
		cur := top.(*node[T])
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
		return cur.v, true
	}
}

// InOrder [OrderedTree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) InOrder() func() (T, bool) {
	return u.spine(false)
}

// Descending [OrderedTree.Descending]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) Descending() func() (T, bool) {
	return u.spine(true)
}

// spine walks the tree in order keeping the unvisited ancestors on a stack.
// rev swaps the roles of the children.
func (u *LinkedBST[T]) spine(rev bool) func() (T, bool) {
	st := arraystack.New()
	push := func(cur *node[T]) {
		for cur != nil {
			st.Push(cur)
			if rev {
				cur = cur.r
			} else {
				cur = cur.l
			}
		}
	}
	push(u.root)
	return func() (T, bool) {
		top, ok := st.Pop()
		if !ok {
			return *new(T), false
		}
		cur := top.(*node[T])
		if rev {
			push(cur.l)
		} else {
			push(cur.r)
		}
		return cur.v, true
	}
}

// PostOrder returns an iterator over the values with both subtrees of a node
// visited before the node itself.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) PostOrder() func() (T, bool) {
	st := arraystack.New()
	cur, last := u.root, (*node[T])(nil)
	return func() (T, bool) {
		for {
			for ; cur != nil; cur = cur.l {
				st.Push(cur)
			}
			top, ok := st.Peek()
			if !ok {
				return *new(T), false
			}
			n := top.(*node[T])
			if n.r != nil && n.r != last {
				cur = n.r
				continue
			}
			st.Pop()
			last = n
			return n.v, true
		}
	}
}

// LevelOrder returns an iterator over the values level by level from the root,
// left to right within a level.
// Time: f(): O(1) at each call to the returned function. Space: O(w) for the widest level w.
func (u *LinkedBST[T]) LevelOrder() func() (T, bool) {
	q := Queues.MakeArrayQueue[*node[T]](4)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (T, bool) {
		cur, e := q.Pop()
		if e != nil {
			return *new(T), false
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
		return cur.v, true
	}
}

// Range calls f on the values in ascending order until f returns false.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Range(f func(T) bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// Values in ascending order.
func (u *LinkedBST[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Clone returns a tree with the same shape and values as u. Adding the values
// in pre-order to an empty tree reproduces the shape exactly.
// Time: O(n*D)
func (u *LinkedBST[T]) Clone() *LinkedBST[T] {
	c := new(LinkedBST[T])
	next := u.Iter()
	for v, ok := next(); ok; v, ok = next() {
		c.Add(v)
	}
	return c
}

// Corrupt [OrderedTree.Corrupt]
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Corrupt() bool {
	type frame struct {
		n            *node[T]
		lo, hi       T
		hasLo, hasHi bool
	}
	var count uint
	st := []frame{}
	if u.root != nil {
		st = append(st, frame{n: u.root})
	}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if (f.hasLo && f.n.v < f.lo) || (f.hasHi && !(f.n.v < f.hi)) {
			return true
		}
		count++
		if f.n.l != nil {
			st = append(st, frame{f.n.l, f.lo, f.n.v, f.hasLo, true})
		}
		if f.n.r != nil {
			st = append(st, frame{f.n.r, f.n.v, f.hi, true, f.hasHi})
		}
	}
	return count != u.sz
}

// String draws the tree rotated 90 degrees counterclockwise: one value per
// line, right subtree above and left subtree below, indented by "| " per level.
// Recursive.
func (u *LinkedBST[T]) String() string {
	var b strings.Builder
	var draw func(*node[T], int)
	draw = func(cur *node[T], level int) {
		if cur != nil {
			draw(cur.r, level+1)
			b.WriteString(strings.Repeat("| ", level))
			fmt.Fprintln(&b, cur.v)
			draw(cur.l, level+1)
		}
	}
	draw(u.root, 0)
	return b.String()
}
