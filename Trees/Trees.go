package Trees

// OrderedTree is an ordered collection of values kept in a binary search tree.
// Receivers that have a bool as the second return value use it to tell whether
// the first return value is defined; for example, calling Minimum on an empty
// tree returns (x T, false), and x should not be used.
// Iterators returned by the traversal receivers are closures acting like
// "Next()": val, valid=f(). val is meaningful only if valid is true, and once
// valid is false it stays false. The tree must not be modified while such a
// closure is in use.
// Methods implemented recursively are noted; everything else is iterative.
type OrderedTree[T any] interface {
	//Add v to the tree. Values equal to an existing one are kept as well.
	Add(v T)
	//Remove one occurrence of v. Returns a NotFoundError if v isn't in the tree.
	Remove(v T) (T, error)
	//Find the stored value equal to v.
	Find(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Replace v with nv, returning the old value.
	Replace(v, nv T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//RangeFind returns all the elements in [lo, hi] in ascending order.
	RangeFind(lo, hi T) ([]T, bool)
	//Height of the tree; -1 when empty.
	Height() int
	//IsBalanced compares the height against a logarithmic bound of the size.
	IsBalanced() bool
	//Rebalance the tree into a minimal height shape.
	Rebalance()
	//Size of the tree.
	Size() uint
	//Empty is true when Size()==0.
	Empty() bool
	//Clear removes everything.
	Clear()
	//Iter is the pre-order traversal.
	Iter() func() (T, bool)
	//InOrder is the ascending traversal.
	InOrder() func() (T, bool)
	//Descending is the reversed in-order traversal.
	Descending() func() (T, bool)
	//Corrupt returns whether some node violates the search tree ordering, or
	//the recorded size doesn't match the nodes. This is to be distinguished from
	//whether the tree is balanced or not.
	Corrupt() bool
}
