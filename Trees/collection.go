package Trees

// collection holds the element count of a linked container.
// The zero value is an empty collection.
type collection struct {
	sz uint
}

// Size of the collection.
// Time: O(1); Space: O(1)
func (c collection) Size() uint {
	return c.sz
}

// Empty is true when there's no element.
func (c collection) Empty() bool {
	return c.sz == 0
}
