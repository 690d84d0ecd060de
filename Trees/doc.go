/*
Package Trees provides LinkedBST, a pointer-linked binary search tree with
on-demand rebalancing.

The tree is unbalanced by default: Add and Remove never restructure it. Call
Rebalance, or build the tree with BuildBalanced, to get a minimal height shape.
Equal values are kept, and are always routed to the right subtree.

None of the types here are safe for concurrent use.

Tracing goes to the schuko trace selected by the key "linkedbst".
*/
package Trees

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linkedbst'
func tracer() tracing.Trace {
	return tracing.Select("linkedbst")
}
