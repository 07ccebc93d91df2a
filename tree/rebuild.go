package tree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// RebuildBalanced relinks the nodes of the tree rooted at root into a
// tree of minimal height, OptimalHeight(Size(root)), and returns its
// root. No nodes are allocated.
func RebuildBalanced[T constraints.Ordered](root *Node[T]) *Node[T] {
	nodes := CollectInOrder(nil, root)
	return rebuildBalanced(nodes, 0, len(nodes))
}

// rebuildBalanced builds the subtree for nodes[begin:end], which must be
// sorted. The middle node (rounding down) becomes the root.
func rebuildBalanced[T constraints.Ordered](nodes []*Node[T], begin, end int) *Node[T] {
	if begin == end {
		return nil
	}

	if begin > end {
		panic(fmt.Sprintf("invariant broken: begin %d > end %d", begin, end))
	}

	mid := (begin + end) / 2

	n := nodes[mid]
	n.Left = rebuildBalanced(nodes, begin, mid)
	n.Right = rebuildBalanced(nodes, mid+1, end)

	return n
}

// RebuildRandom relinks the nodes of the tree rooted at root by
// inserting them one at a time, in an order drawn from rng, into an
// initially empty tree. It returns the new root. No nodes are allocated.
//
// The result has the same keys as the input. Its expected height is
// logarithmic in the number of nodes, but unlike RebuildBalanced there
// is no bound on it.
func RebuildRandom[T constraints.Ordered](root *Node[T], rng Rand) *Node[T] {
	nodes := CollectScatter(nil, root)

	root = nil
	for len(nodes) > 0 {
		// Pick a random node and move it to the back
		last := len(nodes) - 1
		i := rng.Intn(len(nodes))
		nodes[i], nodes[last] = nodes[last], nodes[i]

		n := nodes[last]
		nodes[last] = nil
		nodes = nodes[:last]

		root, _ = InsertNode(root, n)
	}

	return root
}
