package tree

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Size returns the number of nodes in the tree rooted at root.
func Size[T constraints.Ordered](root *Node[T]) int {
	if root == nil {
		return 0
	}
	return 1 + Size(root.Left) + Size(root.Right)
}

// Height returns the number of nodes on the longest path from root
// down to a leaf. The empty tree has height 0 and a single node has
// height 1.
func Height[T constraints.Ordered](root *Node[T]) int {
	if root == nil {
		return 0
	}

	l, r := Height(root.Left)+1, Height(root.Right)+1
	if l > r {
		return l
	}
	return r
}

// OptimalHeight is the smallest Height any tree of n nodes can have,
// ceil(log2(n+1)).
func OptimalHeight(n int) int {
	return int(math.Ceil(math.Log2(float64(n + 1))))
}

// Balance compares the height of the tree against the optimal height
// for its size:
//
//	b = (h/hOpt - 1) / (n/hOpt - 1)
//
// A perfectly balanced tree gives 0 and a tree that has degenerated
// into a chain gives 1.
//
// The formula divides by zero for trees of fewer than 3 nodes. Balance
// does not guard against that: those trees give NaN.
func Balance[T constraints.Ordered](root *Node[T]) float64 {
	n := float64(Size(root))
	h := float64(Height(root))
	hOpt := math.Ceil(math.Log2(n + 1))

	return (h/hOpt - 1) / (n/hOpt - 1)
}

// Contains searches the tree rooted at root for k.
func Contains[T constraints.Ordered](root *Node[T], k T) bool {
	if root == nil {
		return false
	}

	switch Compare(k, root.Key) {
	case Less:
		return Contains(root.Left, k)
	case Greater:
		return Contains(root.Right, k)
	case Equal:
		return true
	default:
		panic("unreachable")
	}
}
