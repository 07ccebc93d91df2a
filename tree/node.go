// Package tree holds the node type shared by the tree implementations,
// along with the node-level algorithms that work on a bare root:
// metrics, collection, insertion and rebuilding.
//
// A node is owned by exactly one parent slot or root reference.
// While a rebuild is running, nodes are owned by the collected slice
// instead, and their Left and Right links are overwritten as they are
// placed again. Rebuilding never allocates nodes.
package tree

import (
	"golang.org/x/exp/constraints"
)

type Node[T constraints.Ordered] struct {
	Key         T
	Left, Right *Node[T]
}

func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// detach clears the subtree links of n so it can be placed as a leaf.
func (n *Node[T]) detach() {
	n.Left, n.Right = nil, nil
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// Rand is the source of randomness for RebuildRandom.
// *rand.Rand from math/rand satisfies it.
type Rand interface {
	// Intn returns a uniform int in [0, n). n is always > 0.
	Intn(n int) int
}
