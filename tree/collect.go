package tree

import (
	"container/list"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// CollectInOrder appends the nodes of the tree rooted at root to dst
// in ascending key order, and returns the extended slice.
// The nodes are not copied and their links are left alone.
func CollectInOrder[T constraints.Ordered](dst []*Node[T], root *Node[T]) []*Node[T] {
	if root == nil {
		return dst
	}

	dst = CollectInOrder(dst, root.Left)
	dst = append(dst, root)
	return CollectInOrder(dst, root.Right)
}

// CollectScatter appends every node of the tree rooted at root to dst
// and returns the extended slice. It visits each node exactly once, but
// in no conventional order: nodes come off the back of a work list,
// and each visited node pushes its left child onto the back and its
// right child onto the front.
//
// For the tree
//
//	    d
//	  /   \
//	 b     f
//	/ \   / \
//	a c   e  g
//
// the order is d b a f e c g.
func CollectScatter[T constraints.Ordered](dst []*Node[T], root *Node[T]) []*Node[T] {
	todo := list.New()
	todo.PushBack(root)

	for todo.Len() > 0 {
		n := todo.Remove(todo.Back()).(*Node[T])
		if n == nil {
			continue
		}

		dst = append(dst, n)

		todo.PushBack(n.Left)
		todo.PushFront(n.Right)
	}

	return dst
}

// NodesOrdered returns true if no node in nodes has a key greater than
// the key of the node after it. Empty and single-node sequences are
// ordered.
func NodesOrdered[T constraints.Ordered](nodes []*Node[T]) bool {
	return slices.IsSortedFunc(nodes, func(a, b *Node[T]) bool {
		return a.Key < b.Key
	})
}

// Keys returns the keys of nodes, in the same order.
func Keys[T constraints.Ordered](nodes []*Node[T]) []T {
	keys := make([]T, len(nodes))
	for i, n := range nodes {
		keys[i] = n.Key
	}
	return keys
}
