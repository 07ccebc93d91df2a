package tree

import (
	"golang.org/x/exp/constraints"
)

// Insert places k in the tree rooted at root and returns the root of
// the resulting tree, which is a new node if root was nil.
// If k is already in the tree, the tree is returned unchanged and the
// second result is false.
func Insert[T constraints.Ordered](root *Node[T], k T) (*Node[T], bool) {
	return place(root, k, func() *Node[T] {
		return NodeOf(k)
	})
}

// InsertNode places the existing node n in the tree rooted at root and
// returns the root of the resulting tree. n must not be reachable from
// root. Whatever subtree n carried is dropped: its links are cleared
// before it is placed as a leaf.
//
// If a node with the same key is already in the tree, n is released
// instead. Its links are cleared, the tree is returned unchanged and
// the second result is false.
func InsertNode[T constraints.Ordered](root, n *Node[T]) (*Node[T], bool) {
	root, ok := place(root, n.Key, func() *Node[T] {
		n.detach()
		return n
	})
	if !ok {
		n.detach()
	}
	return root, ok
}

// InsertNodes calls InsertNode for each of nodes in turn and returns
// the final root.
func InsertNodes[T constraints.Ordered](root *Node[T], nodes []*Node[T]) *Node[T] {
	for _, n := range nodes {
		root, _ = InsertNode(root, n)
	}
	return root
}

// place walks down from root to the empty slot where k belongs, and
// fills it with the node returned by leaf. leaf is not called if k is
// already present.
func place[T constraints.Ordered](root *Node[T], k T, leaf func() *Node[T]) (*Node[T], bool) {
	if root == nil {
		return leaf(), true
	}

	var ok bool
	switch Compare(k, root.Key) {
	case Less:
		root.Left, ok = place(root.Left, k, leaf)
	case Greater:
		root.Right, ok = place(root.Right, k, leaf)
	case Equal:
		// duplicate
	default:
		panic("unreachable")
	}

	return root, ok
}
