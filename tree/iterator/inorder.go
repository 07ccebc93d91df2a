package iterator

import (
	"go.lepak.sg/treebuild/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// Nodes have no parent pointer, so it keeps a stack of the
// ancestors whose keys have not been yielded yet.
// The result of mutating the tree while iterating over it
// (including rebuilding it) is undefined.
type InOrder[T constraints.Ordered] struct {
	root    *tree.Node[T]
	stack   []*tree.Node[T]
	started bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n) on the
// top of the stack.
// The next call to Next continues from (2): pop the top,
// then push its right child and all of that child's left
// descendants.

// NewInOrder creates a new in-order iterator over the tree
// rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewInOrder[T constraints.Ordered](root *tree.Node[T], heightHint int) *InOrder[T] {
	return &InOrder[T]{
		root:  root,
		stack: make([]*tree.Node[T], 0, heightHint),
	}
}

func (i *InOrder[T]) pushLeft(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Next returns true if there is a next key to yield with Item.
// Once it returns false, it keeps returning false.
func (i *InOrder[T]) Next() bool {
	if !i.started {
		i.started = true
		i.pushLeft(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	top := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(top.Right)

	return len(i.stack) > 0
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.stack[len(i.stack)-1].Key
}
