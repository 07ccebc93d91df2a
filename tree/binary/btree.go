package binary

import (
	"fmt"
	"strings"

	"go.lepak.sg/treebuild/tree"
	"go.lepak.sg/treebuild/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, measuring) but not for concurrent reads and
// writes (inserting, rebuilding).
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree implementation does not support removal. It is also not
// self-balancing: call RebuildBalanced or RebuildRandom when Balance
// says it has degenerated.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate keys or children!
	root *tree.Node[T]
}

// FromKeys inserts keys into a new tree in the order given.
// Duplicate keys are skipped.
func FromKeys[S ~[]T, T constraints.Ordered](keys S) *Tree[T] {
	tr := &Tree[T]{}
	for _, k := range keys {
		tr.Insert(k)
	}
	return tr
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return tree.Contains(t.root, k)
}

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert returns false.
func (t *Tree[T]) Insert(k T) bool {
	var ok bool
	t.root, ok = tree.Insert(t.root, k)
	return ok
}

// Size returns the number of keys in the tree.
func (t *Tree[T]) Size() int {
	return tree.Size(t.root)
}

// Height returns the number of nodes on the longest path
// from the root to a leaf. The empty tree has height 0.
func (t *Tree[T]) Height() int {
	return tree.Height(t.root)
}

// OptimalHeight returns the height a perfectly balanced
// tree with the same number of keys would have.
func (t *Tree[T]) OptimalHeight() int {
	return tree.OptimalHeight(t.Size())
}

// Balance returns 0 for a perfectly balanced tree and 1 for a
// tree that has degenerated into a chain. See tree.Balance;
// it is NaN for trees with fewer than 3 keys.
func (t *Tree[T]) Balance() float64 {
	return tree.Balance(t.root)
}

// RebuildBalanced reshapes the tree to the optimal height.
func (t *Tree[T]) RebuildBalanced() {
	t.root = tree.RebuildBalanced(t.root)
}

// RebuildRandom reshapes the tree by reinserting its keys
// in an order drawn from rng.
func (t *Tree[T]) RebuildRandom(rng tree.Rand) {
	t.root = tree.RebuildRandom(t.root, rng)
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	visitInOrder(t.root, f)
}

func visitInOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n == nil {
		return true
	}

	return visitInOrder(n.Left, f) && f(n.Key) && visitInOrder(n.Right, f)
}

// PreOrder applies f to each key in the tree pre-order.
// If f returns false, the iteration is stopped early.
// Inserting the keys in the order PreOrder yields into an
// empty Tree recreates the same shape.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	visitPreOrder(t.root, f)
}

func visitPreOrder[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}

	return f(n.Key) && visitPreOrder(n.Left, f) && visitPreOrder(n.Right, f)
}

// Keys returns every key in the tree in ascending order.
func (t *Tree[T]) Keys() []T {
	keys := make([]T, 0, t.Size())
	for i := t.InOrderIterator(); i.Next(); {
		keys = append(keys, i.Item())
	}
	return keys
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root, t.Height())
}

// String returns a string representation of the tree.
// A complete binary tree with height 3 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
