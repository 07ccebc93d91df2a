package tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLetterTree inserts d b f a c e g, giving a complete tree of height 3.
func newLetterTree(t *testing.T) *Node[string] {
	var root *Node[string]
	for _, k := range []string{"d", "b", "f", "a", "c", "e", "g"} {
		var ok bool
		root, ok = Insert(root, k)
		require.True(t, ok, k)
	}
	return root
}

// newChain inserts 0..n-1 in ascending order, so every node hangs off
// the right of the previous one.
func newChain(n int) *Node[int] {
	var root *Node[int]
	for i := 0; i < n; i++ {
		root, _ = Insert(root, i)
	}
	return root
}

// newShuffled inserts 0..n-1 in a seeded random order.
func newShuffled(n int, seed int64) *Node[int] {
	var root *Node[int]
	for _, k := range rand.New(rand.NewSource(seed)).Perm(n) {
		root, _ = Insert(root, k)
	}
	return root
}

func inOrderKeys[T string | int](root *Node[T]) []T {
	return Keys(CollectInOrder(nil, root))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Less, Compare("a", "b"))
	assert.Equal(t, Equal, Compare("b", "b"))
	assert.Equal(t, Greater, Compare("c", "b"))
	assert.Equal(t, Less, Compare(-1, 0))
}

func TestNodeOf(t *testing.T) {
	n := NodeOf("k")

	assert.Equal(t, "k", n.Key)
	assert.Nil(t, n.Left)
	assert.Nil(t, n.Right)
}
