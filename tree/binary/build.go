package binary

import (
	"math/rand"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	return FromKeys(nodes)
}

// BuildSorted builds a binary tree with num nodes by inserting
// the keys [0, num) in ascending order. Every node but the last
// has only a right child, so the height is num: the worst case
// for an unbalanced tree.
func BuildSorted(num int) *Tree[int] {
	tr := &Tree[int]{}
	for i := 0; i < num; i++ {
		tr.Insert(i)
	}
	return tr
}
