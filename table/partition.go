package table

import (
	"fmt"

	"github.com/cs-au-dk/distgen/utils/set"
)

// PartitionPair splits a universe {0, ..., n-1} into Left and its complement Right.
type PartitionPair struct {
	Left, Right IndexSet
}

func (p PartitionPair) String() string {
	return fmt.Sprintf("(%s, %s)", p.Left, p.Right)
}

// SelfComplementary reports whether a left part of size k has a complement
// of the same size in an n-element universe.
func SelfComplementary(n, k int) bool {
	return 2*k == n
}

// canonical reports whether (left, right) is the representative kept for
// its unordered partition. Only the self-complementary size class has two
// orderings of the same size; of those the lexicographically smaller left
// part is kept.
func canonical(n int, left, right IndexSet) bool {
	return !SelfComplementary(n, len(left)) || left.Less(right)
}

// Partitions enumerates every pair whose left part is a k-subset of
// {0, ..., n-1}. Left parts are visited in ascending lexicographic order.
// When 2k == n each unordered partition appears once.
//
// k must lie in [1, n-1].
func Partitions(n, k int) []PartitionPair {
	if k < 1 || k > n-1 {
		panic(fmt.Sprintf("left size %d out of range for a %d-element universe", k, n))
	}

	var pairs []PartitionPair
	set.Combinations(n, k, func(c []int) {
		left := IndexSet(c)
		right := left.Complement(n)
		if canonical(n, left, right) {
			pairs = append(pairs, PartitionPair{left, right})
		}
	})
	return pairs
}

// ExpectedPairs is the number of pairs a partition row for n holds.
func ExpectedPairs(n int) (count int) {
	for k := 1; k <= n/2; k++ {
		count += ExpectedPairsOfSize(n, k)
	}
	return
}

// ExpectedPairsOfSize is the number of pairs with a left part of size k.
func ExpectedPairsOfSize(n, k int) int {
	if SelfComplementary(n, k) {
		return set.Binomial(n, k) / 2
	}
	return set.Binomial(n, k)
}
