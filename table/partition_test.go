package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs-au-dk/distgen/utils/set"
)

func TestPartitionsSmall(t *testing.T) {
	t.Run("ThreeChooseOne", func(t *testing.T) {
		assert.Equal(t, []PartitionPair{
			{IndexSet{0}, IndexSet{1, 2}},
			{IndexSet{1}, IndexSet{0, 2}},
			{IndexSet{2}, IndexSet{0, 1}},
		}, Partitions(3, 1))
	})

	t.Run("FourChooseOne", func(t *testing.T) {
		assert.Len(t, Partitions(4, 1), 4)
	})

	t.Run("FourChooseTwo", func(t *testing.T) {
		pairs := Partitions(4, 2)
		assert.Equal(t, []PartitionPair{
			{IndexSet{0, 1}, IndexSet{2, 3}},
			{IndexSet{0, 2}, IndexSet{1, 3}},
			{IndexSet{0, 3}, IndexSet{1, 2}},
		}, pairs)
		assert.NotContains(t, pairs, PartitionPair{IndexSet{2, 3}, IndexSet{0, 1}})
	})

	t.Run("OutOfRange", func(t *testing.T) {
		assert.Panics(t, func() { Partitions(4, 0) })
		assert.Panics(t, func() { Partitions(4, 4) })
	})
}

func TestPartitionsProperties(t *testing.T) {
	for n := 2; n <= MaxBound; n++ {
		for k := 1; k <= n-1; k++ {
			pairs := Partitions(n, k)

			expected := set.Binomial(n, k)
			if SelfComplementary(n, k) {
				expected /= 2
			}
			require.Len(t, pairs, expected, "n=%d k=%d", n, k)
			assert.Equal(t, expected, ExpectedPairsOfSize(n, k))

			seen := make(map[string]struct{}, len(pairs))
			for _, p := range pairs {
				require.Len(t, p.Left, k)
				require.Len(t, p.Right, n-k)
				require.NoError(t, verifySplit(n, p), "n=%d k=%d", n, k)

				lk, rk := p.Left.Key(), p.Right.Key()
				if rk < lk {
					lk, rk = rk, lk
				}
				_, dup := seen[lk+"|"+rk]
				require.False(t, dup, "partition %v repeated for n=%d", p, n)
				seen[lk+"|"+rk] = struct{}{}
			}
		}
	}
}

func TestExpectedPairs(t *testing.T) {
	tests := []struct {
		n, expected int
	}{
		{1, 0},
		{2, 1},
		{3, 3},
		{4, 7},
		{5, 15},
		{10, 511},
	}

	for _, test := range tests {
		if res := ExpectedPairs(test.n); res != test.expected {
			t.Errorf("ExpectedPairs(%d) = %d, expected %d", test.n, res, test.expected)
		}
	}
}

func TestVerifySplit(t *testing.T) {
	tests := []struct {
		name string
		pair PartitionPair
		ok   bool
	}{
		{"Split", PartitionPair{IndexSet{0, 3}, IndexSet{1, 2}}, true},
		{"Overlap", PartitionPair{IndexSet{0, 1}, IndexSet{1, 2}}, false},
		{"Repeated", PartitionPair{IndexSet{0, 0}, IndexSet{1, 2}}, false},
		{"Escapes", PartitionPair{IndexSet{0, 4}, IndexSet{1, 2}}, false},
		{"Short", PartitionPair{IndexSet{0}, IndexSet{1, 2}}, false},
	}

	for _, test := range tests {
		err := verifySplit(4, test.pair)
		if test.ok {
			assert.NoError(t, err, test.name)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTable, test.name)
		}
	}
}
