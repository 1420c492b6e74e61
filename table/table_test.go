package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSet(t *testing.T) {
	s := IndexSet{2, 0, 3}

	assert.Equal(t, IndexSet{0, 2, 3}, s.Canonical())
	assert.Equal(t, IndexSet{2, 0, 3}, s, "Canonical must not reorder the receiver")
	assert.Equal(t, "023", s.Key())
	assert.Equal(t, "C023", s.Name())
	assert.Equal(t, "C", IndexSet{}.Name())
	assert.Equal(t, IndexSet{1, 4}, s.Complement(5))
	assert.True(t, s.Within(4))
	assert.False(t, s.Within(3))

	assert.True(t, s.Equal(IndexSet{0, 2, 3}))
	assert.Equal(t, s.Hash(), IndexSet{3, 2, 0}.Hash())
	assert.False(t, s.Equal(IndexSet{0, 2}))

	assert.True(t, IndexSet{0, 3}.Less(IndexSet{1, 2}))
	assert.False(t, IndexSet{1, 2}.Less(IndexSet{0, 3}))
	assert.True(t, IndexSet{0}.Less(IndexSet{0, 1}))
	assert.Equal(t, "{2, 0, 3}", s.String())
}

func TestSubsetTable(t *testing.T) {
	for bound := 0; bound <= MaxBound; bound++ {
		st := NewSubsetTable(bound)
		require.Equal(t, 1<<bound, st.Len(), "bound %d", bound)
		require.NoError(t, verifySubsets(st), "bound %d", bound)
	}

	st := NewSubsetTable(4)

	ref, ok := st.Lookup(IndexSet{3, 1})
	require.True(t, ok)
	assert.Equal(t, "C13", ref.Name)
	assert.Equal(t, IndexSet{1, 3}, ref.Set)

	_, ok = st.Lookup(IndexSet{4})
	assert.False(t, ok)

	var names []string
	st.ForEach(func(ref Ref) {
		names = append(names, ref.Name)
	})
	assert.Equal(t, []string{
		"C", "C3", "C2", "C23", "C1", "C13", "C12", "C123",
		"C0", "C03", "C02", "C023", "C01", "C013", "C012", "C0123",
	}, names)

	var restricted []string
	for _, ref := range st.Restrict(3, 1, 1) {
		restricted = append(restricted, ref.Name)
	}
	assert.Equal(t, []string{"C2", "C1", "C0"}, restricted)
}

func TestAssemble(t *testing.T) {
	t.Run("FourSubsets", func(t *testing.T) {
		tables, err := Assemble(Config{Bound: 4, Min: 3, Source: SourceSubsets})
		require.NoError(t, err)
		require.NoError(t, Verify(tables))

		assert.Equal(t, "n=3: (C2, C01) (C1, C02) (C0, C12)\n"+
			"n=4: (C3, C012) (C2, C013) (C1, C023) (C0, C123) (C03, C12) (C02, C13) (C01, C23)\n",
			tables.Partitions.String())
	})

	t.Run("FourEnumerator", func(t *testing.T) {
		tables, err := Assemble(Config{Bound: 4, Min: 3, Source: SourceEnumerator})
		require.NoError(t, err)
		require.NoError(t, Verify(tables))

		assert.Equal(t, "n=3: (C0, C12) (C1, C02) (C2, C01)\n"+
			"n=4: (C0, C123) (C1, C023) (C2, C013) (C3, C012) (C01, C23) (C02, C13) (C03, C12)\n",
			tables.Partitions.String())
	})

	t.Run("SourcesAgree", func(t *testing.T) {
		fromSubsets, err := Assemble(DefaultConfig())
		require.NoError(t, err)
		cfg := DefaultConfig()
		cfg.Source = SourceEnumerator
		fromEnumerator, err := Assemble(cfg)
		require.NoError(t, err)

		require.NoError(t, Verify(fromSubsets))
		require.NoError(t, Verify(fromEnumerator))
		assert.Equal(t, 1<<MaxBound, fromSubsets.Subsets.Len())

		for i, row := range fromSubsets.Partitions {
			other := fromEnumerator.Partitions[i]
			require.Equal(t, row.N, other.N)
			assert.Len(t, row.Pairs, ExpectedPairs(row.N))
			assert.ElementsMatch(t, row.Pairs, other.Pairs, "n=%d", row.N)
		}
	})

	t.Run("RowLookup", func(t *testing.T) {
		tables, err := Assemble(Config{Bound: 5, Min: 2})
		require.NoError(t, err)

		row, ok := tables.Partitions.Row(2)
		require.True(t, ok)
		require.Len(t, row.Pairs, 1)
		assert.Equal(t, PartitionPair{IndexSet{0}, IndexSet{1}}, row.Pairs[0].Pair())

		_, ok = tables.Partitions.Row(6)
		assert.False(t, ok)
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		for _, cfg := range []Config{
			{Bound: 0, Min: 1},
			{Bound: MaxBound + 1, Min: 3},
			{Bound: 5, Min: 0},
			{Bound: 4, Min: 5},
			{Bound: 4, Min: 3, Source: Source(7)},
		} {
			_, err := Assemble(cfg)
			assert.ErrorIs(t, err, ErrConfig, "%+v", cfg)
		}
	})
}

func TestParseSource(t *testing.T) {
	for _, src := range []Source{SourceSubsets, SourceEnumerator} {
		parsed, err := ParseSource(src.String())
		require.NoError(t, err)
		assert.Equal(t, src, parsed)
	}

	_, err := ParseSource("bitmask")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestVerifyRejects(t *testing.T) {
	fresh := func(t *testing.T) *Tables {
		tables, err := Assemble(Config{Bound: 5, Min: 3})
		require.NoError(t, err)
		return tables
	}

	t.Run("MirroredDuplicate", func(t *testing.T) {
		tables := fresh(t)
		row := &tables.Partitions[1]
		require.Equal(t, 4, row.N)

		last := row.Pairs[len(row.Pairs)-1]
		row.Pairs = append(row.Pairs, RefPair{last.Right, last.Left})
		assert.ErrorIs(t, Verify(tables), ErrInvalidTable)
	})

	t.Run("MissingPair", func(t *testing.T) {
		tables := fresh(t)
		row := &tables.Partitions[0]
		row.Pairs = row.Pairs[1:]
		assert.ErrorIs(t, Verify(tables), ErrInvalidTable)
	})

	t.Run("ForeignReference", func(t *testing.T) {
		tables := fresh(t)
		row := &tables.Partitions[0]
		row.Pairs[0].Left = Ref{Name: "C9", Set: IndexSet{9}}
		assert.ErrorIs(t, Verify(tables), ErrInvalidTable)
	})

	t.Run("MissingRow", func(t *testing.T) {
		tables := fresh(t)
		tables.Partitions = tables.Partitions[:2]
		assert.ErrorIs(t, Verify(tables), ErrInvalidTable)
	})
}
