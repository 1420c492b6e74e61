package table

import (
	"fmt"
	"strings"
)

// RefPair is a PartitionPair resolved against the subset table.
type RefPair struct {
	Left, Right Ref
}

// Pair strips the symbol names.
func (p RefPair) Pair() PartitionPair {
	return PartitionPair{p.Left.Set, p.Right.Set}
}

// Row holds the complementary pairs of an n-element universe.
type Row struct {
	N     int
	Pairs []RefPair
}

// PartitionTable has one row per n in [Min, Bound], in increasing n.
type PartitionTable []Row

// Row returns the row for n, if the table has one.
func (pt PartitionTable) Row(n int) (Row, bool) {
	for _, row := range pt {
		if row.N == n {
			return row, true
		}
	}
	return Row{}, false
}

func (pt PartitionTable) String() string {
	var b strings.Builder
	for _, row := range pt {
		fmt.Fprintf(&b, "n=%d:", row.N)
		for _, p := range row.Pairs {
			fmt.Fprintf(&b, " (%s, %s)", p.Left, p.Right)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Tables is the complete output of a generation pass.
type Tables struct {
	Config     Config
	Subsets    *SubsetTable
	Partitions PartitionTable
}

// Assemble builds the subset table for cfg.Bound, then a partition row for
// every n in [cfg.Min, cfg.Bound] covering left sizes 1 through n/2.
func Assemble(cfg Config) (*Tables, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	subsets := NewSubsetTable(cfg.Bound)

	rows := make(PartitionTable, 0, cfg.Rows())
	for n := cfg.Min; n <= cfg.Bound; n++ {
		var pairs []PartitionPair
		switch cfg.Source {
		case SourceSubsets:
			pairs = pairsFromSubsets(subsets, n)
		case SourceEnumerator:
			pairs = pairsFromEnumerator(n)
		}

		row := Row{N: n, Pairs: make([]RefPair, 0, len(pairs))}
		for _, p := range pairs {
			left, lok := subsets.Lookup(p.Left)
			right, rok := subsets.Lookup(p.Right)
			if !lok || !rok {
				// Every subset of a smaller universe is in the table.
				panic(fmt.Sprintf("pair %v for n=%d missing from a subset table of bound %d", p, n, cfg.Bound))
			}
			row.Pairs = append(row.Pairs, RefPair{left, right})
		}
		rows = append(rows, row)
	}

	return &Tables{
		Config:     cfg,
		Subsets:    subsets,
		Partitions: rows,
	}, nil
}

func pairsFromSubsets(subsets *SubsetTable, n int) (pairs []PartitionPair) {
	for _, ref := range subsets.Restrict(n, 1, n/2) {
		right := ref.Set.Complement(n)
		if canonical(n, ref.Set, right) {
			pairs = append(pairs, PartitionPair{ref.Set, right})
		}
	}
	return
}

func pairsFromEnumerator(n int) (pairs []PartitionPair) {
	for k := 1; k <= n/2; k++ {
		pairs = append(pairs, Partitions(n, k)...)
	}
	return
}
