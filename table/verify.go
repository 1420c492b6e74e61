package table

import (
	"fmt"

	uf "github.com/spakin/disjoint"
)

// Verify checks the structural invariants of a generated table set:
// the subset table holds every subset exactly once, every pair splits its
// universe into two disjoint non-empty parts, no unordered partition is
// repeated within a row, and every row holds the expected number of pairs.
func Verify(t *Tables) error {
	if err := verifySubsets(t.Subsets); err != nil {
		return err
	}

	cfg := t.Config
	if len(t.Partitions) != cfg.Rows() {
		return fmt.Errorf("%w: %d partition rows, expected %d", ErrInvalidTable, len(t.Partitions), cfg.Rows())
	}

	for i, row := range t.Partitions {
		if row.N != cfg.Min+i {
			return fmt.Errorf("%w: row %d is for n=%d, expected n=%d", ErrInvalidTable, i, row.N, cfg.Min+i)
		}
		if err := verifyRow(t.Subsets, row); err != nil {
			return fmt.Errorf("n=%d: %w", row.N, err)
		}
	}

	return nil
}

func verifySubsets(st *SubsetTable) error {
	if expected := 1 << st.Bound(); st.Len() != expected {
		return fmt.Errorf("%w: %d subsets, expected %d", ErrInvalidTable, st.Len(), expected)
	}

	names := make(map[string]struct{}, st.Len())
	var err error
	st.ForEach(func(ref Ref) {
		if err != nil {
			return
		}
		if _, dup := names[ref.Name]; dup {
			err = fmt.Errorf("%w: duplicate subset %s", ErrInvalidTable, ref.Name)
			return
		}
		names[ref.Name] = struct{}{}
		if !ref.Set.Within(st.Bound()) {
			err = fmt.Errorf("%w: subset %s escapes the %d-element universe", ErrInvalidTable, ref.Name, st.Bound())
		}
	})
	if err == nil && len(names) != st.Len() {
		err = fmt.Errorf("%w: %d named subsets, %d keyed subsets", ErrInvalidTable, len(names), st.Len())
	}
	return err
}

func verifyRow(st *SubsetTable, row Row) error {
	n := row.N
	seen := make(map[string]struct{}, len(row.Pairs))
	perSize := make(map[int]int)

	for _, p := range row.Pairs {
		for _, side := range []Ref{p.Left, p.Right} {
			if ref, ok := st.Lookup(side.Set); !ok || ref.Name != side.Name {
				return fmt.Errorf("%w: %s does not refer to a subset table entry", ErrInvalidTable, side.Name)
			}
		}

		pair := p.Pair()
		k := len(pair.Left)
		if k < 1 || 2*k > n {
			return fmt.Errorf("%w: left part of %v has size %d, expected [1, %d]", ErrInvalidTable, pair, k, n/2)
		}
		if err := verifySplit(n, pair); err != nil {
			return err
		}

		lk, rk := pair.Left.Key(), pair.Right.Key()
		if rk < lk {
			lk, rk = rk, lk
		}
		key := lk + "|" + rk
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: partition %v appears twice", ErrInvalidTable, pair)
		}
		seen[key] = struct{}{}
		perSize[k]++
	}

	for k := 1; k <= n/2; k++ {
		if expected := ExpectedPairsOfSize(n, k); perSize[k] != expected {
			return fmt.Errorf("%w: %d pairs with left size %d, expected %d", ErrInvalidTable, perSize[k], k, expected)
		}
	}
	return nil
}

// verifySplit checks that pair divides {0, ..., n-1} into exactly two
// classes, one per side. Overlapping sides collapse into one class and
// missing elements form classes of their own.
func verifySplit(n int, pair PartitionPair) error {
	if !pair.Left.Within(n) || !pair.Right.Within(n) {
		return fmt.Errorf("%w: %v has elements outside [0, %d)", ErrInvalidTable, pair, n)
	}
	if len(pair.Left)+len(pair.Right) != n {
		return fmt.Errorf("%w: %v does not have %d elements", ErrInvalidTable, pair, n)
	}

	elems := make([]*uf.Element, n)
	for i := range elems {
		elems[i] = uf.NewElement()
		elems[i].Data = i
	}

	for _, side := range []IndexSet{pair.Left, pair.Right} {
		for _, e := range side[1:] {
			uf.Union(elems[side[0]], elems[e])
		}
	}

	classes := make(map[*uf.Element]struct{})
	for _, el := range elems {
		classes[el.Find()] = struct{}{}
	}
	if len(classes) != 2 || elems[pair.Left[0]].Find() == elems[pair.Right[0]].Find() {
		return fmt.Errorf("%w: %v is not a split of {0, ..., %d}", ErrInvalidTable, pair, n-1)
	}
	return nil
}
