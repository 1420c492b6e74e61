package table

import (
	"github.com/benbjohnson/immutable"

	"github.com/cs-au-dk/distgen/utils"
	"github.com/cs-au-dk/distgen/utils/set"
)

// Ref is a SubsetTable entry: a subset and the symbol it is emitted under.
type Ref struct {
	Name string
	Set  IndexSet
}

func (r Ref) String() string {
	return r.Name
}

// SubsetTable names every subset of {0, ..., Bound-1}. Entries are kept in
// power set generation order for emission; lookups go through a persistent
// map keyed by the canonical subset.
type SubsetTable struct {
	bound int
	order []Ref
	refs  *immutable.Map[IndexSet, Ref]
}

// NewSubsetTable enumerates the power set of the bound-element universe.
// Memory and time are exponential in bound.
func NewSubsetTable(bound int) *SubsetTable {
	subsets := set.PowerSet(Universe(bound))

	order := make([]Ref, 0, len(subsets))
	builder := utils.NewImmMapBuilder[IndexSet, Ref]()
	for _, s := range subsets {
		ref := Ref{Name: IndexSet(s).Name(), Set: s}
		order = append(order, ref)
		builder.Set(ref.Set, ref)
	}

	return &SubsetTable{
		bound: bound,
		order: order,
		refs:  builder.Map(),
	}
}

// Bound is the size of the universe the table covers.
func (t *SubsetTable) Bound() int {
	return t.bound
}

// Len is the number of distinct subsets in the table.
func (t *SubsetTable) Len() int {
	return t.refs.Len()
}

// Lookup finds the entry for s, in any element order.
func (t *SubsetTable) Lookup(s IndexSet) (Ref, bool) {
	return t.refs.Get(s)
}

// ForEach visits every entry in generation order.
func (t *SubsetTable) ForEach(do func(Ref)) {
	for _, ref := range t.order {
		do(ref)
	}
}

// Restrict is the filtered view of the table holding the subsets of
// {0, ..., n-1} whose size lies in [minSize, maxSize], in generation order.
func (t *SubsetTable) Restrict(n, minSize, maxSize int) []Ref {
	var res []Ref
	for _, ref := range t.order {
		if len(ref.Set) >= minSize && len(ref.Set) <= maxSize && ref.Set.Within(n) {
			res = append(res, ref)
		}
	}
	return res
}
