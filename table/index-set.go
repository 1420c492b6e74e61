// Package table builds the subset and complementary-pair lookup tables.
//
// A SubsetTable names every subset of the universe {0, ..., N-1}. A
// PartitionTable lists, for each set size n, every split of {0, ..., n-1}
// into a left part of at most n/2 elements and its complement, with both
// sides referring to SubsetTable entries.
package table

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cs-au-dk/distgen/utils"
)

// IndexSet is a subset of a universe {0, ..., n-1}, given by its element indices.
type IndexSet []int

// Universe returns the ascending index set {0, ..., n-1}.
func Universe(n int) IndexSet {
	u := make(IndexSet, n)
	for i := range u {
		u[i] = i
	}
	return u
}

// Canonical returns an ascending copy of s.
func (s IndexSet) Canonical() IndexSet {
	c := make(IndexSet, len(s))
	copy(c, s)
	sort.Ints(c)
	return c
}

// Key is the canonical textual form of s: its sorted indices concatenated.
// The empty set has the empty key. Indices are assumed to be below 10.
func (s IndexSet) Key() string {
	var b strings.Builder
	for _, i := range s.Canonical() {
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

// Name is the symbol under which s is emitted.
func (s IndexSet) Name() string {
	return "C" + s.Key()
}

// Hash is order-insensitive, matching Equal.
func (s IndexSet) Hash() uint32 {
	hs := make([]uint32, 0, len(s)+1)
	hs = append(hs, uint32(len(s)))
	for _, i := range s.Canonical() {
		hs = append(hs, uint32(i))
	}
	return utils.HashCombine(hs...)
}

// Equal reports whether s and o hold the same elements, regardless of order.
func (s IndexSet) Equal(o IndexSet) bool {
	if len(s) != len(o) {
		return false
	}
	a, b := s.Canonical(), o.Canonical()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Contains reports whether i is an element of s.
func (s IndexSet) Contains(i int) bool {
	for _, e := range s {
		if e == i {
			return true
		}
	}
	return false
}

// Within reports whether every element of s lies in [0, n).
func (s IndexSet) Within(n int) bool {
	for _, e := range s {
		if e < 0 || e >= n {
			return false
		}
	}
	return true
}

// Complement returns the ascending elements of {0, ..., n-1} missing from s.
func (s IndexSet) Complement(n int) IndexSet {
	res := make(IndexSet, 0, n)
	for i := 0; i < n; i++ {
		if !s.Contains(i) {
			res = append(res, i)
		}
	}
	return res
}

// Less orders index sets lexicographically by their canonical forms.
// A proper prefix sorts first.
func (s IndexSet) Less(o IndexSet) bool {
	a, b := s.Canonical(), o.Canonical()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func (s IndexSet) String() string {
	strs := make([]string, 0, len(s))
	for _, i := range s {
		strs = append(strs, strconv.Itoa(i))
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
