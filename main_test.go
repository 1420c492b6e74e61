package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs-au-dk/distgen/table"
)

func TestVerifyPipeline(t *testing.T) {
	for _, bound := range []int{3, 6, table.MaxBound} {
		p := pipeline{table.Config{Bound: bound, Min: 3}}
		assert.NoError(t, p.verify(), "bound %d", bound)
	}
}

func TestSameRows(t *testing.T) {
	subsets, err := table.Assemble(table.Config{Bound: 5, Min: 3, Source: table.SourceSubsets})
	require.NoError(t, err)
	enumerated, err := table.Assemble(table.Config{Bound: 5, Min: 3, Source: table.SourceEnumerator})
	require.NoError(t, err)

	require.NoError(t, sameRows(subsets.Partitions, enumerated.Partitions))

	short := append(table.PartitionTable{}, enumerated.Partitions[:2]...)
	assert.ErrorIs(t, sameRows(subsets.Partitions, short), table.ErrInvalidTable)

	// Swap in a mirrored pair: same count, different contents.
	tampered := append(table.PartitionTable{}, enumerated.Partitions...)
	row := tampered[1]
	row.Pairs = append([]table.RefPair{}, row.Pairs...)
	last := row.Pairs[len(row.Pairs)-1]
	row.Pairs[len(row.Pairs)-1] = table.RefPair{Left: last.Right, Right: last.Left}
	tampered[1] = row
	assert.ErrorIs(t, sameRows(subsets.Partitions, tampered), table.ErrInvalidTable)
}

func TestGatherMetrics(t *testing.T) {
	tables, err := table.Assemble(table.Config{Bound: 4, Min: 3})
	require.NoError(t, err)

	msg := gatherMetrics(tables, time.Millisecond)
	assert.Contains(t, msg, "(expected 16)")
	assert.Contains(t, msg, "(expected 3)")
	assert.Contains(t, msg, "(expected 7)")
	assert.Contains(t, msg, "k=1: 4, k=2: 3")
	assert.NotContains(t, msg, "MISMATCH")
	assert.Equal(t, 2, strings.Count(msg, "ok"))
}
