package render

import (
	"fmt"
	"io"

	"github.com/cs-au-dk/distgen/table"
	"github.com/cs-au-dk/distgen/utils/dot"
)

// PartitionGraph draws the row for n: one cluster per left size, one edge
// per complementary pair.
func PartitionGraph(t *table.Tables, n int) (*dot.DotGraph, error) {
	row, ok := t.Partitions.Row(n)
	if !ok {
		return nil, fmt.Errorf("no partition row for n=%d in tables for [%d, %d]", n, t.Config.Min, t.Config.Bound)
	}

	g := &dot.DotGraph{
		ID:        fmt.Sprintf("partitions_%d", n),
		Attrs:     dot.DotAttrs{"label": fmt.Sprintf("n=%d", n)},
		NodeAttrs: dot.DotAttrs{"shape": "box"},
	}

	nodes := make(map[string]*dot.DotNode)
	node := func(ref table.Ref) *dot.DotNode {
		if nd, ok := nodes[ref.Name]; ok {
			return nd
		}
		nd := &dot.DotNode{ID: ref.Name}
		nodes[ref.Name] = nd
		return nd
	}

	clusters := make(map[int]*dot.DotCluster)
	for _, p := range row.Pairs {
		k := len(p.Left.Set)
		cluster, ok := clusters[k]
		if !ok {
			cluster = dot.NewDotCluster(fmt.Sprintf("k%d", k))
			cluster.Attrs["label"] = fmt.Sprintf("k=%d", k)
			clusters[k] = cluster
		}
		cluster.Edges = append(cluster.Edges, &dot.DotEdge{
			From: node(p.Left),
			To:   node(p.Right),
		})
	}

	for k := 1; k <= n/2; k++ {
		if cluster, ok := clusters[k]; ok {
			g.Clusters = append(g.Clusters, cluster)
		}
	}
	return g, nil
}

// Dot writes the partition graph of a single set size in dot syntax.
type Dot struct {
	N int
}

func (d Dot) Render(w io.Writer, t *table.Tables) error {
	g, err := PartitionGraph(t, d.N)
	if err != nil {
		return err
	}
	return g.WriteDot(w)
}
