package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cs-au-dk/distgen/table"
)

type yamlSubset struct {
	Name     string `yaml:"name"`
	Elements []int  `yaml:"elements,flow"`
}

type yamlRow struct {
	N     int         `yaml:"n"`
	Pairs [][2]string `yaml:"pairs,flow"`
}

type yamlTables struct {
	Bound      int          `yaml:"bound"`
	Min        int          `yaml:"min"`
	Subsets    []yamlSubset `yaml:"subsets"`
	Partitions []yamlRow    `yaml:"partitions"`
}

// YAML dumps the tables as plain data, referring to subsets by name.
type YAML struct{}

func (YAML) Render(w io.Writer, t *table.Tables) error {
	doc := yamlTables{
		Bound: t.Config.Bound,
		Min:   t.Config.Min,
	}

	t.Subsets.ForEach(func(ref table.Ref) {
		doc.Subsets = append(doc.Subsets, yamlSubset{ref.Name, []int(ref.Set)})
	})
	for _, row := range t.Partitions {
		yr := yamlRow{N: row.N, Pairs: make([][2]string, 0, len(row.Pairs))}
		for _, p := range row.Pairs {
			yr.Pairs = append(yr.Pairs, [2]string{p.Left.Name, p.Right.Name})
		}
		doc.Partitions = append(doc.Partitions, yr)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
