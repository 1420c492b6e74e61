package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cs-au-dk/distgen/render"
	"github.com/cs-au-dk/distgen/table"
	"github.com/cs-au-dk/distgen/utils"
)

// pipeline drives table generation for a single configuration.
type pipeline struct {
	cfg table.Config
}

// assemble builds the subset and partition tables.
func (p pipeline) assemble() (*table.Tables, error) {
	defer utils.TimeTrack(time.Now(), fmt.Sprintf("Assembling tables (source %v)", p.cfg.Source))

	log.Printf("Building %d subsets and %d partition rows...\n", 1<<p.cfg.Bound, p.cfg.Rows())
	tables, err := table.Assemble(p.cfg)
	if err != nil {
		return nil, err
	}

	opts.OnVerbose(func() {
		utils.VerbosePrint("%s", tables.Partitions.String())
	})

	return tables, nil
}

// emit renders the tables in full before anything reaches the output.
func (p pipeline) emit(r render.Renderer) error {
	tables, err := p.assemble()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, tables); err != nil {
		return fmt.Errorf("rendering tables: %w", err)
	}

	return writeOutput(opts.Output(), buf.Bytes())
}

// verify assembles the tables from both pair sources, checks each and
// checks that they hold the same pairs per set size.
func (p pipeline) verify() error {
	var results []*table.Tables
	for _, src := range []table.Source{table.SourceSubsets, table.SourceEnumerator} {
		cfg := p.cfg
		cfg.Source = src

		tables, err := pipeline{cfg}.assemble()
		if err != nil {
			return err
		}
		if err := table.Verify(tables); err != nil {
			return fmt.Errorf("source %v: %w", src, err)
		}
		log.Println("Source", src, utils.OkColor("verified"))
		results = append(results, tables)
	}

	return sameRows(results[0].Partitions, results[1].Partitions)
}

func sameRows(a, b table.PartitionTable) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d and %d rows", table.ErrInvalidTable, len(a), len(b))
	}

	for i := range a {
		keys := make(map[string]int)
		for _, p := range a[i].Pairs {
			keys[p.Left.Name+"|"+p.Right.Name]++
		}
		for _, p := range b[i].Pairs {
			keys[p.Left.Name+"|"+p.Right.Name]--
		}
		for key, diff := range keys {
			if diff != 0 {
				return fmt.Errorf("%w: n=%d sources disagree on %s", table.ErrInvalidTable, a[i].N, key)
			}
		}
	}
	return nil
}

// partitionToDot draws a single row and renders it with Graphviz.
func (p pipeline) partitionToDot(n int) error {
	tables, err := p.assemble()
	if err != nil {
		return err
	}

	g, err := render.PartitionGraph(tables, n)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := g.WriteDot(&buf); err != nil {
		return err
	}
	opts.OnVerbose(func() {
		utils.VerbosePrint("%s", buf.String())
	})

	img, err := g.Render(opts.Output(), opts.ImageFormat())
	if err != nil {
		return fmt.Errorf("rendering partition graph: %w", err)
	}
	log.Println("Partition graph written to", img)
	return nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	log.Printf("Wrote %d bytes to %s\n", len(data), path)
	return nil
}
