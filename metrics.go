package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/cs-au-dk/distgen/table"
	"github.com/cs-au-dk/distgen/utils"
)

// gatherMetrics compares the generated table sizes with the closed forms.
func gatherMetrics(tables *table.Tables, elapsed time.Duration) string {
	cfg := tables.Config

	msg := utils.TitleColor("================ Results =====================") + "\n\n"
	msg += fmt.Sprintf("Bound: %d, rows %d..%d, source %v\n", cfg.Bound, cfg.Min, cfg.Bound, cfg.Source)
	msg += fmt.Sprintf("Subsets: %s (expected %d)\n", utils.CountColor(tables.Subsets.Len()), 1<<cfg.Bound)
	msg += "Time: " + elapsed.String() + "\n\n"

	total := 0
	for _, row := range tables.Partitions {
		perSize := make(map[int]int)
		for _, p := range row.Pairs {
			perSize[len(p.Left.Set)]++
		}

		sizes := make([]string, 0, row.N/2)
		for k := 1; k <= row.N/2; k++ {
			sizes = append(sizes, fmt.Sprintf("k=%d: %d", k, perSize[k]))
		}

		expected := table.ExpectedPairs(row.N)
		status := utils.OkColor("ok")
		if expected != len(row.Pairs) {
			status = utils.FailColor("MISMATCH")
		}

		msg += fmt.Sprintf("n=%-2d %s pairs (expected %d) %s  [%s]\n",
			row.N, utils.CountColor(len(row.Pairs)), expected, status, strings.Join(sizes, ", "))
		total += len(row.Pairs)
	}

	msg += fmt.Sprintf("\nTotal pairs: %s\n", utils.CountColor(total))
	return msg
}
