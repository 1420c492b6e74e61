package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/cs-au-dk/distgen/table"
)

// Go emits a source file declaring one uint8 array per subset and a Dist
// table of Pair slices, one per set size.
type Go struct {
	Package string
}

func (g Go) Render(w io.Writer, t *table.Tables) error {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by distgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.Package)
	buf.WriteString("// Pair splits a universe into a left part and its complement.\n")
	buf.WriteString("type Pair struct {\n\tLeft, Right []uint8\n}\n\n")

	t.Subsets.ForEach(func(ref table.Ref) {
		elems := make([]string, len(ref.Set))
		for i, e := range ref.Set {
			elems[i] = strconv.Itoa(e)
		}
		fmt.Fprintf(&buf, "var %s = [...]uint8{%s}\n", ref.Name, strings.Join(elems, ", "))
	})

	cfg := t.Config
	fmt.Fprintf(&buf, "\n// Dist holds the complementary pairs for set sizes %d through %d.\n", cfg.Min, cfg.Bound)
	buf.WriteString("var Dist = [...][]Pair{\n")
	for _, row := range t.Partitions {
		pairs := make([]string, len(row.Pairs))
		for i, p := range row.Pairs {
			pairs[i] = fmt.Sprintf("{%s[:], %s[:]}", p.Left.Name, p.Right.Name)
		}
		fmt.Fprintf(&buf, "\t{%s},\n", strings.Join(pairs, ", "))
	}
	buf.WriteString("}\n")

	src, err := imports.Process(g.Package+".go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return fmt.Errorf("formatting generated Go source: %w", err)
	}

	_, err = w.Write(src)
	return err
}
