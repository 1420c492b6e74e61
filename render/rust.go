package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cs-au-dk/distgen/table"
)

// Rust emits one `pub static` byte array per subset and a DIST table with
// one slice of (left, right) references per set size.
type Rust struct{}

func (Rust) Render(w io.Writer, t *table.Tables) error {
	bw := bufio.NewWriter(w)

	t.Subsets.ForEach(func(ref table.Ref) {
		elems := make([]string, len(ref.Set))
		for i, e := range ref.Set {
			elems[i] = strconv.Itoa(e)
		}
		bw.WriteString("pub static " + ref.Name +
			":[u8;" + strconv.Itoa(len(ref.Set)) + "]=[" + strings.Join(elems, ",") + "];\n")
	})

	bw.WriteString("pub static DIST:[&[(&[u8],&[u8])];" + strconv.Itoa(len(t.Partitions)) + "]=[\n")
	for _, row := range t.Partitions {
		bw.WriteString("&[")
		for _, p := range row.Pairs {
			bw.WriteString("(&" + p.Left.Name + ",&" + p.Right.Name + "),")
		}
		bw.WriteString("],\n")
	}
	bw.WriteString("];\n")

	return bw.Flush()
}
