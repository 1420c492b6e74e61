package dot

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DotToImage renders dot source with Graphviz, returning the image path.
// Without an output name the image goes to the temporary directory.
func DotToImage(outfname string, format string, dot []byte) (string, error) {
	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := graph.Close(); err != nil {
			log.Println(err)
		}
		g.Close()
	}()

	var img string
	if outfname == "" {
		img = filepath.Join(os.TempDir(), fmt.Sprintf("distgen_export.%s", format))
	} else {
		img = fmt.Sprintf("%s.%s", outfname, format)
	}
	if err := g.RenderFilename(graph, graphviz.Format(format), img); err != nil {
		return "", err
	}
	return img, nil
}

// ==[ type def/func: DotCluster ]===============================================
type DotCluster struct {
	ID    string
	Attrs DotAttrs
	Nodes []*DotNode
	Edges []*DotEdge
}

func NewDotCluster(id string) *DotCluster {
	return &DotCluster{
		ID:    id,
		Attrs: make(DotAttrs),
	}
}

func (c *DotCluster) String() string {
	return fmt.Sprintf("cluster_%s", c.ID)
}

func (c *DotCluster) write(buf *bytes.Buffer, op string) {
	fmt.Fprintf(buf, "\tsubgraph %q {\n", c.String())
	for _, attr := range c.Attrs.List() {
		fmt.Fprintf(buf, "\t\t%s\n", attr)
	}
	for _, n := range c.Nodes {
		n.write(buf, "\t\t")
	}
	for _, e := range c.Edges {
		e.write(buf, op, "\t\t")
	}
	buf.WriteString("\t}\n")
}

// ==[ type def/func: DotNode    ]===============================================
type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

func (n *DotNode) write(buf *bytes.Buffer, indent string) {
	if len(n.Attrs) == 0 {
		fmt.Fprintf(buf, "%s%q;\n", indent, n.ID)
		return
	}
	fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, n.Attrs.Inline())
}

// ==[ type def/func: DotEdge    ]===============================================
type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

func (e *DotEdge) write(buf *bytes.Buffer, op, indent string) {
	if len(e.Attrs) == 0 {
		fmt.Fprintf(buf, "%s%q %s %q;\n", indent, e.From.ID, op, e.To.ID)
		return
	}
	fmt.Fprintf(buf, "%s%q %s %q [%s];\n", indent, e.From.ID, op, e.To.ID, e.Attrs.Inline())
}

// ==[ type def/func: DotAttrs   ]===============================================
type DotAttrs map[string]string

func (p DotAttrs) keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List renders one statement per attribute, sorted by key.
func (p DotAttrs) List() []string {
	l := []string{}
	for _, k := range p.keys() {
		l = append(l, fmt.Sprintf("%s=%q;", k, p[k]))
	}
	return l
}

// Inline renders the attributes for use inside brackets.
func (p DotAttrs) Inline() string {
	l := []string{}
	for _, k := range p.keys() {
		l = append(l, fmt.Sprintf("%s=%q", k, p[k]))
	}
	return strings.Join(l, ", ")
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

// ==[ type def/func: DotGraph   ]===============================================
type DotGraph struct {
	ID        string
	Directed  bool
	Attrs     DotAttrs
	NodeAttrs DotAttrs
	Clusters  []*DotCluster
	Nodes     []*DotNode
	Edges     []*DotEdge
}

func (g *DotGraph) countEdges() int {
	res := len(g.Edges)

	for _, cluster := range g.Clusters {
		res += len(cluster.Edges)
	}

	return res
}

// WriteDot writes g in dot syntax. Output is deterministic.
func (g *DotGraph) WriteDot(w io.Writer) error {
	kind, op := "graph", "--"
	if g.Directed {
		kind, op = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %q {\n", kind, g.ID)
	for _, attr := range g.Attrs.List() {
		fmt.Fprintf(&buf, "\t%s\n", attr)
	}
	if len(g.NodeAttrs) > 0 {
		fmt.Fprintf(&buf, "\tnode [%s];\n", g.NodeAttrs.Inline())
	}

	for _, c := range g.Clusters {
		buf.WriteString("\n")
		c.write(&buf, op)
	}

	if len(g.Nodes)+len(g.Edges) > 0 {
		buf.WriteString("\n")
	}
	for _, n := range g.Nodes {
		n.write(&buf, "\t")
	}
	for _, e := range g.Edges {
		e.write(&buf, op, "\t")
	}
	buf.WriteString("}\n")

	_, err := buf.WriteTo(w)
	return err
}

// Render writes g to an image through Graphviz.
func (g *DotGraph) Render(outfname, format string) (string, error) {
	var buf bytes.Buffer
	if err := g.WriteDot(&buf); err != nil {
		return "", err
	}

	log.Printf("Rendering %d edges in %d clusters\n", g.countEdges(), len(g.Clusters))
	return DotToImage(outfname, format, buf.Bytes())
}
