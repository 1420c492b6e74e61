// Package render turns generated tables into source text for other builds.
package render

import (
	"fmt"
	"io"

	"github.com/cs-au-dk/distgen/table"
)

type Renderer interface {
	Render(w io.Writer, t *table.Tables) error
}

// Options tune renderers that need more than the tables.
type Options struct {
	// Package is the package clause of generated Go code.
	Package string
}

// ByName selects the renderer for an output format.
func ByName(format string, opts Options) (Renderer, error) {
	switch format {
	case "rust":
		return Rust{}, nil
	case "go":
		pkg := opts.Package
		if pkg == "" {
			pkg = "tables"
		}
		return Go{Package: pkg}, nil
	case "yaml":
		return YAML{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
