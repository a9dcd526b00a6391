// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"gridprod/internal/matrix"
	"gridprod/internal/output"
	"gridprod/internal/pretty"
)

// Writers maps an output format to its handler.
var Writers = map[string]func(w io.Writer, r output.Report) error{}

// Register adds or replaces (last wins) the handler for format.
func Register(format string, fn func(io.Writer, output.Report) error) { Writers[format] = fn }

func init() {
	Register(output.FormatText, func(w io.Writer, r output.Report) error {
		return output.WriteText(w, r, func(g *matrix.Grid) string { return pretty.RenderGrid(g) })
	})
	Register(output.FormatJSON, output.WriteJSON)
	Register(output.FormatYAML, output.WriteYAML)
}

// Write dispatches r to the handler registered for format.
func Write(format string, w io.Writer, r output.Report) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r)
}

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(Writers))
	for f := range Writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
