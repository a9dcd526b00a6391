package pretty

import (
	"strconv"
	"strings"
)

// Grid is the read-only view the renderer needs.
type Grid interface {
	Rows() int
	Cols() int
	At(r, c int) int32
}

// Options control the ASCII rendering.
type Options struct {
	// Minimum characters per cell, sign included. If <=0, no padding.
	CellWidth int

	// Pad with '0' (after the sign) instead of spaces.
	ZeroPad bool

	// Between cells on a line.
	Separator string

	// Prepended to every line.
	LinePrefix string
}

// DefaultOptions renders "%02d" cells separated by single spaces.
var DefaultOptions = Options{
	CellWidth: 2,
	ZeroPad:   true,
	Separator: " ",
}

// RenderGrid renders g with DefaultOptions.
func RenderGrid(g Grid) string { return RenderGridWithOptions(g, DefaultOptions) }

// RenderGridWithOptions renders one line per row, joined by '\n', with no
// trailing newline. An empty grid renders as "".
func RenderGridWithOptions(g Grid, o Options) string {
	rows, cols := g.Rows(), g.Cols()
	lines := make([]string, rows)
	cells := make([]string, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[c] = formatCell(g.At(r, c), o)
		}
		lines[r] = o.LinePrefix + strings.Join(cells, o.Separator)
	}
	return strings.Join(lines, "\n")
}

// formatCell behaves like fmt's %0Nd (ZeroPad) or %Nd.
func formatCell(v int32, o Options) string {
	s := strconv.FormatInt(int64(v), 10)
	pad := o.CellWidth - len(s)
	if pad <= 0 {
		return s
	}
	if !o.ZeroPad {
		return strings.Repeat(" ", pad) + s
	}
	if v < 0 {
		return "-" + strings.Repeat("0", pad) + s[1:]
	}
	return strings.Repeat("0", pad) + s
}
