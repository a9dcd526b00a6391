// internal/matrix/grid.go
package matrix

// Grid is an immutable rectangular matrix of int32 cells stored row-major.
type Grid struct {
	rows, cols int
	data       []int32
}

// New builds a Grid from a row-major buffer. The buffer is copied.
func New(rows, cols int, cells []int32) (*Grid, error) {
	if rows < 0 || cols < 0 || rows*cols != len(cells) {
		return nil, &MalformedMatrixError{Rows: rows, Cols: cols, Size: len(cells)}
	}
	return &Grid{rows: rows, cols: cols, data: append([]int32(nil), cells...)}, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.data) }

// At returns the cell at (r, c). It panics when out of range, like a slice index.
func (g *Grid) At(r, c int) int32 {
	if c < 0 || c >= g.cols {
		panic("matrix: column index out of range")
	}
	return g.data[r*g.cols+c]
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []int32 {
	return append([]int32(nil), g.data[r*g.cols:(r+1)*g.cols]...)
}
