// internal/engine/scan.go
package engine

// best tracks a running maximum; the zero value reports 0 when nothing was seen.
type best struct {
	v    int64
	seen bool
}

func (b *best) offer(p int64) {
	if !b.seen || p > b.v {
		b.v, b.seen = p, true
	}
}

func cell(g Grid, r, c int) int64 { return int64(g.At(r, c)) }

// Horizontal returns the largest product of a 1x4 window, anchors
// 0 <= col <= cols-4 in every row. No window yields 0.
func Horizontal(g Grid) int64 {
	var b best
	rows, cols := g.Rows(), g.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c+Span <= cols; c++ {
			b.offer(cell(g, r, c) * cell(g, r, c+1) * cell(g, r, c+2) * cell(g, r, c+3))
		}
	}
	return b.v
}

// Vertical returns the largest product of a 4x1 window, anchors
// 0 <= row <= rows-4 in every column. No window yields 0.
func Vertical(g Grid) int64 {
	var b best
	rows, cols := g.Rows(), g.Cols()
	for r := 0; r+Span <= rows; r++ {
		for c := 0; c < cols; c++ {
			b.offer(cell(g, r, c) * cell(g, r+1, c) * cell(g, r+2, c) * cell(g, r+3, c))
		}
	}
	return b.v
}

// Diagonal returns the largest product along either diagonal of a 4x4
// window, anchors 0 <= row <= rows-4 and 0 <= col <= cols-4. No window
// yields 0.
func Diagonal(g Grid) int64 {
	var b best
	rows, cols := g.Rows(), g.Cols()
	for r := 0; r+Span <= rows; r++ {
		for c := 0; c+Span <= cols; c++ {
			down := cell(g, r, c) * cell(g, r+1, c+1) * cell(g, r+2, c+2) * cell(g, r+3, c+3)
			anti := cell(g, r, c+3) * cell(g, r+1, c+2) * cell(g, r+2, c+1) * cell(g, r+3, c)
			b.offer(max(down, anti))
		}
	}
	return b.v
}
