// internal/matrix/parse.go
package matrix

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a whitespace-separated integer matrix, one row per line.
//
// Lines are split strictly on '\n': a trailing newline adds an empty row,
// which makes an otherwise valid matrix malformed. Parsing stops at the
// first bad token.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")

	var buf []int32
	counts := make([]int, len(lines))
	for i, line := range lines {
		for j, tok := range strings.Fields(line) {
			n, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, &InvalidNumberError{Token: tok, Row: i + 1, Col: j + 1, Err: err}
			}
			buf = append(buf, int32(n))
			counts[i]++
		}
	}

	rows := len(lines)
	size := len(buf)
	if size == 0 {
		return nil, ErrEmptyInput
	}
	cols := size / rows

	malformed := rows*cols != size
	for _, c := range counts {
		if c != cols {
			malformed = true
			break
		}
	}
	if malformed {
		return nil, &MalformedMatrixError{Rows: rows, Cols: cols, Size: size}
	}
	return &Grid{rows: rows, cols: cols, data: buf}, nil
}

// ParseReader reads r to EOF and parses the result.
func ParseReader(r io.Reader) (*Grid, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}

// Load parses the matrix stored at path; "-" reads stdin.
func Load(path string) (*Grid, error) {
	if path == "-" {
		g, err := ParseReader(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return g, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	g, err := ParseReader(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
