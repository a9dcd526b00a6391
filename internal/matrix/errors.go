// internal/matrix/errors.go
package matrix

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the input holds no numbers at all.
var ErrEmptyInput = errors.New("matrix is empty: no numbers in input")

// InvalidNumberError reports a token that is not a base-10 int32 literal.
// Row and Col are 1-based (line number, token number within the line).
type InvalidNumberError struct {
	Token string
	Row   int
	Col   int
	Err   error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("could not parse number %q at line %d, column %d: %v", e.Token, e.Row, e.Col, e.Err)
}

func (e *InvalidNumberError) Unwrap() error { return e.Err }

// MalformedMatrixError reports input whose numbers do not form a rectangle.
type MalformedMatrixError struct {
	Rows int
	Cols int
	Size int
}

func (e *MalformedMatrixError) Error() string {
	return fmt.Sprintf("matrix is malformed, expected rows and cols are %d x %d, but actual size was %d", e.Rows, e.Cols, e.Size)
}
