// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"gridprod/internal/matrix"
)

// WriteText prints the rendered grid followed by the result line.
func WriteText(w io.Writer, r Report, render func(*matrix.Grid) string) error {
	if r.Header {
		if _, err := fmt.Fprintln(w, TextHeader); err != nil {
			return err
		}
	}
	if s := render(r.Grid); s != "" {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s %d\n", ResultLabel, r.Result.Max)
	return err
}
