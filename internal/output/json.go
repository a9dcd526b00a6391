// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"gridprod/pkg/api"
)

// ToAPIResult converts a Report to the stable wire schema (v1).
func ToAPIResult(r Report) api.ResultV1 {
	v := api.ResultV1{
		Rows:       r.Grid.Rows(),
		Cols:       r.Grid.Cols(),
		Horizontal: r.Result.Horizontal,
		Vertical:   r.Result.Vertical,
		Diagonal:   r.Result.Diagonal,
		Max:        r.Result.Max,
	}
	if r.IncludeGrid {
		v.Grid = make([][]int32, r.Grid.Rows())
		for i := range v.Grid {
			v.Grid[i] = r.Grid.Row(i)
		}
	}
	return v
}

// WriteJSON writes a single v1 result object (pretty-indented).
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIResult(r))
}
