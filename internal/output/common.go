package output

import (
	"gridprod/internal/engine"
	"gridprod/internal/matrix"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Text labels. Keep these as the single source of truth; all writers should use them.
const (
	TextHeader  = "Read matrix:"
	ResultLabel = "Max four-product is:"
)

// Report is everything a writer may render for one run.
type Report struct {
	Grid        *matrix.Grid
	Result      engine.Result
	Header      bool // text: print TextHeader before the grid
	IncludeGrid bool // json/yaml: embed the grid cells
}
