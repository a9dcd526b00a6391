// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON/YAML schema for a four-product scan.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Rows       int       `json:"rows" yaml:"rows"`
	Cols       int       `json:"cols" yaml:"cols"`
	Horizontal int64     `json:"horizontal" yaml:"horizontal"`
	Vertical   int64     `json:"vertical" yaml:"vertical"`
	Diagonal   int64     `json:"diagonal" yaml:"diagonal"`
	Max        int64     `json:"max" yaml:"max"`
	Grid       [][]int32 `json:"grid,omitempty" yaml:"grid,omitempty,flow"`
}
