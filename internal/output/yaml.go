package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes a single v1 result document.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToAPIResult(r)); err != nil {
		return err
	}
	return enc.Close()
}
