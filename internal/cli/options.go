// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"gridprod/internal/logging"
	"gridprod/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input: "" = embedded default grid, "-" = stdin, else a file path.
	Input string

	// Scan
	Parallel bool

	// Output
	Output      string
	Header      bool // true unless --no-header
	IncludeGrid bool

	// Diagnostics
	LogLevel  string
	LogFormat string
	Quiet     bool

	Version bool
}

// Register wires all flags onto fs and returns a pointer to the "no-header"
// bool that AfterParse folds into Options.Header.
func Register(fs *pflag.FlagSet, o *Options) *bool {
	fs.BoolVar(&o.Parallel, "parallel", false, "scan the three directions concurrently")

	fs.StringVarP(&o.Output, "output", "o", output.FormatText, "output: text | json | yaml")
	noHeader := fs.Bool("no-header", false, "suppress the \"Read matrix:\" line in text output")
	fs.BoolVar(&o.IncludeGrid, "grid", false, "include the parsed grid in json/yaml output")

	fs.StringVar(&o.LogLevel, "log-level", "warn", "diagnostics level: debug | info | warn | error")
	fs.StringVar(&o.LogFormat, "log-format", logging.FormatConsole, "diagnostics format: console | json")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")

	fs.BoolVarP(&o.Version, "version", "v", false, "print version and exit")
	return noHeader
}

// AfterParse finalizes header and the positional input, then validates.
func AfterParse(o *Options, noHeader *bool, posArgs []string) error {
	o.Header = !*noHeader
	switch len(posArgs) {
	case 0:
	case 1:
		o.Input = posArgs[0]
	default:
		return fmt.Errorf("expected at most one input, got %d", len(posArgs))
	}
	if o.Quiet {
		o.LogLevel = "error"
	}
	return Validate(o)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatYAML:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	switch o.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid --log-level %q", o.LogLevel)
	}
	switch o.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid --log-format %q", o.LogFormat)
	}
	if o.IncludeGrid && o.Output == output.FormatText {
		return errors.New("--grid only applies to json or yaml output")
	}
	return nil
}
