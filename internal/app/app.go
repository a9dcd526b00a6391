// internal/app/app.go
package app

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gridprod/internal/cli"
	"gridprod/internal/engine"
	"gridprod/internal/logging"
	"gridprod/internal/matrix"
	"gridprod/internal/output"
	"gridprod/internal/version"
	"gridprod/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitInput     = 2
	ExitWrite     = 3
	ExitCancelled = 130
)

//go:embed matrix.txt
var defaultMatrix string

func newRootCmd(opts *cli.Options, run func(*cobra.Command) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridprod [path|-]",
		Short: "Maximum product of four adjacent grid cells",
		Long: `gridprod reads a whitespace-separated integer matrix (one row per line)
and reports the largest product of four adjacent cells in a row, a column
or either diagonal.

With no input argument the bundled grid is used; "-" reads stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	noHeader := cli.Register(cmd.Flags(), opts)
	cmd.PreRunE = func(_ *cobra.Command, args []string) error {
		return cli.AfterParse(opts, noHeader, args)
	}
	cmd.RunE = func(c *cobra.Command, _ []string) error { return run(c) }
	return cmd
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	var opts cli.Options
	code := ExitOK
	cmd := newRootCmd(&opts, func(c *cobra.Command) error {
		code = run(c.Context(), opts, outw, stderr)
		return nil
	})
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(argv)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return ExitInput
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitWrite
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, opts cli.Options, outw *bufio.Writer, stderr io.Writer) int {
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "gridprod version %s\n", version.Version)
		return ExitOK
	}

	logger, err := logging.New(stderr, opts.LogLevel, opts.LogFormat)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInput
	}
	defer func() { _ = logger.Sync() }()

	grid, err := loadGrid(opts.Input)
	if err != nil {
		logParseError(logger, opts.Input, err)
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInput
	}
	logger.Info("matrix loaded", zap.String("input", inputName(opts.Input)),
		zap.Int("rows", grid.Rows()), zap.Int("cols", grid.Cols()))

	eng := engine.New(engine.Config{Parallel: opts.Parallel, Logger: logger.Named("engine")})
	res, err := eng.Scan(ctx, grid)
	if err != nil {
		logger.Warn("scan interrupted", zap.Error(err))
		return ExitCancelled
	}

	rep := output.Report{Grid: grid, Result: res, Header: opts.Header, IncludeGrid: opts.IncludeGrid}
	if werr := writers.Write(opts.Output, outw, rep); writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return ExitWrite
	}
	return ExitOK
}

func loadGrid(input string) (*matrix.Grid, error) {
	if input == "" {
		return matrix.Parse(defaultMatrix)
	}
	return matrix.Load(input)
}

func inputName(input string) string {
	switch input {
	case "":
		return "<embedded>"
	case "-":
		return "<stdin>"
	}
	return input
}

func logParseError(logger *zap.Logger, input string, err error) {
	fields := []zap.Field{zap.String("input", inputName(input))}
	var inv *matrix.InvalidNumberError
	var mm *matrix.MalformedMatrixError
	switch {
	case errors.As(err, &inv):
		fields = append(fields, zap.String("kind", "invalid_number"), zap.String("token", inv.Token),
			zap.Int("line", inv.Row), zap.Int("column", inv.Col))
	case errors.As(err, &mm):
		fields = append(fields, zap.String("kind", "malformed_matrix"), zap.Int("rows", mm.Rows),
			zap.Int("cols", mm.Cols), zap.Int("size", mm.Size))
	case errors.Is(err, matrix.ErrEmptyInput):
		fields = append(fields, zap.String("kind", "empty_input"))
	}
	logger.Debug("matrix rejected", fields...)
}
