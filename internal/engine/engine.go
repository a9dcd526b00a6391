// internal/engine/engine.go
package engine

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Span is the number of collinear cells in a four-product.
const Span = 4

// Grid is the read-only view the scans need. *matrix.Grid satisfies it.
type Grid interface {
	Rows() int
	Cols() int
	At(r, c int) int32
}

// Config holds scan parameters.
type Config struct {
	Parallel bool        // run the three directions concurrently
	Logger   *zap.Logger // nil = no logging
}

// Result holds the per-direction maxima and their combination.
type Result struct {
	Horizontal int64
	Vertical   int64
	Diagonal   int64
	Max        int64
}

// Engine runs four-product scans with the given config.
type Engine struct {
	cfg Config
	log *zap.Logger
}

// New creates a new Engine.
func New(c Config) *Engine {
	log := c.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cfg: c, log: log}
}

// Scan computes all three directional maxima and the combined maximum.
// The only error it returns is ctx's.
func (e *Engine) Scan(ctx context.Context, g Grid) (Result, error) {
	var res Result
	dirs := []struct {
		name string
		fn   func(Grid) int64
		dst  *int64
	}{
		{"horizontal", Horizontal, &res.Horizontal},
		{"vertical", Vertical, &res.Vertical},
		{"diagonal", Diagonal, &res.Diagonal},
	}

	if e.cfg.Parallel {
		eg, gctx := errgroup.WithContext(ctx)
		for _, d := range dirs {
			d := d
			eg.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				*d.dst = d.fn(g)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return Result{}, err
		}
	} else {
		for _, d := range dirs {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			*d.dst = d.fn(g)
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res.Max = max(res.Horizontal, res.Vertical, res.Diagonal)
	e.log.Debug("scan complete",
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
		zap.Bool("parallel", e.cfg.Parallel),
		zap.Int64("horizontal", res.Horizontal),
		zap.Int64("vertical", res.Vertical),
		zap.Int64("diagonal", res.Diagonal),
		zap.Int64("max", res.Max),
	)
	return res, nil
}

// MaxFourProduct returns the largest four-product in any direction, or 0
// when the grid is too small for any window.
func MaxFourProduct(g Grid) int64 {
	return max(Horizontal(g), Vertical(g), Diagonal(g))
}
