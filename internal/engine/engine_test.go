// internal/engine/engine_test.go
package engine

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"gridprod/internal/matrix"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func mustGrid(t *testing.T, s string) *matrix.Grid {
	t.Helper()
	g, err := matrix.Parse(s)
	require.NoError(t, err)
	return g
}

const largeGrid = ` 1  2  1  2 50  2  1  2  1  2  1  2
                    2  1  2 10  2  1  2  1  2  1  2  1
                    1  2 10  1  1 20  1  2  1  2  1  2
                    2 10  2  1  2 10  2  1  2  1  2  1
                    1  2 10  2  1 10  1  2  1  2  1  2
                    2  1  2 10 10 10 30  1  2  1  2  1
                    1  2  1  2 40  2  1  2  1  2  1  2
                    2  1  2  1  2  1  2  1  2  1  2  1
                    1  2  1  2  1  2  1  2  1  2  1  2`

func TestDirections(t *testing.T) {
	tests := []struct {
		name string
		grid string
		want Result
	}{
		{
			name: "horizontal",
			grid: `2 3 4 5 0
			       0 0 0 0 0
			       0 0 0 0 0
			       0 0 0 0 0`,
			want: Result{Horizontal: 120, Max: 120},
		},
		{
			name: "vertical",
			grid: `2 0 0 0 0
			       3 0 0 0 0
			       4 0 0 0 0
			       5 0 0 0 0
			       0 0 0 0 0`,
			want: Result{Vertical: 120, Max: 120},
		},
		{
			name: "main diagonal",
			grid: `2 0 0 0 0
			       0 3 0 0 0
			       0 0 4 0 0
			       0 0 0 5 0
			       0 0 0 0 0`,
			want: Result{Diagonal: 120, Max: 120},
		},
		{
			name: "anti diagonal",
			grid: `0 0 0 5 0
			       0 0 4 0 0
			       0 3 0 0 0
			       2 0 0 0 0
			       0 0 0 0 0`,
			want: Result{Diagonal: 120, Max: 120},
		},
		{
			name: "right corner",
			grid: `0 0 0 0 0
			       0 0 0 0 2
			       0 0 0 0 3
			       0 0 0 0 4
			       0 0 0 0 5`,
			want: Result{Vertical: 120, Max: 120},
		},
		{
			name: "bottom corner",
			grid: `0 0 0 0 0
			       0 0 0 0 0
			       0 0 0 0 0
			       0 0 0 0 0
			       0 2 3 4 5`,
			want: Result{Horizontal: 120, Max: 120},
		},
		{
			name: "large",
			grid: largeGrid,
			want: Result{Horizontal: 30000, Vertical: 20000, Diagonal: 50000, Max: 50000},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.grid)
			got := Result{
				Horizontal: Horizontal(g),
				Vertical:   Vertical(g),
				Diagonal:   Diagonal(g),
				Max:        MaxFourProduct(g),
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUndersizedGridsAreNeutral(t *testing.T) {
	for _, s := range []string{"7", "1 2 3", "1\n2\n3", "9 9 9\n9 9 9", "9 9 9\n9 9 9\n9 9 9"} {
		g := mustGrid(t, s)
		assert.Zero(t, Horizontal(g), "%q", s)
		assert.Zero(t, Vertical(g), "%q", s)
		assert.Zero(t, Diagonal(g), "%q", s)
		assert.Zero(t, MaxFourProduct(g), "%q", s)
	}

	empty, err := matrix.New(0, 0, nil)
	require.NoError(t, err)
	assert.Zero(t, MaxFourProduct(empty))
}

func TestNeutralZeroJoinsCombinedMax(t *testing.T) {
	// Only horizontal windows exist and all are negative.
	g := mustGrid(t, "-1 2 3 4")
	assert.Equal(t, int64(-24), Horizontal(g))
	assert.Zero(t, Vertical(g))
	assert.Zero(t, MaxFourProduct(g))
}

func TestNegativeMaximumWithinDirection(t *testing.T) {
	g := mustGrid(t, "-1 -2 3 4 -5\n-1 -2 3 4 -5")
	assert.Equal(t, int64(120), Horizontal(g))

	g = mustGrid(t, "-1 1 1 1")
	assert.Equal(t, int64(-1), Horizontal(g))
}

func TestProductsDoNotOverflow32Bits(t *testing.T) {
	g := mustGrid(t, "1000 1000 1000 1000")
	assert.Equal(t, int64(1_000_000_000_000), Horizontal(g))
}

func TestCombinedMaxIdentity(t *testing.T) {
	grids := []string{
		largeGrid,
		"1 -2 3 -4 5\n-6 7 -8 9 -10\n11 -12 13 -14 15\n-16 17 -18 19 -20",
		"3 1 4 1\n5 9 2 6\n5 3 5 8\n9 7 9 3\n2 3 8 4",
		"1 2 3",
	}
	for _, s := range grids {
		g := mustGrid(t, s)
		want := max(Horizontal(g), Vertical(g), Diagonal(g))
		assert.Equal(t, want, MaxFourProduct(g))
	}
}

func TestScanSerialMatchesParallel(t *testing.T) {
	g := mustGrid(t, largeGrid)
	ctx := context.Background()

	serial, err := New(Config{}).Scan(ctx, g)
	require.NoError(t, err)
	parallel, err := New(Config{Parallel: true}).Scan(ctx, g)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
	assert.Equal(t, Result{Horizontal: 30000, Vertical: 20000, Diagonal: 50000, Max: 50000}, serial)
}

func TestScanCancelled(t *testing.T) {
	g := mustGrid(t, largeGrid)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, par := range []bool{false, true} {
		_, err := New(Config{Parallel: par}).Scan(ctx, g)
		assert.ErrorIs(t, err, context.Canceled, "parallel=%v", par)
	}
}

func TestScanLogsResult(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	eng := New(Config{Logger: zap.New(core)})

	_, err := eng.Scan(context.Background(), mustGrid(t, largeGrid))
	require.NoError(t, err)

	entries := logs.FilterMessage("scan complete").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(50000), entries[0].ContextMap()["max"])
}
