// benchrefill times each strategy on a generated dataset and prints a
// small table of results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wdm0006/refill/dataio"
	"github.com/wdm0006/refill/pkg/dispatch"
	"github.com/wdm0006/refill/pkg/fill"
	"github.com/wdm0006/refill/pkg/refill"
)

func main() {
	rows := flag.Int("rows", 10000, "rows in the generated matrix")
	cols := flag.Int("cols", 20, "columns in the generated matrix")
	rate := flag.Float64("missing", 0.2, "fraction of cells blanked out")
	seed := flag.Int64("seed", 42, "generator seed")
	flag.Parse()

	opt := dataio.GenOptions{Rows: *rows, Cols: *cols, MissingRate: *rate, Correlation: 0.8, Seed: *seed}

	strategies := []fill.Strategy{
		&fill.Interp{},
		fill.Forward{},
		fill.Backward{},
		&fill.Constant{Value: 0},
		&fill.Reduce{Fn: fill.ReduceMean},
		&fill.Sample{Seed: *seed},
	}
	ctx := context.Background()

	fmt.Printf("%-14s %12s %10s\n", "strategy", "elapsed", "residual")
	for _, s := range strategies {
		m, _, _ := dataio.CorrelatedMatrix(opt)
		start := time.Now()
		err := dispatch.Matrix(ctx, s, m, dispatch.Options{Dim: refill.Columns})
		if err != nil {
			fmt.Fprintln(os.Stderr, s.Name(), "failed:", err)
			os.Exit(1)
		}
		fmt.Printf("%-14s %12s %10d\n", s.Name(), time.Since(start).Round(time.Microsecond), m.MissingCount())
	}

	for _, ms := range []fill.MatrixStrategy{&fill.KNN{K: 5}, &fill.LowRank{Rank: 3}} {
		m, _, _ := dataio.CorrelatedMatrix(opt)
		start := time.Now()
		if err := dispatch.FillMatrix(ctx, ms, m, dispatch.Options{Dim: refill.Columns}); err != nil {
			fmt.Fprintln(os.Stderr, ms.Name(), "failed:", err)
			os.Exit(1)
		}
		fmt.Printf("%-14s %12s %10d\n", ms.Name(), time.Since(start).Round(time.Microsecond), m.MissingCount())
	}
}
