// Package dataio builds synthetic datasets with controlled missingness,
// used by benchmarks and statistical tests.
package dataio

import (
	"math/rand"
	"strconv"

	"github.com/wdm0006/refill/pkg/refill"
)

// GenOptions control the synthetic dataset.
type GenOptions struct {
	Rows        int
	Cols        int
	MissingRate float64 // fraction of cells to blank out
	Correlation float64 // 0..1, how strongly columns follow a shared latent factor
	Seed        int64
}

// CorrelatedMatrix generates a float matrix whose columns share a latent
// per-row factor, then injects missingness uniformly at random. The
// second return value marks which cells were blanked, with their original
// values retained in the third.
func CorrelatedMatrix(opt GenOptions) (*refill.FloatMatrix, []bool, []float64) {
	rng := rand.New(rand.NewSource(opt.Seed))
	m := refill.NewFloatMatrix(opt.Rows, opt.Cols)
	truth := make([]float64, opt.Rows*opt.Cols)
	for r := 0; r < opt.Rows; r++ {
		latent := rng.NormFloat64() * 10
		for c := 0; c < opt.Cols; c++ {
			noise := rng.NormFloat64() * (1 - opt.Correlation) * 10
			v := latent*opt.Correlation + noise + float64(c)
			m.Set(r, c, v)
			truth[r*opt.Cols+c] = v
		}
	}
	blanked := make([]bool, opt.Rows*opt.Cols)
	for r := 0; r < opt.Rows; r++ {
		for c := 0; c < opt.Cols; c++ {
			if rng.Float64() < opt.MissingRate {
				m.SetMissing(r, c)
				blanked[r*opt.Cols+c] = true
			}
		}
	}
	return m, blanked, truth
}

// CorrelatedTable generates a table of float columns named x0..xN from
// the same construction as CorrelatedMatrix.
func CorrelatedTable(opt GenOptions) *refill.Table {
	m, _, _ := CorrelatedMatrix(opt)
	cols := make([]refill.ColumnSchema, opt.Cols)
	for c := range cols {
		cols[c] = refill.ColumnSchema{Name: "x" + strconv.Itoa(c), Type: refill.KindFloat}
	}
	t := refill.NewTable(refill.Schema{Columns: cols})
	for r := 0; r < opt.Rows; r++ {
		t.AppendEmptyRow()
		for c := 0; c < opt.Cols; c++ {
			if !m.MissingAt(r, c) {
				_ = t.SetCell(r, cols[c].Name, m.At(r, c))
			}
		}
	}
	return t
}
