package fill

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/wdm0006/refill/pkg/refill"
)

// LowRank imputes by iterative truncated-SVD completion (hard-impute):
// missing entries are seeded with column means, the matrix is repeatedly
// replaced by its rank-Rank approximation with observed entries restored
// after each pass, and the final approximation is read back only at
// originally-missing positions. Iteration stops after MaxIter passes or
// when the relative change of the imputed entries drops below Tol.
type LowRank struct {
	Rank    int
	MaxIter int
	Tol     float64
}

func (s *LowRank) Name() string { return "lowrank" }

func (s *LowRank) FillMatrix(ctx context.Context, m *refill.FloatMatrix) error {
	rows, cols := m.Dims()
	if m.MissingCount() == rows*cols {
		return &refill.AllMissingError{}
	}

	maxIter := s.MaxIter
	if maxIter <= 0 {
		maxIter = 100
	}
	tol := s.Tol
	if tol <= 0 {
		tol = 1e-6
	}
	rank := s.Rank
	if rank <= 0 || rank > min(rows, cols) {
		rank = min(rows, cols)
	}

	// seed missing entries with column means (grand mean for an
	// all-missing column)
	grandSum, grandN := 0.0, 0
	colMean := make([]float64, cols)
	for c := 0; c < cols; c++ {
		sum, n := 0.0, 0
		for r := 0; r < rows; r++ {
			if !m.MissingAt(r, c) {
				sum += m.At(r, c)
				n++
			}
		}
		if n > 0 {
			colMean[c] = sum / float64(n)
		} else {
			colMean[c] = math.NaN()
		}
		grandSum += sum
		grandN += n
	}
	grand := grandSum / float64(grandN)
	for c := 0; c < cols; c++ {
		if math.IsNaN(colMean[c]) {
			colMean[c] = grand
		}
	}

	x := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if m.MissingAt(r, c) {
				x.Set(r, c, colMean[c])
			} else {
				x.Set(r, c, m.At(r, c))
			}
		}
	}

	var svd mat.SVD
	for it := 0; it < maxIter; it++ {
		if !svd.Factorize(x, mat.SVDThin) {
			break
		}
		var u, v mat.Dense
		svd.UTo(&u)
		svd.VTo(&v)
		vals := svd.Values(nil)

		approx := truncatedProduct(&u, &v, vals, rank, rows, cols)

		var delta, norm float64
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if m.MissingAt(r, c) {
					d := approx.At(r, c) - x.At(r, c)
					delta += d * d
					norm += x.At(r, c) * x.At(r, c)
					x.Set(r, c, approx.At(r, c))
				}
				// observed entries stay at their original values
			}
		}
		if norm > 0 && math.Sqrt(delta/norm) < tol {
			break
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if m.MissingAt(r, c) {
				m.Set(r, c, x.At(r, c))
			}
		}
	}
	return nil
}

func (s *LowRank) Equal(other MatrixStrategy) bool {
	o, ok := other.(*LowRank)
	return ok && s.Rank == o.Rank && s.MaxIter == o.MaxIter && s.Tol == o.Tol
}

func (s *LowRank) Hash() uint64 {
	return hashParams(s.Name(), uint64(s.Rank), uint64(s.MaxIter), floatBits(s.Tol))
}

// truncatedProduct computes U_k diag(vals_k) V_k^T.
func truncatedProduct(u, v *mat.Dense, vals []float64, k, rows, cols int) *mat.Dense {
	if k > len(vals) {
		k = len(vals)
	}
	out := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var sum float64
			for i := 0; i < k; i++ {
				sum += u.At(r, i) * vals[i] * v.At(c, i)
			}
			out.Set(r, c, sum)
		}
	}
	return out
}
