package fill

import (
	"fmt"

	"github.com/wdm0006/refill/pkg/refill"
)

// Params carries the union of strategy configuration options. Each
// constructor reads only the fields it needs.
type Params struct {
	Limit    int             // interpolate: longest fillable run; 0 = unlimited
	Rounding refill.Rounding // write-back into integer sequences
	Value    float64         // constant fill value
	Fn       string          // reducer name for "reduce"
	Seed     int64           // sampling seed
	K        int             // neighbor count
	Rank     int             // low-rank target rank
	MaxIter  int             // low-rank iteration cap
	Tol      float64         // low-rank convergence threshold
}

// New maps a strategy name to a per-sequence Strategy. The mapping is an
// explicit switch, not a process-wide registry.
func New(name string, p Params) (Strategy, error) {
	switch name {
	case "interpolate":
		return &Interp{Limit: p.Limit, Rounding: p.Rounding}, nil
	case "forward":
		return Forward{}, nil
	case "backward":
		return Backward{}, nil
	case "constant":
		return &Constant{Value: p.Value}, nil
	case ReduceMean, ReduceMedian, ReduceMode, ReduceMin, ReduceMax:
		return &Reduce{Fn: name, Rounding: p.Rounding}, nil
	case "sample":
		return &Sample{Seed: p.Seed}, nil
	default:
		return nil, fmt.Errorf("fill: unknown strategy %q", name)
	}
}

// NewMatrix maps a strategy name to a whole-matrix MatrixStrategy.
func NewMatrix(name string, p Params) (MatrixStrategy, error) {
	switch name {
	case "knn":
		return &KNN{K: p.K}, nil
	case "lowrank":
		return &LowRank{Rank: p.Rank, MaxIter: p.MaxIter, Tol: p.Tol}, nil
	default:
		return nil, fmt.Errorf("fill: unknown matrix strategy %q", name)
	}
}

// IsMatrixStrategy reports whether name resolves via NewMatrix.
func IsMatrixStrategy(name string) bool {
	return name == "knn" || name == "lowrank"
}
