package fill_test

import (
	"context"
	"testing"

	"github.com/wdm0006/refill/dataio"
	"github.com/wdm0006/refill/pkg/dispatch"
	"github.com/wdm0006/refill/pkg/fill"
	"github.com/wdm0006/refill/pkg/refill"
)

// On strongly correlated columns, neighbor-based imputation should
// reconstruct blanked values with less squared error than filling every
// hole with the column mean. Checked over repeated seeded trials, not a
// single draw.
func TestKNNBeatsMeanFillOnCorrelatedData(t *testing.T) {
	ctx := context.Background()
	const trials = 8
	var knnErr, meanErr float64

	for seed := int64(0); seed < trials; seed++ {
		opt := dataio.GenOptions{Rows: 80, Cols: 6, MissingRate: 0.15, Correlation: 0.95, Seed: seed}

		knnM, blanked, truth := dataio.CorrelatedMatrix(opt)
		if err := dispatch.FillMatrix(ctx, &fill.KNN{K: 5}, knnM, dispatch.Options{}); err != nil {
			t.Fatal(err)
		}
		knnErr += squaredError(knnM, blanked, truth)

		meanM, _, _ := dataio.CorrelatedMatrix(opt)
		if err := dispatch.Matrix(ctx, &fill.Reduce{Fn: fill.ReduceMean}, meanM, dispatch.Options{Dim: refill.Columns}); err != nil {
			t.Fatal(err)
		}
		meanErr += squaredError(meanM, blanked, truth)
	}

	if knnErr >= meanErr {
		t.Fatalf("knn error %g not below mean-fill error %g across %d trials", knnErr, meanErr, trials)
	}
}

func squaredError(m *refill.FloatMatrix, blanked []bool, truth []float64) float64 {
	rows, cols := m.Dims()
	var sum float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if !blanked[i] || m.MissingAt(r, c) {
				continue
			}
			d := m.At(r, c) - truth[i]
			sum += d * d
		}
	}
	return sum
}
