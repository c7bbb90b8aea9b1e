package fill

import (
	"context"
	"math"
	"testing"

	"github.com/wdm0006/refill/pkg/refill"
)

func TestKNNFillsFromNearestRow(t *testing.T) {
	// row 2 matches row 0 far more closely than row 1
	m := refill.NewFloatMatrix(3, 3)
	m.Set(0, 0, 1)
	m.Set(0, 1, 1)
	m.Set(0, 2, 10)
	m.Set(1, 0, 100)
	m.Set(1, 1, 100)
	m.Set(1, 2, 50)
	m.Set(2, 0, 1.1)
	m.Set(2, 1, 0.9)
	m.SetMissing(2, 2)

	if err := (&KNN{K: 1}).FillMatrix(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	if m.MissingAt(2, 2) {
		t.Fatal("entry left missing")
	}
	if got := m.At(2, 2); got != 10 {
		t.Fatalf("got %g, want 10 (row 0's value)", got)
	}
}

func TestKNNTieBreaksByRowOrder(t *testing.T) {
	// rows 0 and 1 are equidistant from row 2; the lower index donates
	m := refill.NewFloatMatrix(3, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 5)
	m.Set(1, 0, 3)
	m.Set(1, 1, 9)
	m.Set(2, 0, 2)
	m.SetMissing(2, 1)

	if err := (&KNN{K: 1}).FillMatrix(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	if got := m.At(2, 1); got != 5 {
		t.Fatalf("got %g, want 5 (lower-index donor)", got)
	}
}

func TestKNNWeightsByInverseDistance(t *testing.T) {
	m := refill.NewFloatMatrix(3, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 10)
	m.Set(1, 0, 4)
	m.Set(1, 1, 40)
	m.Set(2, 0, 2)
	m.SetMissing(2, 1)

	if err := (&KNN{K: 2}).FillMatrix(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	// distances: to row 0 = 1, to row 1 = 4; weights 1 and 0.25
	want := (1.0*10 + 0.25*40) / 1.25
	if got := m.At(2, 1); math.Abs(got-want) > 1e-6 {
		t.Fatalf("got %g, want %g", got, want)
	}
}

func TestKNNNoOverlapLeavesRowUnresolved(t *testing.T) {
	m := refill.NewFloatMatrix(2, 2)
	m.Set(0, 0, 1)
	m.SetMissing(0, 1)
	m.SetMissing(1, 0)
	m.Set(1, 1, 2)

	if err := (&KNN{K: 1}).FillMatrix(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	if !m.MissingAt(0, 1) || !m.MissingAt(1, 0) {
		t.Fatal("entries without any jointly-present dimension must stay missing")
	}
}

func TestKNNUsesSnapshotNotOutput(t *testing.T) {
	// row 1's fill must come from original data, not from row 0's
	// freshly imputed value
	m := refill.NewFloatMatrix(3, 2)
	m.Set(0, 0, 1)
	m.SetMissing(0, 1)
	m.Set(1, 0, 1)
	m.SetMissing(1, 1)
	m.Set(2, 0, 1)
	m.Set(2, 1, 7)

	if err := (&KNN{K: 2}).FillMatrix(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	// both rows have exactly one donor with column 1 present: row 2
	if m.At(0, 1) != 7 || m.At(1, 1) != 7 {
		t.Fatalf("got %g and %g, want 7 and 7", m.At(0, 1), m.At(1, 1))
	}
}
