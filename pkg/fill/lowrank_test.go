package fill

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/wdm0006/refill/pkg/refill"
)

// A rank-1 matrix (outer product) with holes should be recovered almost
// exactly by a rank-1 completion.
func TestLowRankRecoversRankOne(t *testing.T) {
	rowF := []float64{1, 2, 3, 4, 5, 6}
	colF := []float64{2, 4, 6, 8}
	m := refill.NewFloatMatrix(len(rowF), len(colF))
	for r := range rowF {
		for c := range colF {
			m.Set(r, c, rowF[r]*colF[c])
		}
	}
	holes := [][2]int{{0, 1}, {2, 3}, {4, 0}, {5, 2}}
	for _, h := range holes {
		m.SetMissing(h[0], h[1])
	}

	s := &LowRank{Rank: 1, MaxIter: 200, Tol: 1e-10}
	if err := s.FillMatrix(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	for _, h := range holes {
		want := rowF[h[0]] * colF[h[1]]
		got := m.At(h[0], h[1])
		if m.MissingAt(h[0], h[1]) {
			t.Fatalf("entry (%d,%d) left missing", h[0], h[1])
		}
		if math.Abs(got-want) > 0.05*math.Abs(want) {
			t.Fatalf("entry (%d,%d): got %g, want ~%g", h[0], h[1], got, want)
		}
	}
}

func TestLowRankPreservesObservedEntries(t *testing.T) {
	m := refill.NewFloatMatrix(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, float64(r*3+c))
		}
	}
	m.SetMissing(1, 1)
	want := m.Clone()

	if err := (&LowRank{Rank: 2}).FillMatrix(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == 1 && c == 1 {
				continue
			}
			if m.At(r, c) != want.At(r, c) {
				t.Fatalf("observed entry (%d,%d) changed", r, c)
			}
		}
	}
	if m.MissingAt(1, 1) {
		t.Fatal("missing entry was not imputed")
	}
}

func TestLowRankAllMissing(t *testing.T) {
	m := refill.NewFloatMatrix(2, 2)
	err := (&LowRank{}).FillMatrix(context.Background(), m)
	if !errors.Is(err, refill.ErrAllMissing) {
		t.Fatalf("got %v, want ErrAllMissing", err)
	}
}
