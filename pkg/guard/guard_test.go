package guard

import (
	"errors"
	"math"
	"testing"

	"github.com/wdm0006/refill/pkg/refill"
)

func seq(vals ...float64) *refill.FloatSeries {
	s := refill.NewFloatSeries("x", len(vals))
	for i, v := range vals {
		if !math.IsNaN(v) {
			s.SetValue(i, v)
		}
	}
	return s
}

var miss = math.NaN()

func TestCountDefaultPredicate(t *testing.T) {
	var g *Guard
	if n := g.Count(seq(1, miss, 3, miss)); n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}

func TestNilGuardNeverRejects(t *testing.T) {
	var g *Guard
	n, err := g.Check(seq(miss, miss, miss))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}

func TestMaxCountLimit(t *testing.T) {
	max := 1
	g := &Guard{MaxCount: &max}
	if _, err := g.Check(seq(1, miss, 3)); err != nil {
		t.Fatalf("count at limit must pass: %v", err)
	}
	n, err := g.Check(seq(1, miss, miss))
	if !errors.Is(err, refill.ErrLimitExceeded) {
		t.Fatalf("got %v, want ErrLimitExceeded", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	var le *refill.LimitError
	if !errors.As(err, &le) || le.Missing != 2 || le.MaxCount != 1 {
		t.Fatalf("limit error lacks offending count/threshold: %+v", le)
	}
}

func TestMaxFractionLimit(t *testing.T) {
	frac := 0.5
	g := &Guard{MaxFraction: &frac}
	if _, err := g.Check(seq(1, miss, 3, miss)); err != nil {
		t.Fatalf("fraction at limit must pass: %v", err)
	}
	if _, err := g.Check(seq(1, miss, miss, miss)); !errors.Is(err, refill.ErrLimitExceeded) {
		t.Fatalf("got %v, want ErrLimitExceeded", err)
	}
}

func TestSentinelPredicate(t *testing.T) {
	g := &Guard{Pred: Sentinel(-999)}
	if n := g.Count(seq(1, -999, miss)); n != 2 {
		t.Fatalf("count = %d, want 2 (sentinel plus marked)", n)
	}
}

func TestCheckAllStopsOnFirstViolation(t *testing.T) {
	max := 0
	g := &Guard{MaxCount: &max}
	err := g.CheckAll([]refill.Vector{seq(1, 2), seq(1, miss), seq(miss, miss)})
	if !errors.Is(err, refill.ErrLimitExceeded) {
		t.Fatalf("got %v, want ErrLimitExceeded", err)
	}
}
