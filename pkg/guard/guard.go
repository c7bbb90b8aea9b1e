// Package guard decides, before imputation runs, whether a sequence
// carries too much missingness to impute safely.
package guard

import (
	"github.com/wdm0006/refill/pkg/refill"
)

// Predicate reports whether slot i of v counts as missing. The default
// predicate defers to the vector's own missing marker; callers can inject
// their own to redefine missingness, e.g. to treat a sentinel value as
// missing.
type Predicate func(v refill.Vector, i int) bool

// DefaultPredicate counts a slot missing iff its container marks it so.
func DefaultPredicate(v refill.Vector, i int) bool { return v.Missing(i) }

// Sentinel builds a predicate that also treats one numeric value as
// missing.
func Sentinel(val float64) Predicate {
	return func(v refill.Vector, i int) bool {
		return v.Missing(i) || v.At(i) == val
	}
}

// Guard wraps a missingness predicate with an optional limit. A nil Guard
// counts with the default predicate and never rejects. Guards are built
// per top-level imputation call and hold no state across calls.
type Guard struct {
	Pred        Predicate
	MaxCount    *int
	MaxFraction *float64
}

func (g *Guard) pred() Predicate {
	if g == nil || g.Pred == nil {
		return DefaultPredicate
	}
	return g.Pred
}

// Count returns the number of missing slots in v under the predicate.
func (g *Guard) Count(v refill.Vector) int {
	pred := g.pred()
	n := 0
	for i := 0; i < v.Len(); i++ {
		if pred(v, i) {
			n++
		}
	}
	return n
}

// Check counts missingness and compares it to the configured limit.
// The count is returned either way; on violation the error identifies the
// broken limit and matches refill.ErrLimitExceeded.
func (g *Guard) Check(v refill.Vector) (int, error) {
	n := g.Count(v)
	if g == nil {
		return n, nil
	}
	if g.MaxCount != nil && n > *g.MaxCount {
		return n, &refill.LimitError{Missing: n, Size: v.Len(), MaxCount: *g.MaxCount, MaxFraction: -1}
	}
	if g.MaxFraction != nil && v.Len() > 0 && float64(n)/float64(v.Len()) > *g.MaxFraction {
		return n, &refill.LimitError{Missing: n, Size: v.Len(), MaxCount: -1, MaxFraction: *g.MaxFraction}
	}
	return n, nil
}

// CheckAll validates every vector before any of them is written to, so a
// violation surfaces deterministically regardless of later execution
// order.
func (g *Guard) CheckAll(vs []refill.Vector) error {
	for _, v := range vs {
		if _, err := g.Check(v); err != nil {
			return err
		}
	}
	return nil
}
