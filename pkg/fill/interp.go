package fill

import (
	"context"

	"github.com/wdm0006/refill/pkg/refill"
)

// Interp fills interior gaps with evenly spaced values between the
// bounding present slots. A run longer than Limit (when Limit > 0) is
// left missing, as are leading and trailing runs with no present bound on
// one side. Rounding controls write-back into integer sequences; with
// RoundNone a fractional fill into an integer sequence fails.
type Interp struct {
	Limit    int
	Rounding refill.Rounding
}

func (s *Interp) Name() string { return "interpolate" }

func (s *Interp) Fill(ctx context.Context, v refill.Vector) error {
	n := v.Len()
	first := -1
	for i := 0; i < n; i++ {
		if !v.Missing(i) {
			first = i
			break
		}
	}
	if first < 0 {
		return &refill.AllMissingError{}
	}

	for i := first + 1; i < n; {
		if !v.Missing(i) {
			i++
			continue
		}
		prev := i - 1 // present by construction
		next := -1
		for j := i + 1; j < n; j++ {
			if !v.Missing(j) {
				next = j
				break
			}
		}
		if next < 0 {
			// trailing run with no right bound stays missing
			break
		}
		gap := next - prev - 1
		if s.Limit > 0 && gap > s.Limit {
			i = next + 1
			continue
		}
		base := v.At(prev)
		inc := (v.At(next) - base) / float64(gap+1)
		for k := 1; k <= gap; k++ {
			if err := refill.WriteBack(v, prev+k, base+float64(k)*inc, s.Rounding); err != nil {
				return err
			}
		}
		i = next + 1
	}
	return nil
}

func (s *Interp) Equal(other Strategy) bool {
	o, ok := other.(*Interp)
	return ok && s.Limit == o.Limit && s.Rounding == o.Rounding
}

func (s *Interp) Hash() uint64 {
	return hashParams(s.Name(), uint64(s.Limit), uint64(s.Rounding))
}
