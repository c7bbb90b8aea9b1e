package fill

import (
	"context"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/wdm0006/refill/pkg/refill"
)

// Constant replaces every missing slot with a single literal value. There
// is no rounding logic: a fractional value written into an integer
// sequence fails.
type Constant struct {
	Value float64
}

func (s *Constant) Name() string { return "constant" }

func (s *Constant) Fill(ctx context.Context, v refill.Vector) error {
	for i := 0; i < v.Len(); i++ {
		if v.Missing(i) {
			if err := v.Set(i, s.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Constant) Equal(other Strategy) bool {
	o, ok := other.(*Constant)
	return ok && s.Value == o.Value
}

func (s *Constant) Hash() uint64 { return hashParams(s.Name(), floatBits(s.Value)) }

// Reducer names for Reduce.Fn.
const (
	ReduceMean   = "mean"
	ReduceMedian = "median"
	ReduceMode   = "mode"
	ReduceMin    = "min"
	ReduceMax    = "max"
)

// Reduce replaces every missing slot with one value computed from the
// present slots. Rounding applies when the reduced value is written into
// an integer sequence.
type Reduce struct {
	Fn       string
	Rounding refill.Rounding
}

func (s *Reduce) Name() string { return "reduce_" + s.Fn }

func (s *Reduce) Fill(ctx context.Context, v refill.Vector) error {
	present := presentValues(v)
	if len(present) == 0 {
		return &refill.AllMissingError{}
	}
	val, err := reduce(s.Fn, present)
	if err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		if v.Missing(i) {
			if err := refill.WriteBack(v, i, val, s.Rounding); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Reduce) Equal(other Strategy) bool {
	o, ok := other.(*Reduce)
	return ok && s.Fn == o.Fn && s.Rounding == o.Rounding
}

func (s *Reduce) Hash() uint64 { return hashParams(s.Name(), uint64(s.Rounding)) }

func reduce(fn string, vals []float64) (float64, error) {
	switch fn {
	case ReduceMean:
		return stats.Mean(vals)
	case ReduceMedian:
		return stats.Median(vals)
	case ReduceMode:
		modes, err := stats.Mode(vals)
		if err != nil {
			return 0, err
		}
		if len(modes) > 0 {
			return modes[0], nil
		}
		// all values unique: fall back to the smallest
		return stats.Min(vals)
	case ReduceMin:
		return stats.Min(vals)
	case ReduceMax:
		return stats.Max(vals)
	default:
		return 0, fmt.Errorf("fill: unknown reducer %q", fn)
	}
}

func presentValues(v refill.Vector) []float64 {
	out := make([]float64, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if !v.Missing(i) {
			out = append(out, v.At(i))
		}
	}
	return out
}
