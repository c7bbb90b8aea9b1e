package fill

import (
	"context"

	"github.com/wdm0006/refill/pkg/refill"
)

// Forward carries the last seen present value into each following missing
// slot. A leading run with nothing to carry stays missing. Applying the
// strategy twice is the same as applying it once.
type Forward struct{}

func (Forward) Name() string { return "forward" }

func (Forward) Fill(ctx context.Context, v refill.Vector) error {
	var last float64
	have := false
	for i := 0; i < v.Len(); i++ {
		if !v.Missing(i) {
			last = v.At(i)
			have = true
			continue
		}
		if have {
			if err := v.Set(i, last); err != nil {
				return err
			}
		}
	}
	return nil
}

func (Forward) Equal(other Strategy) bool {
	_, ok := other.(Forward)
	if !ok {
		_, ok = other.(*Forward)
	}
	return ok
}

func (s Forward) Hash() uint64 { return hashParams(s.Name()) }

// Backward mirrors Forward, carrying the next present value into each
// preceding missing slot. A trailing run stays missing.
type Backward struct{}

func (Backward) Name() string { return "backward" }

func (Backward) Fill(ctx context.Context, v refill.Vector) error {
	var next float64
	have := false
	for i := v.Len() - 1; i >= 0; i-- {
		if !v.Missing(i) {
			next = v.At(i)
			have = true
			continue
		}
		if have {
			if err := v.Set(i, next); err != nil {
				return err
			}
		}
	}
	return nil
}

func (Backward) Equal(other Strategy) bool {
	_, ok := other.(Backward)
	if !ok {
		_, ok = other.(*Backward)
	}
	return ok
}

func (s Backward) Hash() uint64 { return hashParams(s.Name()) }
