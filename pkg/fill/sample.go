package fill

import (
	"context"
	"math/rand"

	"github.com/wdm0006/refill/pkg/refill"
)

// Sample replaces missing slots with values drawn uniformly at random
// from the sequence's present values. The seed is a parameter so equal
// configurations draw identical fills.
type Sample struct {
	Seed int64
}

func (s *Sample) Name() string { return "sample" }

func (s *Sample) Fill(ctx context.Context, v refill.Vector) error {
	present := presentValues(v)
	if len(present) == 0 {
		return &refill.AllMissingError{}
	}
	rng := rand.New(rand.NewSource(s.Seed))
	for i := 0; i < v.Len(); i++ {
		if v.Missing(i) {
			if err := v.Set(i, present[rng.Intn(len(present))]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Sample) Equal(other Strategy) bool {
	o, ok := other.(*Sample)
	return ok && s.Seed == o.Seed
}

func (s *Sample) Hash() uint64 { return hashParams(s.Name(), uint64(s.Seed)) }
