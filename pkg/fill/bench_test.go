package fill

import (
	"context"
	"testing"

	"github.com/wdm0006/refill/pkg/refill"
)

func makeLargeVector(n int) *refill.FloatSeries {
	s := refill.NewFloatSeries("x", n)
	for i := 0; i < n; i += 3 {
		s.SetValue(i, float64(i%17))
	}
	return s
}

func BenchmarkInterp(b *testing.B) {
	ctx := context.Background()
	s := &Interp{}
	for n := 0; n < b.N; n++ {
		if err := s.Fill(ctx, makeLargeVector(10000)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkForward(b *testing.B) {
	ctx := context.Background()
	for n := 0; n < b.N; n++ {
		if err := (Forward{}).Fill(ctx, makeLargeVector(10000)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReduceMean(b *testing.B) {
	ctx := context.Background()
	s := &Reduce{Fn: ReduceMean}
	for n := 0; n < b.N; n++ {
		if err := s.Fill(ctx, makeLargeVector(10000)); err != nil {
			b.Fatal(err)
		}
	}
}
