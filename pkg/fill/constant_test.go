package fill

import (
	"context"
	"errors"
	"testing"

	"github.com/wdm0006/refill/pkg/refill"
)

func TestConstantFillsEveryMissing(t *testing.T) {
	v := floatVec(miss, 2.0, miss)
	if err := (&Constant{Value: 7.5}).Fill(context.Background(), v); err != nil {
		t.Fatal(err)
	}
	wantVec(t, v, 7.5, 2.0, 7.5)
}

func TestConstantFractionalIntoIntFails(t *testing.T) {
	v := refill.NewIntSeries("n", 2)
	v.SetValue(0, 1)
	err := (&Constant{Value: 2.5}).Fill(context.Background(), v)
	if !errors.Is(err, refill.ErrRoundingRequired) {
		t.Fatalf("got %v, want ErrRoundingRequired", err)
	}
}

func TestReduceMean(t *testing.T) {
	v := floatVec(1.0, miss, 3.0, miss)
	if err := (&Reduce{Fn: ReduceMean}).Fill(context.Background(), v); err != nil {
		t.Fatal(err)
	}
	wantVec(t, v, 1.0, 2.0, 3.0, 2.0)
}

func TestReduceMedian(t *testing.T) {
	v := floatVec(1.0, 9.0, 2.0, miss)
	if err := (&Reduce{Fn: ReduceMedian}).Fill(context.Background(), v); err != nil {
		t.Fatal(err)
	}
	wantVec(t, v, 1.0, 9.0, 2.0, 2.0)
}

func TestReduceMode(t *testing.T) {
	v := floatVec(4.0, 4.0, 1.0, miss)
	if err := (&Reduce{Fn: ReduceMode}).Fill(context.Background(), v); err != nil {
		t.Fatal(err)
	}
	wantVec(t, v, 4.0, 4.0, 1.0, 4.0)
}

func TestReduceIntWithRounding(t *testing.T) {
	v := refill.NewIntSeries("n", 3)
	v.SetValue(0, 1)
	v.SetValue(1, 2)
	if err := (&Reduce{Fn: ReduceMean, Rounding: refill.RoundNearest}).Fill(context.Background(), v); err != nil {
		t.Fatal(err)
	}
	got, ok := v.Get(2)
	if !ok || got != 2 { // mean 1.5 rounds half away from zero
		t.Fatalf("got %d (present=%v), want 2", got, ok)
	}
}

func TestReduceAllMissing(t *testing.T) {
	v := refill.NewFloatSeries("x", 3)
	err := (&Reduce{Fn: ReduceMean}).Fill(context.Background(), v)
	if !errors.Is(err, refill.ErrAllMissing) {
		t.Fatalf("got %v, want ErrAllMissing", err)
	}
}

func TestReduceUnknownFn(t *testing.T) {
	v := floatVec(1.0, miss)
	if err := (&Reduce{Fn: "stddev"}).Fill(context.Background(), v); err == nil {
		t.Fatal("expected error for unknown reducer")
	}
}
