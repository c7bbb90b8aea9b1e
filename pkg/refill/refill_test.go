package refill

import (
	"errors"
	"strings"
	"testing"
)

func TestIntSeriesRejectsFractionalWrite(t *testing.T) {
	s := NewIntSeries("n", 2)
	if err := s.Set(0, 3.5); !errors.Is(err, ErrRoundingRequired) {
		t.Fatalf("got %v, want ErrRoundingRequired", err)
	}
	if !s.Missing(0) {
		t.Fatal("failed write must leave the slot missing")
	}
	if err := s.Set(0, 4.0); err != nil {
		t.Fatal(err)
	}
	if v, ok := s.Get(0); !ok || v != 4 {
		t.Fatalf("got %d (present=%v), want 4", v, ok)
	}
}

func TestRoundModes(t *testing.T) {
	cases := []struct {
		mode Rounding
		in   float64
		want float64
	}{
		{RoundNone, 2.5, 2.5},
		{RoundNearest, 2.5, 3},
		{RoundNearest, -2.5, -3},
		{RoundDown, 2.9, 2},
		{RoundUp, 2.1, 3},
		{RoundHalfEven, 2.5, 2},
		{RoundHalfEven, 3.5, 4},
	}
	for _, tc := range cases {
		if got := Round(tc.in, tc.mode); got != tc.want {
			t.Fatalf("Round(%g, %v) = %g, want %g", tc.in, tc.mode, got, tc.want)
		}
	}
}

func TestParseRounding(t *testing.T) {
	for s, want := range map[string]Rounding{
		"": RoundNone, "none": RoundNone, "nearest": RoundNearest,
		"down": RoundDown, "floor": RoundDown, "up": RoundUp,
		"ceil": RoundUp, "half-even": RoundHalfEven,
	} {
		got, ok := ParseRounding(s)
		if !ok || got != want {
			t.Fatalf("ParseRounding(%q) = %v,%v", s, got, ok)
		}
	}
	if _, ok := ParseRounding("banker"); ok {
		t.Fatal("unknown mode must not parse")
	}
}

func TestTableCloneIsDeep(t *testing.T) {
	schema := Schema{Columns: []ColumnSchema{{Name: "x", Type: KindFloat}}}
	tbl := NewTable(schema)
	tbl.AppendEmptyRow()
	tbl.AppendEmptyRow()
	_ = tbl.SetCell(0, "x", 1.0)

	c := tbl.Clone()
	_ = c.SetCell(1, "x", 9.0)

	orig, _ := tbl.ColumnByName("x")
	if !orig.Missing(1) {
		t.Fatal("mutating the clone leaked into the original")
	}
}

func TestMatrixViewsWriteThrough(t *testing.T) {
	m := NewFloatMatrix(2, 3)
	row := m.Row(1)
	if err := row.Set(2, 5.0); err != nil {
		t.Fatal(err)
	}
	if m.MissingAt(1, 2) || m.At(1, 2) != 5.0 {
		t.Fatal("row view write did not reach the matrix")
	}
	col := m.Col(2)
	if col.Missing(1) || col.At(1) != 5.0 {
		t.Fatal("column view reads a different cell than the row view wrote")
	}
}

func TestMatrixTranspose(t *testing.T) {
	m := NewFloatMatrix(2, 3)
	m.Set(0, 1, 7)
	tr := m.Transpose()
	r, c := tr.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", r, c)
	}
	if tr.MissingAt(1, 0) || tr.At(1, 0) != 7 {
		t.Fatal("transpose misplaced a value")
	}
	if !tr.MissingAt(0, 0) {
		t.Fatal("transpose dropped a missing marker")
	}
}

func TestIntMatrixViewRejectsFractional(t *testing.T) {
	m := NewIntMatrix(1, 2)
	v := m.Row(0)
	if err := v.Set(0, 1.25); !errors.Is(err, ErrRoundingRequired) {
		t.Fatalf("got %v, want ErrRoundingRequired", err)
	}
}

func TestLimitErrorMessageCarriesCounts(t *testing.T) {
	err := &LimitError{Name: "col x", Missing: 5, Size: 8, MaxCount: 2, MaxFraction: -1}
	msg := err.Error()
	for _, want := range []string{"col x", "5", "8", "2"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q lacks %q", msg, want)
		}
	}
}
