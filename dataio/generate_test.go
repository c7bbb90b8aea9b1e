package dataio

import "testing"

func TestCorrelatedMatrixShapeAndMask(t *testing.T) {
	opt := GenOptions{Rows: 50, Cols: 4, MissingRate: 0.25, Correlation: 0.8, Seed: 7}
	m, blanked, truth := CorrelatedMatrix(opt)
	r, c := m.Dims()
	if r != 50 || c != 4 {
		t.Fatalf("dims = %dx%d", r, c)
	}
	if len(blanked) != r*c || len(truth) != r*c {
		t.Fatal("mask/truth sizes do not match the matrix")
	}
	nBlank := 0
	for i, b := range blanked {
		if b {
			nBlank++
			if !m.MissingAt(i/c, i%c) {
				t.Fatal("blanked cell is not missing in the matrix")
			}
		} else if m.MissingAt(i/c, i%c) {
			t.Fatal("unblanked cell is missing")
		}
	}
	if nBlank == 0 || nBlank == r*c {
		t.Fatalf("implausible blank count %d", nBlank)
	}
}

func TestCorrelatedMatrixReproducible(t *testing.T) {
	opt := GenOptions{Rows: 20, Cols: 3, MissingRate: 0.2, Correlation: 0.5, Seed: 11}
	a, _, at := CorrelatedMatrix(opt)
	b, _, bt := CorrelatedMatrix(opt)
	for i := range at {
		if at[i] != bt[i] {
			t.Fatal("same seed produced different data")
		}
	}
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if a.MissingAt(i, j) != b.MissingAt(i, j) {
				t.Fatal("same seed produced different masks")
			}
		}
	}
}

func TestCorrelatedTable(t *testing.T) {
	tbl := CorrelatedTable(GenOptions{Rows: 10, Cols: 3, MissingRate: 0.3, Correlation: 0.5, Seed: 3})
	if tbl.Rows() != 10 || tbl.Cols() != 3 {
		t.Fatalf("shape = %dx%d", tbl.Rows(), tbl.Cols())
	}
	if _, ok := tbl.ColumnByName("x2"); !ok {
		t.Fatal("expected columns named x0..x2")
	}
}
