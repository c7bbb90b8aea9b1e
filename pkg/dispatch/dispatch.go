// Package dispatch applies a strategy independently across the rows or
// columns of a matrix, or across the columns of a table, preserving the
// container's shape and element types. Every vector passes the guard
// before any vector is written, so a limit violation surfaces before a
// single cell changes, regardless of worker count.
package dispatch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wdm0006/refill/pkg/fill"
	"github.com/wdm0006/refill/pkg/guard"
	"github.com/wdm0006/refill/pkg/refill"
)

// Options configure one dispatch call.
type Options struct {
	// Dim selects rows vs. columns as the unit of imputation for
	// matrices. Tables are always imputed per column.
	Dim refill.Dim
	// Guard is consulted for every vector before any fill; nil skips
	// validation.
	Guard *guard.Guard
	// Workers > 1 fans independent vectors out across goroutines.
	Workers int
	// Rounding applies when matrix-strategy results are written back
	// into integer table columns.
	Rounding refill.Rounding
}

// Matrix applies a per-sequence strategy in place along opt.Dim.
func Matrix(ctx context.Context, s fill.Strategy, m refill.Matrix, opt Options) error {
	vs := m.Vectors(opt.Dim)
	if err := opt.Guard.CheckAll(vs); err != nil {
		return err
	}
	return fillAll(ctx, s, vs, opt.Workers)
}

// MatrixCopy is the non-mutating form of Matrix.
func MatrixCopy(ctx context.Context, s fill.Strategy, m refill.Matrix, opt Options) (refill.Matrix, error) {
	c := m.CloneMatrix()
	if err := Matrix(ctx, s, c, opt); err != nil {
		return nil, err
	}
	return c, nil
}

// Table applies a per-sequence strategy in place to every numeric column.
// Non-numeric columns are left untouched; column names, order and kinds
// are preserved.
func Table(ctx context.Context, s fill.Strategy, t *refill.Table, opt Options) error {
	vs := t.NumericColumns()
	if err := opt.Guard.CheckAll(vs); err != nil {
		return err
	}
	return fillAll(ctx, s, vs, opt.Workers)
}

// TableCopy is the non-mutating form of Table.
func TableCopy(ctx context.Context, s fill.Strategy, t *refill.Table, opt Options) (*refill.Table, error) {
	c := t.Clone()
	if err := Table(ctx, s, c, opt); err != nil {
		return nil, err
	}
	return c, nil
}

// FillMatrix runs a whole-matrix strategy in place, guarding along
// opt.Dim first.
func FillMatrix(ctx context.Context, s fill.MatrixStrategy, m *refill.FloatMatrix, opt Options) error {
	if err := opt.Guard.CheckAll(m.Vectors(opt.Dim)); err != nil {
		return err
	}
	return s.FillMatrix(ctx, m)
}

// FillMatrixCopy is the non-mutating form of FillMatrix.
func FillMatrixCopy(ctx context.Context, s fill.MatrixStrategy, m *refill.FloatMatrix, opt Options) (*refill.FloatMatrix, error) {
	c := m.Clone()
	if err := FillMatrix(ctx, s, c, opt); err != nil {
		return nil, err
	}
	return c, nil
}

// TableMatrix runs a whole-matrix strategy over the numeric columns of a
// table. The numeric columns are snapshotted into a float matrix, the
// strategy fills it, and imputed cells are written back with opt.Rounding
// applied to integer columns. Cells the strategy could not resolve stay
// missing.
func TableMatrix(ctx context.Context, s fill.MatrixStrategy, t *refill.Table, opt Options) error {
	vs := t.NumericColumns()
	if err := opt.Guard.CheckAll(vs); err != nil {
		return err
	}
	if len(vs) == 0 || t.Rows() == 0 {
		return nil
	}

	m := refill.NewFloatMatrix(t.Rows(), len(vs))
	for j, col := range vs {
		for i := 0; i < col.Len(); i++ {
			if !col.Missing(i) {
				m.Set(i, j, col.At(i))
			}
		}
	}
	if err := s.FillMatrix(ctx, m); err != nil {
		return err
	}
	for j, col := range vs {
		for i := 0; i < col.Len(); i++ {
			if col.Missing(i) && !m.MissingAt(i, j) {
				if err := refill.WriteBack(col, i, m.At(i, j), opt.Rounding); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// TableMatrixCopy is the non-mutating form of TableMatrix.
func TableMatrixCopy(ctx context.Context, s fill.MatrixStrategy, t *refill.Table, opt Options) (*refill.Table, error) {
	c := t.Clone()
	if err := TableMatrix(ctx, s, c, opt); err != nil {
		return nil, err
	}
	return c, nil
}

// DropRows returns a new table keeping only the rows with at most
// maxMissing missing cells. This is the filter variant of the strategy
// contract: it composes at the table level instead of filling.
func DropRows(t *refill.Table, maxMissing int) *refill.Table {
	out := refill.NewTable(t.Schema())
	for r := 0; r < t.Rows(); r++ {
		if t.MissingCells(r) > maxMissing {
			continue
		}
		out.AppendEmptyRow()
		nr := out.Rows() - 1
		for i := 0; i < t.Cols(); i++ {
			copyCell(out, nr, t, r, i)
		}
	}
	return out
}

func copyCell(dst *refill.Table, dr int, src *refill.Table, sr, col int) {
	name := src.Schema().Columns[col].Name
	switch c := src.Column(col).(type) {
	case *refill.FloatSeries:
		if v, ok := c.Get(sr); ok {
			_ = dst.SetCell(dr, name, v)
		}
	case *refill.IntSeries:
		if v, ok := c.Get(sr); ok {
			_ = dst.SetCell(dr, name, v)
		}
	case *refill.StringSeries:
		if v, ok := c.Get(sr); ok {
			_ = dst.SetCell(dr, name, v)
		}
	case *refill.BoolSeries:
		if v, ok := c.Get(sr); ok {
			_ = dst.SetCell(dr, name, v)
		}
	}
}

func fillAll(ctx context.Context, s fill.Strategy, vs []refill.Vector, workers int) error {
	if workers <= 1 {
		for _, v := range vs {
			if err := s.Fill(ctx, v); err != nil {
				return err
			}
		}
		return nil
	}
	// each vector's mutation is isolated to its own slice, so the
	// fan-out shares nothing mutable
	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)
	for _, v := range vs {
		v := v
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			return s.Fill(ctx, v)
		})
	}
	return g.Wait()
}
