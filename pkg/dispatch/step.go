package dispatch

import (
	"context"
	"fmt"

	"github.com/wdm0006/refill/pkg/fill"
	"github.com/wdm0006/refill/pkg/refill"
)

// TableStep adapts a per-sequence strategy to refill.Step so it can run
// in a pipeline. An empty Columns list targets every numeric column.
type TableStep struct {
	Strategy fill.Strategy
	Columns  []string
	Options  Options
}

func (s *TableStep) Name() string { return s.Strategy.Name() }

func (s *TableStep) Apply(ctx context.Context, t *refill.Table) (*refill.Table, error) {
	if len(s.Columns) == 0 {
		if err := Table(ctx, s.Strategy, t, s.Options); err != nil {
			return nil, err
		}
		return t, nil
	}
	vs := make([]refill.Vector, 0, len(s.Columns))
	for _, name := range s.Columns {
		col, ok := t.ColumnByName(name)
		if !ok {
			return nil, fmt.Errorf("dispatch: unknown column %q", name)
		}
		v, ok := col.(refill.Vector)
		if !ok {
			return nil, fmt.Errorf("dispatch: column %q is not numeric", name)
		}
		vs = append(vs, v)
	}
	if err := s.Options.Guard.CheckAll(vs); err != nil {
		return nil, err
	}
	if err := fillAll(ctx, s.Strategy, vs, s.Options.Workers); err != nil {
		return nil, err
	}
	return t, nil
}

// MatrixTableStep runs a whole-matrix strategy over a table's numeric
// columns as a pipeline step.
type MatrixTableStep struct {
	Strategy fill.MatrixStrategy
	Options  Options
}

func (s *MatrixTableStep) Name() string { return s.Strategy.Name() }

func (s *MatrixTableStep) Apply(ctx context.Context, t *refill.Table) (*refill.Table, error) {
	if err := TableMatrix(ctx, s.Strategy, t, s.Options); err != nil {
		return nil, err
	}
	return t, nil
}

// DropStep removes rows with more than MaxMissing missing cells.
type DropStep struct {
	MaxMissing int
}

func (s *DropStep) Name() string { return "drop_rows" }

func (s *DropStep) Apply(ctx context.Context, t *refill.Table) (*refill.Table, error) {
	return DropRows(t, s.MaxMissing), nil
}
