package refill

import "context"

// Step is one imputation or filtering pass over a Table.
type Step interface {
	Name() string
	Apply(ctx context.Context, t *Table) (*Table, error)
}

// Pipeline composes a sequence of Steps.
type Pipeline struct {
	steps []Step
}

func NewPipeline() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(s Step) *Pipeline {
	p.steps = append(p.steps, s)
	return p
}

func (p *Pipeline) Run(ctx context.Context, t *Table) (*Table, error) {
	var err error
	cur := t
	for _, s := range p.steps {
		cur, err = s.Apply(ctx, cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
