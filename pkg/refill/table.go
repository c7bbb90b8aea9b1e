package refill

import "fmt"

// Schema describes the logical shape of a dataset.
type Schema struct {
	Columns []ColumnSchema
}

type ColumnSchema struct {
	Name string
	Type Kind
}

// Table is a columnar container: an ordered set of named series, all the
// same length. Imputation never changes the column set, order, kinds or
// row count.
type Table struct {
	schema Schema
	cols   []Series
	index  map[string]int // name -> col index
	nrows  int
}

func NewTable(s Schema) *Table {
	t := &Table{schema: s, cols: make([]Series, len(s.Columns)), index: make(map[string]int)}
	for i, cs := range s.Columns {
		switch cs.Type {
		case KindBool:
			t.cols[i] = NewBoolSeries(cs.Name, 0)
		case KindInt:
			t.cols[i] = NewIntSeries(cs.Name, 0)
		case KindFloat:
			t.cols[i] = NewFloatSeries(cs.Name, 0)
		case KindString:
			t.cols[i] = NewStringSeries(cs.Name, 0)
		default:
			panic("refill: invalid column kind")
		}
		t.index[cs.Name] = i
	}
	return t
}

func (t *Table) Schema() Schema { return t.schema }
func (t *Table) Rows() int      { return t.nrows }
func (t *Table) Cols() int      { return len(t.cols) }

func (t *Table) Column(i int) Series { return t.cols[i] }

func (t *Table) ColumnByName(name string) (Series, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// MissingCells counts missing slots across all columns of row r.
func (t *Table) MissingCells(r int) int {
	n := 0
	for _, c := range t.cols {
		if c.Missing(r) {
			n++
		}
	}
	return n
}

// AppendEmptyRow appends a row with every cell missing.
func (t *Table) AppendEmptyRow() {
	for i, c := range t.cols {
		switch col := c.(type) {
		case *BoolSeries:
			col.data = append(col.data, false)
			col.miss = append(col.miss, true)
		case *IntSeries:
			col.data = append(col.data, 0)
			col.miss = append(col.miss, true)
		case *FloatSeries:
			col.data = append(col.data, 0)
			col.miss = append(col.miss, true)
		case *StringSeries:
			col.data = append(col.data, "")
			col.miss = append(col.miss, true)
		default:
			panic(fmt.Sprintf("refill: unknown series type in column %d", i))
		}
	}
	t.nrows++
}

// SetCell sets a single cell by column name; v == nil marks it missing.
func (t *Table) SetCell(row int, name string, v any) error {
	i, ok := t.index[name]
	if !ok {
		return fmt.Errorf("refill: unknown column %q", name)
	}
	c := t.cols[i]
	if v == nil {
		c.SetMissing(row)
		return nil
	}
	switch col := c.(type) {
	case *BoolSeries:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("refill: column %s expects bool", name)
		}
		col.SetValue(row, b)
	case *IntSeries:
		switch x := v.(type) {
		case int:
			col.SetValue(row, int64(x))
		case int64:
			col.SetValue(row, x)
		case float64:
			col.SetValue(row, int64(x))
		default:
			return fmt.Errorf("refill: column %s expects int/int64", name)
		}
	case *FloatSeries:
		switch x := v.(type) {
		case float32:
			col.SetValue(row, float64(x))
		case float64:
			col.SetValue(row, x)
		case int:
			col.SetValue(row, float64(x))
		case int64:
			col.SetValue(row, float64(x))
		default:
			return fmt.Errorf("refill: column %s expects float64", name)
		}
	case *StringSeries:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("refill: column %s expects string", name)
		}
		col.SetValue(row, s)
	default:
		return fmt.Errorf("refill: unknown series kind in column %s", name)
	}
	return nil
}

// Clone deep-copies the table, preserving schema, order and kinds.
func (t *Table) Clone() *Table {
	c := &Table{schema: t.schema, cols: make([]Series, len(t.cols)), index: make(map[string]int, len(t.index)), nrows: t.nrows}
	for i, col := range t.cols {
		c.cols[i] = col.Clone()
	}
	for k, v := range t.index {
		c.index[k] = v
	}
	return c
}

// NumericColumns returns the float and int columns in schema order, as
// Vectors. These are the columns imputation strategies operate on.
func (t *Table) NumericColumns() []Vector {
	var out []Vector
	for _, c := range t.cols {
		switch col := c.(type) {
		case *FloatSeries:
			out = append(out, col)
		case *IntSeries:
			out = append(out, col)
		}
	}
	return out
}
