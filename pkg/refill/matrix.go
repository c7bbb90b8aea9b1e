package refill

// Dim selects the unit of imputation when slicing a matrix.
type Dim int

const (
	// Rows treats each row as one sequence.
	Rows Dim = iota
	// Columns treats each column as one sequence.
	Columns
)

func (d Dim) String() string {
	if d == Rows {
		return "rows"
	}
	return "columns"
}

// Matrix is a rectangular container that can be sliced into mutable
// one-dimensional views along either dimension.
type Matrix interface {
	Dims() (rows, cols int)
	Kind() Kind
	Vectors(d Dim) []Vector
	CloneMatrix() Matrix
	MissingAt(r, c int) bool
}

// FloatMatrix is a dense rows×cols float64 matrix with a missing mask,
// stored row-major.
type FloatMatrix struct {
	rows, cols int
	data       []float64
	miss       []bool
}

func NewFloatMatrix(rows, cols int) *FloatMatrix {
	m := &FloatMatrix{rows: rows, cols: cols, data: make([]float64, rows*cols), miss: make([]bool, rows*cols)}
	for i := range m.miss {
		m.miss[i] = true
	}
	return m
}

func (m *FloatMatrix) Dims() (int, int)        { return m.rows, m.cols }
func (m *FloatMatrix) Kind() Kind              { return KindFloat }
func (m *FloatMatrix) MissingAt(r, c int) bool { return m.miss[r*m.cols+c] }
func (m *FloatMatrix) At(r, c int) float64     { return m.data[r*m.cols+c] }

func (m *FloatMatrix) Set(r, c int, v float64) {
	i := r*m.cols + c
	m.data[i] = v
	m.miss[i] = false
}

func (m *FloatMatrix) SetMissing(r, c int) { m.miss[r*m.cols+c] = true }

func (m *FloatMatrix) MissingCount() int { return countTrue(m.miss) }

func (m *FloatMatrix) Row(r int) Vector { return &floatView{m: m, fixed: r, dim: Rows} }
func (m *FloatMatrix) Col(c int) Vector { return &floatView{m: m, fixed: c, dim: Columns} }

func (m *FloatMatrix) Vectors(d Dim) []Vector {
	var out []Vector
	if d == Rows {
		for r := 0; r < m.rows; r++ {
			out = append(out, m.Row(r))
		}
		return out
	}
	for c := 0; c < m.cols; c++ {
		out = append(out, m.Col(c))
	}
	return out
}

func (m *FloatMatrix) Clone() *FloatMatrix {
	c := &FloatMatrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data)), miss: make([]bool, len(m.miss))}
	copy(c.data, m.data)
	copy(c.miss, m.miss)
	return c
}

func (m *FloatMatrix) CloneMatrix() Matrix { return m.Clone() }

// Transpose returns a new cols×rows matrix with axes swapped.
func (m *FloatMatrix) Transpose() *FloatMatrix {
	t := NewFloatMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if !m.MissingAt(r, c) {
				t.Set(c, r, m.At(r, c))
			}
		}
	}
	return t
}

// floatView adapts one row or column of a FloatMatrix to the Vector
// contract. Mutations write through to the backing matrix.
type floatView struct {
	m     *FloatMatrix
	fixed int
	dim   Dim
}

func (v *floatView) idx(i int) int {
	if v.dim == Rows {
		return v.fixed*v.m.cols + i
	}
	return i*v.m.cols + v.fixed
}

func (v *floatView) Len() int {
	if v.dim == Rows {
		return v.m.cols
	}
	return v.m.rows
}

func (v *floatView) Kind() Kind         { return KindFloat }
func (v *floatView) Missing(i int) bool { return v.m.miss[v.idx(i)] }
func (v *floatView) SetMissing(i int)   { v.m.miss[v.idx(i)] = true }
func (v *floatView) At(i int) float64   { return v.m.data[v.idx(i)] }

func (v *floatView) Set(i int, x float64) error {
	j := v.idx(i)
	v.m.data[j] = x
	v.m.miss[j] = false
	return nil
}

// IntMatrix is the int64 counterpart of FloatMatrix. Writes through its
// views reject fractional values, so integer matrices stay integer-typed.
type IntMatrix struct {
	rows, cols int
	data       []int64
	miss       []bool
}

func NewIntMatrix(rows, cols int) *IntMatrix {
	m := &IntMatrix{rows: rows, cols: cols, data: make([]int64, rows*cols), miss: make([]bool, rows*cols)}
	for i := range m.miss {
		m.miss[i] = true
	}
	return m
}

func (m *IntMatrix) Dims() (int, int)        { return m.rows, m.cols }
func (m *IntMatrix) Kind() Kind              { return KindInt }
func (m *IntMatrix) MissingAt(r, c int) bool { return m.miss[r*m.cols+c] }
func (m *IntMatrix) At(r, c int) int64       { return m.data[r*m.cols+c] }

func (m *IntMatrix) Set(r, c int, v int64) {
	i := r*m.cols + c
	m.data[i] = v
	m.miss[i] = false
}

func (m *IntMatrix) SetMissing(r, c int) { m.miss[r*m.cols+c] = true }

func (m *IntMatrix) MissingCount() int { return countTrue(m.miss) }

func (m *IntMatrix) Row(r int) Vector { return &intView{m: m, fixed: r, dim: Rows} }
func (m *IntMatrix) Col(c int) Vector { return &intView{m: m, fixed: c, dim: Columns} }

func (m *IntMatrix) Vectors(d Dim) []Vector {
	var out []Vector
	if d == Rows {
		for r := 0; r < m.rows; r++ {
			out = append(out, m.Row(r))
		}
		return out
	}
	for c := 0; c < m.cols; c++ {
		out = append(out, m.Col(c))
	}
	return out
}

func (m *IntMatrix) Clone() *IntMatrix {
	c := &IntMatrix{rows: m.rows, cols: m.cols, data: make([]int64, len(m.data)), miss: make([]bool, len(m.miss))}
	copy(c.data, m.data)
	copy(c.miss, m.miss)
	return c
}

func (m *IntMatrix) CloneMatrix() Matrix { return m.Clone() }

type intView struct {
	m     *IntMatrix
	fixed int
	dim   Dim
}

func (v *intView) idx(i int) int {
	if v.dim == Rows {
		return v.fixed*v.m.cols + i
	}
	return i*v.m.cols + v.fixed
}

func (v *intView) Len() int {
	if v.dim == Rows {
		return v.m.cols
	}
	return v.m.rows
}

func (v *intView) Kind() Kind         { return KindInt }
func (v *intView) Missing(i int) bool { return v.m.miss[v.idx(i)] }
func (v *intView) SetMissing(i int)   { v.m.miss[v.idx(i)] = true }
func (v *intView) At(i int) float64   { return float64(v.m.data[v.idx(i)]) }

func (v *intView) Set(i int, x float64) error {
	iv, ok := asInt64(x)
	if !ok {
		return &RoundError{Value: x}
	}
	j := v.idx(i)
	v.m.data[j] = iv
	v.m.miss[j] = false
	return nil
}
