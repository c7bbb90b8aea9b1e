package refill

// Kind enumerates supported logical element types.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Series is a typed, fixed-length sequence where each slot is either a
// value or missing. Length never changes during imputation; only slot
// contents do.
type Series interface {
	Name() string
	Kind() Kind
	Len() int
	Missing(i int) bool
	SetMissing(i int)
	MissingCount() int
	Clone() Series
}

// Vector is the strategy-facing view of a numeric sequence. Float and int
// series are Vectors, as are matrix row/column views. At reports the slot
// value as float64; Set writes one back, failing when the value cannot be
// represented in the underlying element type.
type Vector interface {
	Len() int
	Kind() Kind
	Missing(i int) bool
	SetMissing(i int)
	At(i int) float64
	Set(i int, v float64) error
}

type FloatSeries struct {
	name string
	data []float64
	miss []bool
}

func NewFloatSeries(name string, n int) *FloatSeries {
	s := &FloatSeries{name: name, data: make([]float64, n), miss: make([]bool, n)}
	for i := range s.miss {
		s.miss[i] = true
	}
	return s
}

// FloatSeriesOf builds a series from values. Slots flagged in miss stay
// missing; a nil miss marks every slot present.
func FloatSeriesOf(name string, vals []float64, miss []bool) *FloatSeries {
	s := NewFloatSeries(name, len(vals))
	for i, v := range vals {
		if miss != nil && miss[i] {
			continue
		}
		s.SetValue(i, v)
	}
	return s
}

func (s *FloatSeries) Name() string          { return s.name }
func (s *FloatSeries) Kind() Kind            { return KindFloat }
func (s *FloatSeries) Len() int              { return len(s.data) }
func (s *FloatSeries) Missing(i int) bool    { return s.miss[i] }
func (s *FloatSeries) SetMissing(i int)      { s.miss[i] = true }
func (s *FloatSeries) At(i int) float64      { return s.data[i] }
func (s *FloatSeries) SetValue(i int, v float64) {
	s.data[i] = v
	s.miss[i] = false
}

func (s *FloatSeries) Set(i int, v float64) error {
	s.SetValue(i, v)
	return nil
}

func (s *FloatSeries) Get(i int) (float64, bool) { return s.data[i], !s.miss[i] }

func (s *FloatSeries) MissingCount() int { return countTrue(s.miss) }

func (s *FloatSeries) Clone() Series {
	c := &FloatSeries{name: s.name, data: make([]float64, len(s.data)), miss: make([]bool, len(s.miss))}
	copy(c.data, s.data)
	copy(c.miss, s.miss)
	return c
}

type IntSeries struct {
	name string
	data []int64
	miss []bool
}

func NewIntSeries(name string, n int) *IntSeries {
	s := &IntSeries{name: name, data: make([]int64, n), miss: make([]bool, n)}
	for i := range s.miss {
		s.miss[i] = true
	}
	return s
}

func (s *IntSeries) Name() string       { return s.name }
func (s *IntSeries) Kind() Kind         { return KindInt }
func (s *IntSeries) Len() int           { return len(s.data) }
func (s *IntSeries) Missing(i int) bool { return s.miss[i] }
func (s *IntSeries) SetMissing(i int)   { s.miss[i] = true }
func (s *IntSeries) At(i int) float64   { return float64(s.data[i]) }

func (s *IntSeries) SetValue(i int, v int64) {
	s.data[i] = v
	s.miss[i] = false
}

// Set writes a float value into the integer slot. Fractional values are
// rejected; round with a Rounding mode before writing.
func (s *IntSeries) Set(i int, v float64) error {
	iv, ok := asInt64(v)
	if !ok {
		return &RoundError{Value: v, Name: s.name}
	}
	s.SetValue(i, iv)
	return nil
}

func (s *IntSeries) Get(i int) (int64, bool) { return s.data[i], !s.miss[i] }

func (s *IntSeries) MissingCount() int { return countTrue(s.miss) }

func (s *IntSeries) Clone() Series {
	c := &IntSeries{name: s.name, data: make([]int64, len(s.data)), miss: make([]bool, len(s.miss))}
	copy(c.data, s.data)
	copy(c.miss, s.miss)
	return c
}

type StringSeries struct {
	name string
	data []string
	miss []bool
}

func NewStringSeries(name string, n int) *StringSeries {
	s := &StringSeries{name: name, data: make([]string, n), miss: make([]bool, n)}
	for i := range s.miss {
		s.miss[i] = true
	}
	return s
}

func (s *StringSeries) Name() string            { return s.name }
func (s *StringSeries) Kind() Kind              { return KindString }
func (s *StringSeries) Len() int                { return len(s.data) }
func (s *StringSeries) Missing(i int) bool      { return s.miss[i] }
func (s *StringSeries) SetMissing(i int)        { s.miss[i] = true }
func (s *StringSeries) SetValue(i int, v string) {
	s.data[i] = v
	s.miss[i] = false
}
func (s *StringSeries) Get(i int) (string, bool) { return s.data[i], !s.miss[i] }
func (s *StringSeries) MissingCount() int        { return countTrue(s.miss) }

func (s *StringSeries) Clone() Series {
	c := &StringSeries{name: s.name, data: make([]string, len(s.data)), miss: make([]bool, len(s.miss))}
	copy(c.data, s.data)
	copy(c.miss, s.miss)
	return c
}

type BoolSeries struct {
	name string
	data []bool
	miss []bool
}

func NewBoolSeries(name string, n int) *BoolSeries {
	s := &BoolSeries{name: name, data: make([]bool, n), miss: make([]bool, n)}
	for i := range s.miss {
		s.miss[i] = true
	}
	return s
}

func (s *BoolSeries) Name() string       { return s.name }
func (s *BoolSeries) Kind() Kind         { return KindBool }
func (s *BoolSeries) Len() int           { return len(s.data) }
func (s *BoolSeries) Missing(i int) bool { return s.miss[i] }
func (s *BoolSeries) SetMissing(i int)   { s.miss[i] = true }
func (s *BoolSeries) SetValue(i int, v bool) {
	s.data[i] = v
	s.miss[i] = false
}
func (s *BoolSeries) Get(i int) (bool, bool) { return s.data[i], !s.miss[i] }
func (s *BoolSeries) MissingCount() int      { return countTrue(s.miss) }

func (s *BoolSeries) Clone() Series {
	c := &BoolSeries{name: s.name, data: make([]bool, len(s.data)), miss: make([]bool, len(s.miss))}
	copy(c.data, s.data)
	copy(c.miss, s.miss)
	return c
}

func countTrue(b []bool) int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}
	return n
}

func asInt64(v float64) (int64, bool) {
	iv := int64(v)
	if float64(iv) != v {
		return 0, false
	}
	return iv, true
}
