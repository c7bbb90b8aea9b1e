package csvio

import (
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/wdm0006/refill/pkg/refill"
)

type ReaderOptions struct {
	HasHeader  bool
	Delimiter  rune // 0 = ','
	SampleRows int  // for kind inference; default 100
}

// Reader loads CSV data into a Table. An empty cell is a missing slot.
type Reader struct {
	r   *csv.Reader
	opt ReaderOptions
	buf [][]string
}

// Open opens a CSV file and returns a Reader plus the file to close.
func Open(path string, opt ReaderOptions) (*Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return NewReaderFrom(f, opt), f, nil
}

// NewReaderFrom constructs a Reader from an arbitrary io.Reader.
func NewReaderFrom(r io.Reader, opt ReaderOptions) *Reader {
	rr := csv.NewReader(r)
	if opt.Delimiter != 0 {
		rr.Comma = opt.Delimiter
	}
	return &Reader{r: rr, opt: opt}
}

// InferSchema reads the header (if present) and samples rows to determine
// column kinds.
func (r *Reader) InferSchema() (refill.Schema, error) {
	rec, err := r.r.Read()
	if err != nil {
		return refill.Schema{}, err
	}
	var names []string
	if r.opt.HasHeader {
		names = make([]string, len(rec))
		for i := range rec {
			names[i] = strings.TrimSpace(rec[i])
		}
		if len(names) > 0 {
			names[0] = strings.TrimPrefix(names[0], "\uFEFF")
		}
		rec, err = r.r.Read()
		if err == io.EOF {
			return schemaFor(names, nil), nil
		}
		if err != nil {
			return refill.Schema{}, err
		}
	} else {
		names = make([]string, len(rec))
		for i := range names {
			names[i] = "col_" + strconv.Itoa(i)
		}
	}

	sample := [][]string{rec}
	max := r.opt.SampleRows
	if max <= 0 {
		max = 100
	}
	for i := 1; i < max; i++ {
		rr, err := r.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return refill.Schema{}, err
		}
		sample = append(sample, rr)
	}
	// retain sampled rows for the subsequent ReadAll
	r.buf = append(r.buf, sample...)
	return schemaFor(names, inferKinds(sample, len(names))), nil
}

func schemaFor(names []string, kinds []refill.Kind) refill.Schema {
	s := refill.Schema{Columns: make([]refill.ColumnSchema, len(names))}
	for i := range names {
		k := refill.KindString
		if kinds != nil {
			k = kinds[i]
		}
		s.Columns[i] = refill.ColumnSchema{Name: names[i], Type: k}
	}
	return s
}

// ReadAll loads the remaining rows into a Table.
func (r *Reader) ReadAll(schema refill.Schema) (*refill.Table, error) {
	t := refill.NewTable(schema)
	appendRow := func(rec []string) {
		t.AppendEmptyRow()
		row := t.Rows() - 1
		for i, cs := range schema.Columns {
			if i >= len(rec) {
				continue
			}
			val := strings.TrimSpace(rec[i])
			if val == "" {
				continue // stays missing
			}
			switch cs.Type {
			case refill.KindFloat:
				if x, err := strconv.ParseFloat(val, 64); err == nil {
					_ = t.SetCell(row, cs.Name, x)
				}
			case refill.KindInt:
				if x, err := strconv.ParseInt(val, 10, 64); err == nil {
					_ = t.SetCell(row, cs.Name, x)
				}
			case refill.KindBool:
				if x, err := strconv.ParseBool(strings.ToLower(val)); err == nil {
					_ = t.SetCell(row, cs.Name, x)
				}
			default:
				_ = t.SetCell(row, cs.Name, val)
			}
		}
	}
	for _, rec := range r.buf {
		appendRow(rec)
	}
	r.buf = nil
	for {
		rec, err := r.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		appendRow(rec)
	}
	return t, nil
}

var numRe = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

func inferKinds(rows [][]string, ncol int) []refill.Kind {
	kinds := make([]refill.Kind, ncol)
	for c := 0; c < ncol; c++ {
		num, integer, boolean, str := 0, 0, 0, 0
		for _, row := range rows {
			if c >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[c])
			if v == "" {
				continue
			}
			if numRe.MatchString(v) {
				num++
				if !strings.ContainsAny(v, ".eE") {
					integer++
				}
				continue
			}
			lv := strings.ToLower(v)
			if lv == "true" || lv == "false" {
				boolean++
				continue
			}
			str++
		}
		switch {
		case boolean > 0 && num == 0 && str == 0:
			kinds[c] = refill.KindBool
		case num > str:
			if integer == num {
				kinds[c] = refill.KindInt
			} else {
				kinds[c] = refill.KindFloat
			}
		default:
			kinds[c] = refill.KindString
		}
	}
	return kinds
}
