package csvio

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/wdm0006/refill/pkg/refill"
)

type WriterOptions struct {
	Delimiter rune // default ','
}

// WriteAll writes a Table to a CSV file with a header row. Missing slots
// become empty cells, never a sentinel.
func WriteAll(path string, t *refill.Table, opt WriterOptions) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	return Write(out, t, opt)
}

// Write writes a Table to w.
func Write(w io.Writer, t *refill.Table, opt WriterOptions) error {
	cw := csv.NewWriter(w)
	if opt.Delimiter != 0 {
		cw.Comma = opt.Delimiter
	}

	cols := t.Schema().Columns
	hdr := make([]string, len(cols))
	for i, cs := range cols {
		hdr[i] = cs.Name
	}
	if err := cw.Write(hdr); err != nil {
		return err
	}

	row := make([]string, len(cols))
	for r := 0; r < t.Rows(); r++ {
		for c := range cols {
			row[c] = formatCell(t.Column(c), r)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(s refill.Series, r int) string {
	switch col := s.(type) {
	case *refill.FloatSeries:
		if v, ok := col.Get(r); ok {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
	case *refill.IntSeries:
		if v, ok := col.Get(r); ok {
			return strconv.FormatInt(v, 10)
		}
	case *refill.BoolSeries:
		if v, ok := col.Get(r); ok {
			return strconv.FormatBool(v)
		}
	case *refill.StringSeries:
		if v, ok := col.Get(r); ok {
			return v
		}
	}
	return ""
}
