package parquetio

import (
	"os"
	"sort"
	"strings"

	parquet "github.com/segmentio/parquet-go"

	"github.com/wdm0006/refill/pkg/refill"
)

// Reader loads Parquet data into a Table. Absent fields are missing
// slots.
type Reader struct {
	file   *os.File
	reader *parquet.GenericReader[map[string]any]
	schema refill.Schema
}

// OpenReader opens path and infers the column kinds from the first
// sampleRows records.
func OpenReader(path string, sampleRows int) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := parquet.NewGenericReader[map[string]any](f)
	if sampleRows <= 0 {
		sampleRows = 100
	}
	rows := make([]map[string]any, sampleRows)
	for i := range rows {
		rows[i] = map[string]any{}
	}
	n, err := r.Read(rows)
	if err != nil && !isEOF(err) {
		_ = r.Close()
		_ = f.Close()
		return nil, err
	}
	schema := inferSchema(rows[:n])
	// the reader cannot unread sampled rows, so reopen from the start
	if err := r.Close(); err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := f.Seek(0, 0); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Reader{file: f, reader: parquet.NewGenericReader[map[string]any](f), schema: schema}, nil
}

func (r *Reader) Close() error {
	_ = r.reader.Close()
	return r.file.Close()
}

func (r *Reader) Schema() refill.Schema { return r.schema }

// ReadAll loads every record into a Table.
func (r *Reader) ReadAll() (*refill.Table, error) {
	t := refill.NewTable(r.schema)
	buf := make([]map[string]any, 1024)
	for {
		for i := range buf {
			buf[i] = map[string]any{}
		}
		n, err := r.reader.Read(buf)
		for i := 0; i < n; i++ {
			t.AppendEmptyRow()
			setRow(t, t.Rows()-1, buf[i])
		}
		if err != nil {
			if isEOF(err) {
				break
			}
			return nil, err
		}
		if n == 0 {
			break
		}
	}
	return t, nil
}

func isEOF(err error) bool {
	return err != nil && strings.Contains(err.Error(), "EOF")
}

func inferSchema(rows []map[string]any) refill.Schema {
	keySet := map[string]struct{}{}
	for _, m := range rows {
		for k := range m {
			keySet[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	schema := refill.Schema{Columns: make([]refill.ColumnSchema, len(keys))}
	for i, k := range keys {
		nNum, nInt, nBool, nStr := 0, 0, 0, 0
		for _, m := range rows {
			v, ok := m[k]
			if !ok || v == nil {
				continue
			}
			switch x := v.(type) {
			case float64:
				nNum++
				if float64(int64(x)) == x {
					nInt++
				}
			case float32:
				nNum++
			case int, int32, int64:
				nNum++
				nInt++
			case bool:
				nBool++
			default:
				nStr++
			}
		}
		kind := refill.KindString
		switch {
		case nBool > nNum && nBool >= nStr:
			kind = refill.KindBool
		case nNum > nStr && nInt == nNum && nNum > 0:
			kind = refill.KindInt
		case nNum > nStr:
			kind = refill.KindFloat
		}
		schema.Columns[i] = refill.ColumnSchema{Name: k, Type: kind}
	}
	return schema
}

func setRow(t *refill.Table, row int, m map[string]any) {
	for _, cs := range t.Schema().Columns {
		v, ok := m[cs.Name]
		if !ok || v == nil {
			continue
		}
		switch cs.Type {
		case refill.KindFloat:
			switch x := v.(type) {
			case float64:
				_ = t.SetCell(row, cs.Name, x)
			case float32:
				_ = t.SetCell(row, cs.Name, float64(x))
			case int64:
				_ = t.SetCell(row, cs.Name, float64(x))
			case int32:
				_ = t.SetCell(row, cs.Name, float64(x))
			}
		case refill.KindInt:
			switch x := v.(type) {
			case int64:
				_ = t.SetCell(row, cs.Name, x)
			case int32:
				_ = t.SetCell(row, cs.Name, int64(x))
			case float64:
				_ = t.SetCell(row, cs.Name, int64(x))
			}
		case refill.KindBool:
			if x, ok := v.(bool); ok {
				_ = t.SetCell(row, cs.Name, x)
			}
		default:
			switch x := v.(type) {
			case string:
				_ = t.SetCell(row, cs.Name, x)
			case []byte:
				_ = t.SetCell(row, cs.Name, string(x))
			}
		}
	}
}
