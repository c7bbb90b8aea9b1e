package parquetio

import (
	"encoding/json"
	"fmt"

	pw "github.com/xitongsys/parquet-go/writer"
	local "github.com/xitongsys/parquet-go-source/local"

	"github.com/wdm0006/refill/pkg/refill"
)

func parquetSchemaJSON(s refill.Schema) string {
	type field struct {
		Tag string `json:"Tag"`
	}
	type schema struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := schema{Tag: "name=schema, repetitiontype=REQUIRED"}
	for _, cs := range s.Columns {
		tag := "name=" + cs.Name + ", repetitiontype=OPTIONAL, type="
		switch cs.Type {
		case refill.KindFloat:
			tag += "DOUBLE"
		case refill.KindInt:
			tag += "INT64"
		case refill.KindBool:
			tag += "BOOLEAN"
		default:
			tag += "BYTE_ARRAY, convertedtype=UTF8"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	b, _ := json.Marshal(sc)
	return string(b)
}

// WriteAll writes a Table to a Parquet file. Missing slots are absent
// from their record, so they round-trip as nulls.
func WriteAll(path string, t *refill.Table) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	writer, err := pw.NewJSONWriter(parquetSchemaJSON(t.Schema()), fw, 4)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("parquetio: writer init: %w", err)
	}
	defer func() { _ = writer.WriteStop(); _ = fw.Close() }()

	for r := 0; r < t.Rows(); r++ {
		rec := make(map[string]any, t.Cols())
		for c, cs := range t.Schema().Columns {
			switch col := t.Column(c).(type) {
			case *refill.FloatSeries:
				if v, ok := col.Get(r); ok {
					rec[cs.Name] = v
				}
			case *refill.IntSeries:
				if v, ok := col.Get(r); ok {
					rec[cs.Name] = v
				}
			case *refill.BoolSeries:
				if v, ok := col.Get(r); ok {
					rec[cs.Name] = v
				}
			case *refill.StringSeries:
				if v, ok := col.Get(r); ok {
					rec[cs.Name] = v
				}
			}
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("parquetio: write row: %w", err)
		}
	}
	return nil
}
