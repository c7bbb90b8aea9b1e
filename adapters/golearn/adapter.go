// Package golearn converts between refill's Table and
// github.com/sjwhitworth/golearn/base DenseInstances, so imputed data can
// feed golearn models directly.
package golearn

import (
	"github.com/sjwhitworth/golearn/base"

	"github.com/wdm0006/refill/pkg/refill"
)

// ToDenseInstances converts a Table into golearn DenseInstances. Numeric
// columns become float attributes (missing slots map to NaN system
// values); everything else becomes categorical.
func ToDenseInstances(t *refill.Table) (*base.DenseInstances, error) {
	cols := t.Schema().Columns
	attrs := make([]base.Attribute, len(cols))
	for i, cs := range cols {
		switch cs.Type {
		case refill.KindFloat, refill.KindInt:
			attrs[i] = base.NewFloatAttribute(cs.Name)
		default:
			ca := new(base.CategoricalAttribute)
			ca.SetName(cs.Name)
			attrs[i] = ca
		}
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(t.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < t.Rows(); r++ {
		for c := range cols {
			switch col := t.Column(c).(type) {
			case *refill.FloatSeries:
				if v, ok := col.Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(v))
				} else {
					inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], "NaN"))
				}
			case *refill.IntSeries:
				if v, ok := col.Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(float64(v)))
				} else {
					inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], "NaN"))
				}
			case *refill.StringSeries:
				if v, ok := col.Get(r); ok {
					inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], v))
				}
			case *refill.BoolSeries:
				if v, ok := col.Get(r); ok {
					s := "false"
					if v {
						s = "true"
					}
					inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], s))
				}
			}
		}
	}
	if len(attrs) > 0 {
		if err := inst.AddClassAttribute(attrs[len(attrs)-1]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// FromDenseInstances converts golearn DenseInstances into a Table. Float
// attributes become float columns, all others string columns.
func FromDenseInstances(inst *base.DenseInstances) (*refill.Table, error) {
	attrs := inst.AllAttributes()
	schema := refill.Schema{Columns: make([]refill.ColumnSchema, len(attrs))}
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		k := refill.KindString
		if a.GetType() == base.Float64Type {
			k = refill.KindFloat
		}
		schema.Columns[i] = refill.ColumnSchema{Name: a.GetName(), Type: k}
		spec, err := inst.GetAttribute(a)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	t := refill.NewTable(schema)
	_, nrows := inst.Size()
	for r := 0; r < nrows; r++ {
		t.AppendEmptyRow()
		for c, cs := range schema.Columns {
			switch cs.Type {
			case refill.KindFloat:
				v := base.UnpackBytesToFloat(inst.Get(specs[c], r))
				if v == v { // NaN stays missing
					_ = t.SetCell(r, cs.Name, v)
				}
			default:
				v := base.Attribute.GetStringFromSysVal(specs[c].GetAttribute(), inst.Get(specs[c], r))
				_ = t.SetCell(r, cs.Name, v)
			}
		}
	}
	return t, nil
}
