package expr

import (
	govega "github.com/reoring/govega"
)

// Calculated is a column derived by an expression.
type Calculated struct {
	As   string
	Expr govega.Expression
}

// Frame is a deferred view of a table: calculated columns, row filters and a
// column selection recorded as expressions. When a chart bound to a Frame is
// exported, the frame is decomposed into the concrete table plus calculate
// and filter transforms.
//
// Frames are immutable; every method returns a new Frame.
type Frame struct {
	data       govega.Table
	columns    []string
	calculated []Calculated
	filters    []govega.Expression
}

// NewFrame starts a frame over t.
func NewFrame(t govega.Table) *Frame { return &Frame{data: t} }

// Col references a column, base or calculated.
func (f *Frame) Col(name string) Expr { return Datum(name) }

// Assign adds a calculated column. Assigning an existing name replaces its
// expression and keeps its position.
func (f *Frame) Assign(as string, e govega.Expression) *Frame {
	out := f.clone()
	for i := range out.calculated {
		if out.calculated[i].As == as {
			out.calculated[i].Expr = e
			return out
		}
	}
	out.calculated = append(out.calculated, Calculated{As: as, Expr: e})
	return out
}

// Where keeps the rows for which cond holds. Conditions accumulate.
func (f *Frame) Where(cond govega.Expression) *Frame {
	out := f.clone()
	out.filters = append(out.filters, cond)
	return out
}

// Select restricts the frame to the named columns.
func (f *Frame) Select(columns ...string) *Frame {
	out := f.clone()
	out.columns = append([]string(nil), columns...)
	return out
}

// Table returns the underlying table, unpruned.
func (f *Frame) Table() govega.Table { return f.data }

// Columns returns the selected columns, or nil when no selection was made.
func (f *Frame) Columns() []string { return append([]string(nil), f.columns...) }

// Calculated returns the calculated columns in insertion order.
func (f *Frame) Calculated() []Calculated { return append([]Calculated(nil), f.calculated...) }

// Filters returns the row filters in insertion order.
func (f *Frame) Filters() []govega.Expression { return append([]govega.Expression(nil), f.filters...) }

// Resolve returns the concrete table pruned to the selected columns that
// exist in it. Selected calculated columns are produced by transforms and
// are not looked up in the table.
func (f *Frame) Resolve() (govega.Table, error) {
	if f.data == nil || f.columns == nil {
		return f.data, nil
	}
	have := map[string]bool{}
	for _, c := range f.data.Columns() {
		have[c] = true
	}
	var base []string
	for _, c := range f.columns {
		if have[c] {
			base = append(base, c)
		}
	}
	return f.data.Select(base...)
}

func (f *Frame) clone() *Frame {
	return &Frame{
		data:       f.data,
		columns:    append([]string(nil), f.columns...),
		calculated: append([]Calculated(nil), f.calculated...),
		filters:    append([]govega.Expression(nil), f.filters...),
	}
}
