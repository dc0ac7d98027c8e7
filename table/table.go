// Package table provides in-memory tables that can be bound to charts.
//
// Rows is row-oriented, Columns column-oriented; both implement
// govega.Table. Reference wraps a table living at a URL.
package table

import (
	"fmt"
	"sort"

	govega "github.com/reoring/govega"
)

// Rows is a row-oriented table with a fixed column order.
type Rows struct {
	columns []string
	rows    []map[string]any
}

// NewRows builds a table with explicit column order. Keys missing from a
// row are absent cells; keys not listed in columns are ignored.
func NewRows(columns []string, rows ...map[string]any) *Rows {
	out := &Rows{columns: append([]string(nil), columns...), rows: make([]map[string]any, len(rows))}
	for i, r := range rows {
		out.rows[i] = copyRow(r, out.columns)
	}
	return out
}

// FromRecords builds a table whose columns are the union of all record keys
// in ascending order.
func FromRecords(records []map[string]any) *Rows {
	seen := map[string]bool{}
	var cols []string
	for _, r := range records {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return NewRows(cols, records...)
}

func (t *Rows) Len() int { return len(t.rows) }

func (t *Rows) Columns() []string { return append([]string(nil), t.columns...) }

// Select returns a table restricted to columns, in the given order.
func (t *Rows) Select(columns ...string) (govega.Table, error) {
	if err := checkColumns(t.columns, columns); err != nil {
		return nil, err
	}
	return NewRows(columns, t.rows...), nil
}

// Records returns a copy of the rows.
func (t *Rows) Records() []map[string]any {
	out := make([]map[string]any, len(t.rows))
	for i, r := range t.rows {
		out[i] = copyRow(r, t.columns)
	}
	return out
}

// Columns is a column-oriented table.
type Columns struct {
	names []string
	data  map[string][]any
	n     int
}

// FromColumns builds a column-oriented table. Every column must have the
// same length.
func FromColumns(names []string, data map[string][]any) (*Columns, error) {
	n := -1
	out := &Columns{names: append([]string(nil), names...), data: make(map[string][]any, len(names))}
	for _, name := range names {
		col, ok := data[name]
		if !ok {
			return nil, fmt.Errorf("table: column %q has no data", name)
		}
		if n >= 0 && len(col) != n {
			return nil, fmt.Errorf("table: column %q has %d values, want %d", name, len(col), n)
		}
		n = len(col)
		out.data[name] = append([]any(nil), col...)
	}
	if n < 0 {
		n = 0
	}
	out.n = n
	return out, nil
}

// MustColumns is like FromColumns but panics on error.
func MustColumns(names []string, data map[string][]any) *Columns {
	c, err := FromColumns(names, data)
	if err != nil {
		panic(err)
	}
	return c
}

func (t *Columns) Len() int { return t.n }

func (t *Columns) Columns() []string { return append([]string(nil), t.names...) }

// Select returns a table restricted to columns, in the given order.
func (t *Columns) Select(columns ...string) (govega.Table, error) {
	if err := checkColumns(t.names, columns); err != nil {
		return nil, err
	}
	return FromColumns(columns, t.data)
}

// Records converts the columns into per-row records.
func (t *Columns) Records() []map[string]any {
	out := make([]map[string]any, t.n)
	for i := 0; i < t.n; i++ {
		r := make(map[string]any, len(t.names))
		for _, name := range t.names {
			r[name] = t.data[name][i]
		}
		out[i] = r
	}
	return out
}

// Column returns the values of one column.
func (t *Columns) Column(name string) ([]any, bool) {
	col, ok := t.data[name]
	return append([]any(nil), col...), ok
}

// Reference is a table stored at a URL. It is exported as a url reference
// instead of inline values. Rows may be attached for type inference and the
// row guard; they are never exported.
type Reference struct {
	govega.Table
	url    string
	format string
}

// WithReference binds t to url with an optional format hint ("csv", "json",
// "tsv", ...). t may be nil when no local copy exists.
func WithReference(t govega.Table, url, format string) *Reference {
	if t == nil {
		t = NewRows(nil)
	}
	return &Reference{Table: t, url: url, format: format}
}

// Reference implements govega.Referencer.
func (r *Reference) Reference() (string, string) { return r.url, r.format }

// Select keeps the reference.
func (r *Reference) Select(columns ...string) (govega.Table, error) {
	t, err := r.Table.Select(columns...)
	if err != nil {
		return nil, err
	}
	return &Reference{Table: t, url: r.url, format: r.format}, nil
}

var (
	_ govega.Table      = (*Rows)(nil)
	_ govega.Table      = (*Columns)(nil)
	_ govega.Referencer = (*Reference)(nil)
)

func checkColumns(have, want []string) error {
	set := make(map[string]bool, len(have))
	for _, c := range have {
		set[c] = true
	}
	for _, c := range want {
		if !set[c] {
			return fmt.Errorf("table: unknown column %q", c)
		}
	}
	return nil
}

func copyRow(r map[string]any, columns []string) map[string]any {
	out := make(map[string]any, len(columns))
	for _, c := range columns {
		if v, ok := r[c]; ok {
			out[c] = v
		}
	}
	return out
}
