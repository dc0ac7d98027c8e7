package govega

import "reflect"

// Expression is implemented by live expression objects. Wherever a field
// accepts an expression, the core only ever calls Expr to obtain the
// canonical textual rendering.
type Expression interface {
	Expr() string
}

// Table is the tabular data adapter consumed by data bindings.
type Table interface {
	// Len returns the number of rows.
	Len() int
	// Columns returns the column names in display order.
	Columns() []string
	// Select returns a table restricted to the named columns.
	Select(columns ...string) (Table, error)
	// Records returns one key -> value mapping per row.
	Records() []map[string]any
}

// Referencer is implemented by tables that should be exported as a URL
// reference (with a format hint such as "csv" or "json") rather than inline
// records.
type Referencer interface {
	Reference() (url string, format string)
}

// IsNilAdapter reports whether v is nil or a nil pointer, map, slice, func
// or channel held in an interface, such as a (*table.Rows)(nil) Table.
func IsNilAdapter(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
