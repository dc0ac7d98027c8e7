package govega

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"
)

// SchemaKey is the reserved document key carrying the grammar version URL.
const SchemaKey = "$schema"

// SchemaURL identifies the grammar version this module implements.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v2.json"

// Document is an ordered mapping from string keys to JSON-compatible values.
//
// Values are restricted to nil, bool, int64, float64, string, []any and
// *Document. Use NormalizeValue to bring arbitrary Go values into that shape.
// The zero value is not usable; create documents with NewDocument.
type Document struct {
	keys []string
	vals map[string]any
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{vals: map[string]any{}}
}

// DocumentFrom converts a plain map into a Document. Keys are inserted in
// ascending order because Go maps carry no order. Nested maps and slices are
// normalized recursively.
func DocumentFrom(m map[string]any) (*Document, error) {
	v, err := NormalizeValue(m)
	if err != nil {
		return nil, err
	}
	return v.(*Document), nil
}

// MustDocument is like DocumentFrom but panics on error. Intended for tests
// and literals.
func MustDocument(m map[string]any) *Document {
	d, err := DocumentFrom(m)
	if err != nil {
		panic(err)
	}
	return d
}

// Set stores v under key. An existing key keeps its position.
func (d *Document) Set(key string, v any) *Document {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = v
	return d
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Delete removes key if present.
func (d *Document) Delete(key string) {
	if d == nil {
		return
	}
	if _, ok := d.vals[key]; !ok {
		return
	}
	delete(d.vals, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.keys...)
}

// SortedKeys returns the keys in ascending order.
func (d *Document) SortedKeys() []string {
	ks := d.Keys()
	sort.Strings(ks)
	return ks
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{keys: append([]string(nil), d.keys...), vals: make(map[string]any, len(d.vals))}
	for k, v := range d.vals {
		out.vals[k] = cloneValue(v)
	}
	return out
}

// Map converts d into nested plain maps and slices, dropping key order.
func (d *Document) Map() map[string]any {
	if d == nil {
		return nil
	}
	out := make(map[string]any, len(d.vals))
	for k, v := range d.vals {
		out[k] = plainValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Document:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Document:
		return t.Map()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plainValue(t[i])
		}
		return out
	default:
		return v
	}
}

// NormalizeValue converts a Go value into the document value space:
// integers become int64, floats float64, maps *Document (sorted keys),
// slices and arrays []any. json.Number is parsed and time.Time is rendered
// as RFC 3339. Non-finite floats and values without a JSON counterpart are
// rejected.
func NormalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool, string, int64:
		return t, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("govega: non-finite number %v has no JSON form", t)
		}
		return t, nil
	case int:
		return int64(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("govega: invalid number %q", t.String())
		}
		return f, nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case *Document:
		return t.Clone(), nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			nv, err := NormalizeValue(t[i])
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case map[string]any:
		doc := NewDocument()
		ks := make([]string, 0, len(t))
		for k := range t {
			ks = append(ks, k)
		}
		sort.Strings(ks)
		for _, k := range ks {
			nv, err := NormalizeValue(t[k])
			if err != nil {
				return nil, err
			}
			doc.Set(k, nv)
		}
		return doc, nil
	}
	return normalizeReflect(v)
}

func normalizeReflect(v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return float64(u), nil
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return NormalizeValue(rv.Float())
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			nv, err := NormalizeValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return NormalizeValue(m)
	}
	return nil, fmt.Errorf("govega: value of type %T has no JSON form", v)
}
