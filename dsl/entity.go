package dsl

import (
	"reflect"
	"sort"

	govega "github.com/reoring/govega"
)

// Values carries keyword field values for construction and merging.
type Values map[string]any

// Entity is a validated node of the grammar: a Type plus the current value of
// each declared field. Fields that were never set hold govega.Undefined.
//
// An Entity is not safe for concurrent mutation.
type Entity struct {
	typ    *Type
	values map[string]any
}

// New constructs an entity, validating every keyword against its field.
// Keywords are processed in ascending order so the reported error is
// deterministic. Fields not given start at their default, or Undefined.
// On error no entity is returned.
func (t *Type) New(vals Values) (*Entity, error) {
	e := t.blank()
	if err := e.Update(vals); err != nil {
		return nil, err
	}
	return e, nil
}

// MustNew is like New but panics on error.
func (t *Type) MustNew(vals Values) *Entity {
	e, err := t.New(vals)
	if err != nil {
		panic(err)
	}
	return e
}

func (t *Type) blank() *Entity {
	e := &Entity{typ: t, values: make(map[string]any, len(t.fields))}
	for _, n := range t.order {
		e.values[n] = copyValue(t.fields[n].def)
	}
	return e
}

// Type returns the entity type.
func (e *Entity) Type() *Type { return e.typ }

func (e *Entity) field(name string) (*Field, error) {
	f, ok := e.typ.fields[name]
	if !ok {
		return nil, &govega.UnknownFieldError{Path: govega.JoinPath("", name), Type: e.typ.name, Field: name}
	}
	return f, nil
}

// Get returns the current value of a declared field (possibly Undefined).
func (e *Entity) Get(name string) (any, error) {
	if _, err := e.field(name); err != nil {
		return nil, err
	}
	return e.values[name], nil
}

// Value is like Get but returns Undefined for undeclared names.
func (e *Entity) Value(name string) any {
	if e == nil {
		return govega.Undefined
	}
	v, ok := e.values[name]
	if !ok {
		return govega.Undefined
	}
	return v
}

// Has reports whether the field holds a value other than Undefined.
func (e *Entity) Has(name string) bool { return !govega.IsUndefined(e.Value(name)) }

// Set validates v against the field and stores the (coerced) result.
// Setting Undefined unsets the field.
func (e *Entity) Set(name string, v any) error {
	f, err := e.field(name)
	if err != nil {
		return err
	}
	nv, err := f.Validate(v)
	if err != nil {
		return err
	}
	e.values[name] = nv
	return nil
}

// Unset resets the field to Undefined.
func (e *Entity) Unset(name string) error { return e.Set(name, govega.Undefined) }

// Update sets several fields at once. Either every value is stored or none.
func (e *Entity) Update(vals Values) error {
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	staged := make(map[string]any, len(vals))
	for _, k := range keys {
		f, err := e.field(k)
		if err != nil {
			return err
		}
		nv, err := f.Validate(vals[k])
		if err != nil {
			return err
		}
		staged[k] = nv
	}
	for k, v := range staged {
		e.values[k] = v
	}
	return nil
}

// MergeAt merges vals into the nested entity reached by following path from
// e, creating missing entities on the way with the first entity type the
// field accepts. New keys overwrite, unspecified keys are retained. Nested
// entities are copied before being modified, so a failed merge leaves e and
// anything it shares untouched.
func (e *Entity) MergeAt(path []string, vals Values) error {
	if len(path) == 0 {
		return e.Update(vals)
	}
	name := path[0]
	f, err := e.field(name)
	if err != nil {
		return err
	}
	var child *Entity
	if cur, ok := e.values[name].(*Entity); ok {
		child = cur.Copy(false)
	} else {
		t := f.constraint.instanceType()
		if t == nil {
			return &govega.ValidationError{
				Path:     govega.JoinPath("", name),
				Code:     govega.CodeInvalidType,
				Expected: f.constraint.Describe(),
				Received: vals,
			}
		}
		child = t.blank()
	}
	if err := child.MergeAt(path[1:], vals); err != nil {
		return govega.WithPathPrefix(err, govega.JoinPath("", name))
	}
	return e.Set(name, child)
}

// SetFields returns the names of fields holding a value, in declaration order.
func (e *Entity) SetFields() []string {
	var out []string
	for _, n := range e.typ.order {
		if !govega.IsUndefined(e.values[n]) {
			out = append(out, n)
		}
	}
	return out
}

// Copy returns an independent entity with the same field values. A deep copy
// recursively copies nested entities, slices, maps and documents; a shallow
// copy shares them. Collaborator values (tables, frames, expressions) are
// always shared.
func (e *Entity) Copy(deep bool) *Entity {
	out := &Entity{typ: e.typ, values: make(map[string]any, len(e.values))}
	for k, v := range e.values {
		if deep {
			v = copyValue(v)
		}
		out.values[k] = v
	}
	return out
}

// Equal reports whether o has the same type and equal field values.
func (e *Entity) Equal(o *Entity) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.typ != o.typ {
		return false
	}
	for _, n := range e.typ.order {
		if !valueEqual(e.values[n], o.values[n]) {
			return false
		}
	}
	return true
}

// Lookup returns the value of a field when it is set and has type T.
func Lookup[T any](e *Entity, name string) (T, bool) {
	v, ok := e.Value(name).(T)
	return v, ok
}

func copyValue(v any) any {
	switch t := v.(type) {
	case *Entity:
		if t == nil {
			return t
		}
		return t.Copy(true)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = copyValue(t[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, el := range t {
			out[k] = copyValue(el)
		}
		return out
	case *govega.Document:
		return t.Clone()
	default:
		return v
	}
}

func valueEqual(a, b any) bool {
	if govega.IsUndefined(a) || govega.IsUndefined(b) {
		return govega.IsUndefined(a) && govega.IsUndefined(b)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Entity:
		y, ok := b.(*Entity)
		return ok && x.Equal(y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valueEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok || !valueEqual(xv, yv) {
				return false
			}
		}
		return true
	case *govega.Document:
		y, ok := b.(*govega.Document)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, k := range x.Keys() {
			xv, _ := x.Get(k)
			yv, ok := y.Get(k)
			if !ok || !valueEqual(xv, yv) {
				return false
			}
		}
		return true
	case govega.Expression:
		y, ok := b.(govega.Expression)
		return ok && x.Expr() == y.Expr()
	case bool, string:
		return a == b
	}
	if xf, ok := asFloat(a); ok {
		yf, ok := asFloat(b)
		return ok && xf == yf
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
