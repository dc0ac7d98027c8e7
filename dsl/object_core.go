package dsl

import (
	"fmt"
	"sort"

	govega "github.com/reoring/govega"
)

// ToDocument produces the declarative document of e. The entity itself is
// never modified: finalizers run against a deep working copy, which is then
// validated (required fields included) and projected. Fields are emitted in
// declaration order; Undefined and skipped fields are omitted.
func (e *Entity) ToDocument(opt govega.ExportOpt) (*govega.Document, error) {
	w, err := e.Finalize()
	if err != nil {
		return nil, err
	}
	if err := Validate(w, ValidateOpt{FailFast: true}); err != nil {
		return nil, err
	}
	return w.project("", opt)
}

func (e *Entity) project(path string, opt govega.ExportOpt) (*govega.Document, error) {
	doc := govega.NewDocument()
	for _, name := range e.typ.order {
		f := e.typ.fields[name]
		v := e.values[name]
		if f.skip || govega.IsUndefined(v) || (f.data && opt.OmitData) {
			continue
		}
		ev, err := encodeValue(govega.JoinPath(path, name), v, opt)
		if err != nil {
			return nil, err
		}
		doc.Set(name, ev)
	}
	return doc, nil
}

func encodeValue(path string, v any, opt govega.ExportOpt) (any, error) {
	switch t := v.(type) {
	case *Entity:
		return t.project(path, opt)
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			ev, err := encodeValue(govega.IndexPath(path, i), el, opt)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		doc := govega.NewDocument()
		for _, k := range keys {
			ev, err := encodeValue(govega.JoinPath(path, k), t[k], opt)
			if err != nil {
				return nil, err
			}
			doc.Set(k, ev)
		}
		return doc, nil
	case *govega.Document:
		return t.Clone(), nil
	case govega.Expression:
		return t.Expr(), nil
	case govega.Table:
		return encodeTable(path, t)
	}
	nv, err := govega.NormalizeValue(v)
	if err != nil {
		return nil, &govega.ValidationError{Path: path, Code: govega.CodeInvalidType, Expected: "JSON-compatible value", Received: v}
	}
	return nv, nil
}

// encodeTable renders a bound table as inline values, or as a url reference
// when the table knows where it lives.
func encodeTable(path string, t govega.Table) (*govega.Document, error) {
	doc := govega.NewDocument()
	if r, ok := t.(govega.Referencer); ok {
		url, format := r.Reference()
		doc.Set("url", url)
		if format != "" {
			doc.Set("format", govega.NewDocument().Set("type", format))
		}
		return doc, nil
	}
	cols := t.Columns()
	rows := make([]any, 0, t.Len())
	for i, rec := range t.Records() {
		row := govega.NewDocument()
		for _, c := range cols {
			v, ok := rec[c]
			if !ok {
				continue
			}
			nv, err := govega.NormalizeValue(v)
			if err != nil {
				return nil, &govega.ValidationError{
					Path:     govega.JoinPath(govega.IndexPath(govega.JoinPath(path, "values"), i), c),
					Code:     govega.CodeInvalidType,
					Expected: "JSON-compatible value",
					Received: v,
				}
			}
			row.Set(c, nv)
		}
		rows = append(rows, row)
	}
	doc.Set("values", rows)
	return doc, nil
}

// FromDocument reconstructs an entity of type t from a document. Keys that t
// does not declare are ignored; a $schema naming another grammar version is
// reported as a warning on the returned Diag.
func (t *Type) FromDocument(doc *govega.Document) (*Entity, govega.Diag, error) {
	d := &govega.DiagCollector{}
	if doc == nil {
		return nil, d, &govega.ValidationError{Path: "/", Code: govega.CodeInvalidType, Expected: "object", Received: nil}
	}
	if v, ok := doc.Get(govega.SchemaKey); ok {
		if s, _ := v.(string); s != govega.SchemaURL {
			d.Warn(&govega.SchemaVersionMismatch{Got: fmt.Sprint(v), Want: govega.SchemaURL})
		}
	}
	e, err := t.decode("", doc, d, false)
	if err != nil {
		return nil, d, err
	}
	return e, d, nil
}

// MustFromDocument is like FromDocument but panics on error and drops warnings.
func (t *Type) MustFromDocument(doc *govega.Document) *Entity {
	e, _, err := t.FromDocument(doc)
	if err != nil {
		panic(err)
	}
	return e
}

// decode builds an entity from doc. In strict mode (used while matching
// union alternatives) doc must also look like t; see matches.
func (t *Type) decode(path string, doc *govega.Document, d *govega.DiagCollector, strict bool) (*Entity, error) {
	if strict {
		if err := t.matches(path, doc); err != nil {
			return nil, err
		}
	}
	e := t.blank()
	for _, k := range doc.Keys() {
		f, ok := t.fields[k]
		if !ok {
			continue
		}
		v, _ := doc.Get(k)
		nv, err := f.constraint.decode(govega.JoinPath(path, k), v, d, false)
		if err != nil {
			return nil, err
		}
		e.values[k] = nv
	}
	return e, nil
}

// matches reports whether doc is shaped like t: every key is declared by t
// and every required field is present.
func (t *Type) matches(path string, doc *govega.Document) error {
	for _, k := range doc.Keys() {
		if k == govega.SchemaKey {
			continue
		}
		if _, ok := t.fields[k]; !ok {
			return &govega.UnknownFieldError{Path: govega.JoinPath(path, k), Type: t.name, Field: k}
		}
	}
	for _, n := range t.order {
		f := t.fields[n]
		if f.required && !doc.Has(n) {
			return &govega.ValidationError{
				Path:     govega.JoinPath(path, n),
				Code:     govega.CodeRequired,
				Expected: f.constraint.Describe(),
				Received: govega.Undefined,
			}
		}
	}
	return nil
}

// decode rebuilds a stored value from its document rendering.
func (c Constraint) decode(path string, v any, d *govega.DiagCollector, strict bool) (any, error) {
	switch c.kind {
	case KindInstance:
		t := c.Type()
		doc, ok := v.(*govega.Document)
		if t == nil || !ok || doc == nil {
			return nil, invalidType(path, c, v)
		}
		return t.decode(path, doc, d, strict)
	case KindAdapter:
		// Expressions and tables are exported as plain strings and data
		// objects, so a document never yields an adapter value.
		return nil, invalidType(path, c, v)
	case KindArray:
		return decodeArray(path, c, v, d, strict)
	case KindMap:
		return decodeMap(path, c, v, d, strict)
	case KindUnion:
		return decodeUnion(path, c, v, d)
	}
	return c.check(path, v)
}
