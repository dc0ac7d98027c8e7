package dsl

import (
	govega "github.com/reoring/govega"
	js "github.com/reoring/govega/jsonschema"
)

// JSONSchema projects t, and every type reachable from it, into a JSON
// Schema. Nested entity types become definitions referenced with $ref, which
// keeps recursive grammars (logical filters) finite.
func (t *Type) JSONSchema() (*js.Schema, error) {
	defs := map[string]*js.Schema{}
	root := t.objectSchema(defs)
	root.Schema = js.Draft
	root.Title = t.name
	if len(defs) > 0 {
		root.Definitions = defs
	}
	return root, nil
}

func (t *Type) objectSchema(defs map[string]*js.Schema) *js.Schema {
	props := make(map[string]*js.Schema, len(t.order))
	var req []string
	for _, n := range t.order {
		f := t.fields[n]
		if f.skip {
			continue
		}
		s := constraintSchema(f.constraint, defs)
		if f.help != "" {
			s.Description = f.help
		}
		if !govega.IsUndefined(f.def) {
			s.Default = f.def
		}
		props[n] = s
		if f.required {
			req = append(req, n)
		}
	}
	return &js.Schema{
		Type:                 "object",
		Description:          t.help,
		Properties:           props,
		Required:             req,
		AdditionalProperties: false,
	}
}

func constraintSchema(c Constraint, defs map[string]*js.Schema) *js.Schema {
	switch c.kind {
	case KindString:
		return &js.Schema{Type: "string"}
	case KindNumber:
		return &js.Schema{Type: "number"}
	case KindInteger:
		return &js.Schema{Type: "integer"}
	case KindBoolean:
		return &js.Schema{Type: "boolean"}
	case KindNull:
		return &js.Schema{Type: "null"}
	case KindEnum:
		vals := make([]any, len(c.enum))
		for i, v := range c.enum {
			vals[i] = v
		}
		return &js.Schema{Type: "string", Enum: vals}
	case KindInstance:
		t := c.Type()
		if t == nil {
			return &js.Schema{}
		}
		if _, seen := defs[t.name]; !seen {
			ph := &js.Schema{}
			defs[t.name] = ph
			*ph = *t.objectSchema(defs)
		}
		return &js.Schema{Ref: js.DefinitionRef(t.name)}
	case KindAdapter:
		if c.adapter == "expression" {
			return &js.Schema{Type: "string"}
		}
		return &js.Schema{}
	case KindArray:
		return &js.Schema{Type: "array", Items: constraintSchema(*c.elem, defs)}
	case KindMap:
		return &js.Schema{Type: "object", AdditionalProperties: constraintSchema(*c.elem, defs)}
	case KindUnion:
		out := &js.Schema{}
		for _, a := range c.alts {
			out.AnyOf = append(out.AnyOf, constraintSchema(a, defs))
		}
		return out
	}
	return &js.Schema{}
}
