package dsl

import (
	"strings"

	govega "github.com/reoring/govega"
)

// Kind tags the variant held by a Constraint.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindNumber
	KindInteger
	KindBoolean
	KindNull
	KindEnum
	KindInstance // instance of an entity Type
	KindAdapter  // Go value recognised by a predicate (expressions, tables, ...)
	KindArray
	KindMap
	KindUnion
)

var kindNames = [...]string{
	KindAny:      "any",
	KindString:   "string",
	KindNumber:   "number",
	KindInteger:  "integer",
	KindBoolean:  "boolean",
	KindNull:     "null",
	KindEnum:     "enum",
	KindInstance: "instance",
	KindAdapter:  "adapter",
	KindArray:    "array",
	KindMap:      "map",
	KindUnion:    "union",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Constraint is the type/shape a field value must satisfy. It is a tagged
// variant: exactly the members relevant to its Kind are set. Constraints are
// immutable values and may be shared between fields.
type Constraint struct {
	kind    Kind
	enum    []string
	typ     func() *Type
	adapter string
	match   func(any) bool
	elem    *Constraint
	alts    []Constraint
}

// Any accepts every JSON-compatible value. Objects are stored as
// *govega.Document.
func Any() Constraint { return Constraint{kind: KindAny} }

// String accepts strings, including named string types.
func String() Constraint { return Constraint{kind: KindString} }

// Number accepts any finite numeric value and stores it as float64.
func Number() Constraint { return Constraint{kind: KindNumber} }

// Integer accepts integral numeric values and stores them as int64.
func Integer() Constraint { return Constraint{kind: KindInteger} }

// Boolean accepts bool.
func Boolean() Constraint { return Constraint{kind: KindBoolean} }

// Null accepts only nil (JSON null).
func Null() Constraint { return Constraint{kind: KindNull} }

// Enum accepts one of the given string literals.
func Enum(values ...string) Constraint {
	return Constraint{kind: KindEnum, enum: append([]string(nil), values...)}
}

// Instance accepts entities of type t.
func Instance(t *Type) Constraint {
	return Constraint{kind: KindInstance, typ: func() *Type { return t }}
}

// InstanceOf is Instance with a lazily resolved type, for recursive
// grammars. resolve is called on use, never during declaration.
func InstanceOf(resolve func() *Type) Constraint {
	return Constraint{kind: KindInstance, typ: resolve}
}

// Adapter accepts Go values recognised by match. Adapter values are set from
// code only; they never come out of a document.
func Adapter(name string, match func(any) bool) Constraint {
	return Constraint{kind: KindAdapter, adapter: name, match: match}
}

// Expression accepts live expression objects (govega.Expression).
func Expression() Constraint {
	return Adapter("expression", func(v any) bool {
		_, ok := v.(govega.Expression)
		return ok && !govega.IsNilAdapter(v)
	})
}

// Table accepts concrete tables (govega.Table).
func Table() Constraint {
	return Adapter("table", func(v any) bool {
		_, ok := v.(govega.Table)
		return ok && !govega.IsNilAdapter(v)
	})
}

// ArrayOf accepts slices whose elements satisfy elem. Values are stored as []any.
func ArrayOf(elem Constraint) Constraint {
	e := elem
	return Constraint{kind: KindArray, elem: &e}
}

// MapOf accepts string-keyed maps whose values satisfy elem. Values are
// stored as map[string]any.
func MapOf(elem Constraint) Constraint {
	e := elem
	return Constraint{kind: KindMap, elem: &e}
}

// Union accepts a value satisfying at least one alternative. Alternatives are
// tried in the given order and the first match wins, both when validating and
// when decoding documents.
func Union(alts ...Constraint) Constraint {
	return Constraint{kind: KindUnion, alts: append([]Constraint(nil), alts...)}
}

// Kind returns the variant tag.
func (c Constraint) Kind() Kind { return c.kind }

// EnumValues returns the literals of an enum constraint.
func (c Constraint) EnumValues() []string { return append([]string(nil), c.enum...) }

// Type returns the entity type of an instance constraint, or nil.
func (c Constraint) Type() *Type {
	if c.kind != KindInstance || c.typ == nil {
		return nil
	}
	return c.typ()
}

// Elem returns the element constraint of an array or map constraint.
func (c Constraint) Elem() (Constraint, bool) {
	if c.elem == nil {
		return Constraint{}, false
	}
	return *c.elem, true
}

// Alternatives returns the alternatives of a union constraint in order.
func (c Constraint) Alternatives() []Constraint { return append([]Constraint(nil), c.alts...) }

// instanceType returns the first entity type reachable from c through union
// alternatives, in declaration order.
func (c Constraint) instanceType() *Type {
	switch c.kind {
	case KindInstance:
		return c.Type()
	case KindUnion:
		for _, a := range c.alts {
			if t := a.instanceType(); t != nil {
				return t
			}
		}
	}
	return nil
}

// Describe renders the constraint for error messages, e.g.
// "union[string|expression|instance of EqualFilter]".
func (c Constraint) Describe() string {
	switch c.kind {
	case KindEnum:
		return "enum[" + strings.Join(c.enum, "|") + "]"
	case KindInstance:
		if t := c.Type(); t != nil {
			return "instance of " + t.Name()
		}
		return "instance"
	case KindAdapter:
		return c.adapter
	case KindArray:
		return "array of " + c.elem.Describe()
	case KindMap:
		return "map of " + c.elem.Describe()
	case KindUnion:
		return "union[" + strings.Join(c.describeAlternatives(), "|") + "]"
	}
	return c.kind.String()
}

func (c Constraint) describeAlternatives() []string {
	out := make([]string, len(c.alts))
	for i, a := range c.alts {
		out[i] = a.Describe()
	}
	return out
}
