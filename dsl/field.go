package dsl

import (
	govega "github.com/reoring/govega"
)

// Field is a typed, self-describing property declaration attached to an
// entity Type. Fields are immutable once their Type is built.
type Field struct {
	name       string
	constraint Constraint
	def        any
	help       string
	required   bool
	data       bool
	skip       bool
}

func (f *Field) Name() string           { return f.name }
func (f *Field) Constraint() Constraint { return f.constraint }
func (f *Field) Help() string           { return f.help }
func (f *Field) Required() bool         { return f.required }

// Default returns the declared default, or govega.Undefined.
func (f *Field) Default() any { return f.def }

// DataBinding reports whether the field is omitted by ExportOpt.OmitData.
func (f *Field) DataBinding() bool { return f.data }

// Skipped reports whether the field is never exported.
func (f *Field) Skipped() bool { return f.skip }

// Validate checks v against the field constraint and returns the value to
// store (possibly coerced, e.g. int -> float64 for numbers). Undefined is
// always accepted. Validate has no side effects.
func (f *Field) Validate(v any) (any, error) {
	return f.validateAt(govega.JoinPath("", f.name), v)
}

func (f *Field) validateAt(path string, v any) (any, error) {
	if govega.IsUndefined(v) {
		return govega.Undefined, nil
	}
	return f.constraint.check(path, v)
}

// check validates and coerces v. path is the JSON Pointer of v relative to
// the entity being written.
func (c Constraint) check(path string, v any) (any, error) {
	switch c.kind {
	case KindAny:
		return checkAny(path, c, v)
	case KindString:
		return checkString(path, c, v)
	case KindNumber:
		return checkNumber(path, c, v)
	case KindInteger:
		return checkInteger(path, c, v)
	case KindBoolean:
		return checkBoolean(path, c, v)
	case KindNull:
		return checkNull(path, c, v)
	case KindEnum:
		return checkEnum(path, c, v)
	case KindInstance:
		return checkInstance(path, c, v)
	case KindAdapter:
		return checkAdapter(path, c, v)
	case KindArray:
		return checkArray(path, c, v)
	case KindMap:
		return checkMap(path, c, v)
	case KindUnion:
		return checkUnion(path, c, v)
	}
	return nil, invalidType(path, c, v)
}
