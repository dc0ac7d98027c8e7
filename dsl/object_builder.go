package dsl

import (
	"errors"
	"fmt"

	govega "github.com/reoring/govega"
)

// Type is a named bundle of Field descriptors: one node kind of the grammar
// (an encoding channel, a mark config, a transform, ...). Types are built
// once with Object(...).Build() and are immutable afterwards.
type Type struct {
	name     string
	help     string
	fields   map[string]*Field
	order    []string
	finalize Finalizer
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Help returns the type description.
func (t *Type) Help() string { return t.help }

// Field returns the declared field called name.
func (t *Type) Field(name string) (*Field, bool) {
	f, ok := t.fields[name]
	return f, ok
}

// Fields returns the declared fields in declaration order.
func (t *Type) Fields() []*Field {
	out := make([]*Field, 0, len(t.order))
	for _, n := range t.order {
		out = append(out, t.fields[n])
	}
	return out
}

// FieldNames returns the declared field names in declaration order.
func (t *Type) FieldNames() []string { return append([]string(nil), t.order...) }

func (t *Type) String() string { return t.name }

type objectBuilder struct {
	t    *Type
	errs []error
}

type fieldStep struct {
	b *objectBuilder
	f *Field
}

// Object starts the declaration of an entity type.
func Object(name string) *objectBuilder {
	return &objectBuilder{t: &Type{name: name, fields: map[string]*Field{}}}
}

// Help sets the type description.
func (b *objectBuilder) Help(text string) *objectBuilder {
	b.t.help = text
	return b
}

// Field declares a field. Fields are exported in declaration order.
func (b *objectBuilder) Field(name string, c Constraint) *fieldStep {
	if _, dup := b.t.fields[name]; dup {
		b.errs = append(b.errs, fmt.Errorf("dsl: %s: field %q declared twice", b.t.name, name))
	} else {
		b.t.order = append(b.t.order, name)
	}
	f := &Field{name: name, constraint: c, def: govega.Undefined}
	b.t.fields[name] = f
	return &fieldStep{b: b, f: f}
}

// Include declares every field of t on the type being built, in t's order.
// Finalizers are not inherited.
func (b *objectBuilder) Include(t *Type) *objectBuilder {
	for _, n := range t.order {
		if _, dup := b.t.fields[n]; dup {
			b.errs = append(b.errs, fmt.Errorf("dsl: %s: included field %q declared twice", b.t.name, n))
			continue
		}
		f := *t.fields[n]
		b.t.order = append(b.t.order, n)
		b.t.fields[n] = &f
	}
	return b
}

// Require marks one or more fields as required for export.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		f, ok := b.t.fields[n]
		if !ok {
			b.errs = append(b.errs, fmt.Errorf("dsl: %s: cannot require undeclared field %q", b.t.name, n))
			continue
		}
		f.required = true
	}
	return b
}

// Skip marks fields that are declared (and validated) but never exported.
func (b *objectBuilder) Skip(names ...string) *objectBuilder {
	for _, n := range names {
		f, ok := b.t.fields[n]
		if !ok {
			b.errs = append(b.errs, fmt.Errorf("dsl: %s: cannot skip undeclared field %q", b.t.name, n))
			continue
		}
		f.skip = true
	}
	return b
}

// Finalize registers the pre-export normalization hook of the type.
func (b *objectBuilder) Finalize(fn Finalizer) *objectBuilder {
	b.t.finalize = fn
	return b
}

// Build validates the declaration and returns the type.
func (b *objectBuilder) Build() (*Type, error) {
	errs := append([]error(nil), b.errs...)
	for _, n := range b.t.order {
		f := b.t.fields[n]
		if govega.IsUndefined(f.def) {
			continue
		}
		dv, err := f.Validate(f.def)
		if err != nil {
			errs = append(errs, fmt.Errorf("dsl: %s: default of %q: %w", b.t.name, n, err))
			continue
		}
		f.def = dv
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b.t, nil
}

// MustBuild is like Build but panics on error. Intended for package-level
// grammar declarations.
func (b *objectBuilder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// Required marks the current field as required for export.
func (f *fieldStep) Required() *fieldStep {
	f.f.required = true
	return f
}

// Default sets the value a new entity starts with for this field.
func (f *fieldStep) Default(v any) *fieldStep {
	f.f.def = v
	return f
}

// Help sets the field description.
func (f *fieldStep) Help(text string) *fieldStep {
	f.f.help = text
	return f
}

// DataBinding marks the field as a data binding, dropped when exporting with
// ExportOpt.OmitData.
func (f *fieldStep) DataBinding() *fieldStep {
	f.f.data = true
	return f
}

// NoExport marks the current field as never exported.
func (f *fieldStep) NoExport() *fieldStep {
	f.f.skip = true
	return f
}

func (f *fieldStep) Field(name string, c Constraint) *fieldStep { return f.b.Field(name, c) }
func (f *fieldStep) Include(t *Type) *objectBuilder              { return f.b.Include(t) }
func (f *fieldStep) Require(names ...string) *objectBuilder      { return f.b.Require(names...) }
func (f *fieldStep) Skip(names ...string) *objectBuilder         { return f.b.Skip(names...) }
func (f *fieldStep) Finalize(fn Finalizer) *objectBuilder        { return f.b.Finalize(fn) }
func (f *fieldStep) Build() (*Type, error)                       { return f.b.Build() }
func (f *fieldStep) MustBuild() *Type                            { return f.b.MustBuild() }
