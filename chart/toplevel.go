package chart

import (
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/codec"
	"github.com/reoring/govega/dsl"
	"github.com/reoring/govega/expr"
	vl "github.com/reoring/govega/vegalite"
)

// Composite is implemented by Chart, LayeredChart and FacetedChart.
type Composite interface {
	// Entity returns the underlying entity. Changes made through it are
	// visible to the composite.
	Entity() *dsl.Entity
	ToDocument(opt govega.ExportOpt) (*govega.Document, error)
	ToText(opt govega.ExportOpt) (string, error)
	SetData(v any) error
	Data() any
	MaxRows() int
	SetMaxRows(n int) error
	Properties(vals dsl.Values) error
}

// acceptedData names the kinds SetData accepts, for TypeError.
var acceptedData = []string{"url string", "govega.Table", "*expr.Frame", "vegalite.Data entity", "nil"}

// topLevel is the capability shared by every composite: document and text
// conversion, data binding, row ceiling and top-level properties.
type topLevel struct {
	e *dsl.Entity
}

func newTopLevel(t *dsl.Type) topLevel {
	e := t.MustNew(nil)
	if n := govega.CurrentConfig().MaxRows; n > 0 {
		_ = e.Set("max_rows", n)
	}
	return topLevel{e: e}
}

func (t topLevel) Entity() *dsl.Entity { return t.e }

// ToDocument exports the composite. The document starts with $schema.
func (t topLevel) ToDocument(opt govega.ExportOpt) (*govega.Document, error) {
	body, err := t.e.ToDocument(opt)
	if err != nil {
		return nil, err
	}
	doc := govega.NewDocument().Set(govega.SchemaKey, govega.SchemaURL)
	for _, k := range body.Keys() {
		v, _ := body.Get(k)
		doc.Set(k, v)
	}
	return doc, nil
}

// ToText exports the composite as JSON text. Keys are sorted unless
// opt.InsertionOrder is set.
func (t topLevel) ToText(opt govega.ExportOpt) (string, error) {
	doc, err := t.ToDocument(opt)
	if err != nil {
		return "", err
	}
	b, err := codec.JSON{}.Encode(doc, opt)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SetData binds data to the composite. v may be a url string, a
// govega.Table, an *expr.Frame, a vegalite.Data entity, or nil to clear the
// binding so that it is inherited from the enclosing composite.
func (t topLevel) SetData(v any) error {
	switch x := v.(type) {
	case nil:
		return t.e.Unset("data")
	case string:
		d, err := vl.Data.New(dsl.Values{"url": x})
		if err != nil {
			return govega.WithPathPrefix(err, "/data")
		}
		return t.e.Set("data", d)
	case *expr.Frame:
		if x == nil {
			return t.e.Unset("data")
		}
		return t.e.Set("data", x)
	case *dsl.Entity:
		if x != nil && x.Type() == vl.Data {
			return t.e.Set("data", x)
		}
	case govega.Table:
		if !govega.IsNilAdapter(x) {
			return t.e.Set("data", x)
		}
	}
	return &govega.TypeError{Path: "/data", Accepted: acceptedData, Received: v}
}

// Data returns the current binding, or nil when there is none.
func (t topLevel) Data() any { return govega.OrNil(t.e.Value("data")) }

// MaxRows returns the row ceiling applied to a bound table.
func (t topLevel) MaxRows() int { return maxRows(t.e) }

// SetMaxRows changes the row ceiling. Negative values are rejected.
func (t topLevel) SetMaxRows(n int) error {
	if n < 0 {
		return &govega.ValidationError{Path: "/max_rows", Code: govega.CodeInvalidType, Expected: "non-negative integer", Received: n}
	}
	return t.e.Set("max_rows", n)
}

// Properties sets top-level view properties such as width, height and
// title. Other keys are rejected.
func (t topLevel) Properties(vals dsl.Values) error {
	for k := range vals {
		if !isProperty(k) {
			return &govega.UnknownFieldError{Path: govega.JoinPath("", k), Type: t.e.Type().Name(), Field: k}
		}
	}
	return t.e.Update(vals)
}

func isProperty(name string) bool {
	for _, p := range vl.PropertyNames {
		if p == name {
			return true
		}
	}
	return false
}

// channelValues turns bare strings into field definitions, so that
// Values{"x": "price:Q"} means Values{"x": Values{"field": "price:Q"}}.
func channelValues(vals dsl.Values) dsl.Values {
	out := make(dsl.Values, len(vals))
	for k, v := range vals {
		if s, ok := v.(string); ok {
			v = dsl.Values{"field": s}
		}
		out[k] = v
	}
	return out
}
