package chart

import (
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/dsl"
)

// FacetedChart repeats one spec, a Chart or a LayeredChart, for every row
// and column of its facet.
type FacetedChart struct {
	topLevel
}

// NewFaceted returns a faceted chart bound to data. Both the facet and the
// spec must be set before export.
func NewFaceted(data any) (*FacetedChart, error) {
	fc := &FacetedChart{topLevel: newTopLevel(FacetedChartType)}
	if err := fc.SetData(data); err != nil {
		return nil, err
	}
	return fc, nil
}

// WrapFaceted returns a FacetedChart backed by e.
func WrapFaceted(e *dsl.Entity) (*FacetedChart, error) {
	if e == nil || e.Type() != FacetedChartType {
		return nil, &govega.TypeError{Path: "/", Accepted: []string{FacetedChartType.Name()}, Received: e}
	}
	return &FacetedChart{topLevel{e: e}}, nil
}

// Copy returns a deep copy of fc.
func (fc *FacetedChart) Copy() *FacetedChart { return &FacetedChart{topLevel{e: fc.e.Copy(true)}} }

// SetFacet merges row and column definitions into the facet. A string value
// is shorthand for a field definition.
func (fc *FacetedChart) SetFacet(vals dsl.Values) error {
	return fc.e.MergeAt([]string{"facet"}, channelValues(vals))
}

// SetSpec replaces the repeated spec with a copy of spec.
func (fc *FacetedChart) SetSpec(spec Composite) error {
	switch s := spec.(type) {
	case *Chart:
		if s != nil {
			return fc.e.Set("spec", s.e.Copy(true))
		}
	case *LayeredChart:
		if s != nil {
			return fc.e.Set("spec", s.e.Copy(true))
		}
	}
	return &govega.TypeError{
		Path:     "/spec",
		Accepted: []string{ChartType.Name(), LayeredChartType.Name()},
		Received: spec,
	}
}

// Spec returns the repeated spec, sharing state with fc, or nil when unset.
func (fc *FacetedChart) Spec() Composite {
	e, ok := dsl.Lookup[*dsl.Entity](fc.e, "spec")
	if !ok {
		return nil
	}
	if e.Type() == LayeredChartType {
		return &LayeredChart{topLevel{e: e}}
	}
	return &Chart{topLevel{e: e}}
}

// Transform appends transforms applied before faceting.
func (fc *FacetedChart) Transform(ts ...any) error {
	cur, _ := dsl.Lookup[[]any](fc.e, "transform")
	return fc.e.Set("transform", append(append([]any(nil), cur...), ts...))
}

// Resolve merges scale, axis and legend resolution settings.
func (fc *FacetedChart) Resolve(vals dsl.Values) error {
	return fc.e.MergeAt([]string{"resolve"}, vals)
}
