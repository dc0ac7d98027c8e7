package chart

import (
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/dsl"
)

// LayeredChart paints its layers in order, first at the bottom. Layers
// inherit the data of the layered chart unless they bind their own.
type LayeredChart struct {
	topLevel
}

// NewLayered returns a layered chart bound to data with copies of layers.
func NewLayered(data any, layers ...*Chart) (*LayeredChart, error) {
	lc := &LayeredChart{topLevel: newTopLevel(LayeredChartType)}
	if err := lc.e.Set("layer", []any{}); err != nil {
		return nil, err
	}
	if err := lc.SetData(data); err != nil {
		return nil, err
	}
	for _, l := range layers {
		if err := lc.Add(l); err != nil {
			return nil, err
		}
	}
	return lc, nil
}

// Layer combines charts into a new layered chart without data of its own.
// The charts are copied, so later changes to them do not affect the result.
func Layer(layers ...*Chart) *LayeredChart {
	lc, err := NewLayered(nil, layers...)
	if err != nil {
		// Only reachable with a nil chart.
		panic(err)
	}
	return lc
}

// WrapLayered returns a LayeredChart backed by e.
func WrapLayered(e *dsl.Entity) (*LayeredChart, error) {
	if e == nil || e.Type() != LayeredChartType {
		return nil, &govega.TypeError{Path: "/", Accepted: []string{LayeredChartType.Name()}, Received: e}
	}
	return &LayeredChart{topLevel{e: e}}, nil
}

// Copy returns a deep copy of lc.
func (lc *LayeredChart) Copy() *LayeredChart { return &LayeredChart{topLevel{e: lc.e.Copy(true)}} }

// Add appends a copy of c as the top layer.
func (lc *LayeredChart) Add(c *Chart) error {
	if c == nil {
		return &govega.TypeError{
			Path:     govega.IndexPath("/layer", len(lc.layers())),
			Accepted: []string{ChartType.Name()},
			Received: nil,
		}
	}
	next := append(lc.layers(), c.e.Copy(true))
	return lc.e.Set("layer", next)
}

// Plus returns a new layered chart with c added on top.
func (lc *LayeredChart) Plus(c *Chart) (*LayeredChart, error) {
	out := lc.Copy()
	if err := out.Add(c); err != nil {
		return nil, err
	}
	return out, nil
}

// Layers returns the layers bottom to top. The returned charts share state
// with lc.
func (lc *LayeredChart) Layers() []*Chart {
	ls := lc.layers()
	out := make([]*Chart, 0, len(ls))
	for _, l := range ls {
		if e, ok := l.(*dsl.Entity); ok {
			out = append(out, &Chart{topLevel{e: e}})
		}
	}
	return out
}

func (lc *LayeredChart) layers() []any {
	cur, _ := dsl.Lookup[[]any](lc.e, "layer")
	return append([]any(nil), cur...)
}

// Transform appends transforms applied before the layers.
func (lc *LayeredChart) Transform(ts ...any) error {
	cur, _ := dsl.Lookup[[]any](lc.e, "transform")
	return lc.e.Set("transform", append(append([]any(nil), cur...), ts...))
}

// Resolve merges scale, axis and legend resolution settings.
func (lc *LayeredChart) Resolve(vals dsl.Values) error {
	return lc.e.MergeAt([]string{"resolve"}, vals)
}
