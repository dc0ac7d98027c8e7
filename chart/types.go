// Package chart provides the top-level composites of the grammar: a
// single-view Chart, a LayeredChart and a FacetedChart. Each composite wraps
// a dsl entity and adds data binding, the row ceiling, convenience mutators
// and document/text conversion.
package chart

import (
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/dsl"
	"github.com/reoring/govega/expr"
	vl "github.com/reoring/govega/vegalite"
)

var dataBinding = dsl.Union(
	dsl.Instance(vl.Data),
	dsl.Table(),
	dsl.Adapter("frame", func(v any) bool {
		f, ok := v.(*expr.Frame)
		return ok && f != nil
	}),
)

var markField = dsl.Union(dsl.Enum(vl.Marks...), dsl.Instance(vl.MarkDef))

// ChartType is the single-view composite: one mark with its encoding.
var ChartType = dsl.Object("Chart").
	Help("A single view: one mark, its encoding and data.").
	Field("name", dsl.String()).
	Field("data", dataBinding).DataBinding().
	Field("mark", markField).Default(vl.MarkPoint).Required().
	Field("encoding", dsl.Instance(vl.Encoding)).
	Field("transform", dsl.ArrayOf(vl.Transform)).
	Field("selection", dsl.MapOf(dsl.Instance(vl.SelectionDef))).
	Include(vl.TopLevelProperties).
	Field("max_rows", dsl.Integer()).Default(govega.DefaultMaxRows).NoExport().
	Help("Row ceiling of a bound table.").
	Finalize(finalizeComposite).
	MustBuild()

// LayeredChartType stacks single views on top of each other. The first
// layer is painted first.
var LayeredChartType = dsl.Object("LayeredChart").
	Field("name", dsl.String()).
	Field("data", dataBinding).DataBinding().
	Field("layer", dsl.ArrayOf(dsl.Instance(ChartType))).Required().
	Field("transform", dsl.ArrayOf(vl.Transform)).
	Field("resolve", dsl.Instance(vl.Resolve)).
	Include(vl.TopLevelProperties).
	Field("max_rows", dsl.Integer()).Default(govega.DefaultMaxRows).NoExport().
	Finalize(finalizeComposite).
	MustBuild()

// FacetedChartType repeats one spec over the rows and columns of a facet.
var FacetedChartType = dsl.Object("FacetedChart").
	Field("name", dsl.String()).
	Field("data", dataBinding).DataBinding().
	Field("facet", dsl.Instance(vl.Facet)).Required().
	Field("spec", dsl.Union(dsl.Instance(LayeredChartType), dsl.Instance(ChartType))).Required().
	Field("transform", dsl.ArrayOf(vl.Transform)).
	Field("resolve", dsl.Instance(vl.Resolve)).
	Include(vl.TopLevelProperties).
	Field("max_rows", dsl.Integer()).Default(govega.DefaultMaxRows).NoExport().
	Finalize(finalizeComposite).
	MustBuild()

// Types returns the composite types.
func Types() []*dsl.Type {
	return []*dsl.Type{ChartType, LayeredChartType, FacetedChartType}
}
