package vegalite

import (
	"github.com/reoring/govega/dsl"
)

// Scale maps data values to visual values.
var Scale = dsl.Object("Scale").
	Help("Function that transforms values in the data domain to visual values in the range.").
	Field("type", dsl.Enum(scaleTypes...)).
	Field("domain", dsl.Union(dsl.ArrayOf(dsl.Any()), dsl.Enum("unaggregated"))).
	Field("range", dsl.Union(dsl.ArrayOf(dsl.Any()), dsl.String())).
	Field("scheme", dsl.Union(dsl.String(), dsl.MapOf(dsl.Any()))).
	Field("base", dsl.Number()).
	Field("clamp", dsl.Boolean()).
	Field("exponent", dsl.Number()).
	Field("interpolate", dsl.String()).
	Field("nice", dsl.Union(dsl.Boolean(), dsl.Number(), dsl.String())).
	Field("padding", dsl.Number()).
	Field("paddingInner", dsl.Number()).
	Field("paddingOuter", dsl.Number()).
	Field("rangeStep", dsl.Union(dsl.Number(), dsl.Null())).
	Field("round", dsl.Boolean()).
	Field("zero", dsl.Boolean()).Help("Whether the scale domain should include zero.").
	MustBuild()

// Axis configures the axis of a position channel.
var Axis = dsl.Object("Axis").
	Field("domain", dsl.Boolean()).
	Field("format", dsl.String()).Help("d3-format or d3-time-format specifier for labels.").
	Field("grid", dsl.Boolean()).
	Field("labelAngle", dsl.Number()).
	Field("labelBound", dsl.Union(dsl.Boolean(), dsl.Number())).
	Field("labelFlush", dsl.Union(dsl.Boolean(), dsl.Number())).
	Field("labelOverlap", dsl.Union(dsl.Boolean(), dsl.Enum("parity", "greedy"))).
	Field("labelPadding", dsl.Number()).
	Field("labels", dsl.Boolean()).
	Field("maxExtent", dsl.Number()).
	Field("minExtent", dsl.Number()).
	Field("offset", dsl.Number()).
	Field("orient", dsl.Enum(axisOrients...)).
	Field("position", dsl.Number()).
	Field("tickCount", dsl.Number()).
	Field("tickSize", dsl.Number()).
	Field("ticks", dsl.Boolean()).
	Field("title", dsl.Union(dsl.String(), dsl.Null())).
	Field("titleMaxLength", dsl.Number()).
	Field("titlePadding", dsl.Number()).
	Field("values", dsl.ArrayOf(dsl.Any())).
	Field("zindex", dsl.Integer()).
	MustBuild()

// Legend configures the legend of a mark property channel.
var Legend = dsl.Object("Legend").
	Field("entryPadding", dsl.Number()).
	Field("format", dsl.String()).
	Field("offset", dsl.Number()).
	Field("orient", dsl.Enum(legendOrients...)).
	Field("padding", dsl.Number()).
	Field("tickCount", dsl.Number()).
	Field("title", dsl.Union(dsl.String(), dsl.Null())).
	Field("type", dsl.Enum("symbol", "gradient")).
	Field("values", dsl.ArrayOf(dsl.Any())).
	Field("zindex", dsl.Integer()).
	MustBuild()

// Bin configures binning of a quantitative field.
var Bin = dsl.Object("Bin").
	Field("base", dsl.Number()).
	Field("divide", dsl.ArrayOf(dsl.Number())).
	Field("extent", dsl.ArrayOf(dsl.Number())).
	Field("maxbins", dsl.Integer()).Help("Maximum number of bins.").
	Field("minstep", dsl.Number()).
	Field("nice", dsl.Boolean()).
	Field("step", dsl.Number()).
	Field("steps", dsl.ArrayOf(dsl.Number())).
	MustBuild()

// SortField sorts a channel by an aggregate of another field.
var SortField = dsl.Object("SortField").
	Field("field", dsl.String()).
	Field("op", dsl.Enum(AggregateOps...)).Required().
	Field("order", dsl.Enum(sortOrders...)).
	MustBuild()

// Header configures row/column headers of a faceted chart.
var Header = dsl.Object("Header").
	Field("format", dsl.String()).
	Field("labelAngle", dsl.Number()).
	Field("title", dsl.Union(dsl.String(), dsl.Null())).
	MustBuild()
