// Package vegalite declares the Vega-Lite v2 grammar as dsl entity types:
// marks, encoding channels, scales, axes, legends, data, transforms, filters,
// selections and configuration.
//
// Every exported *dsl.Type in this package is immutable and safe to share.
// Composite charts built on top of these types live in package chart.
package vegalite

// Mark types.
const (
	MarkArea     = "area"
	MarkBar      = "bar"
	MarkLine     = "line"
	MarkPoint    = "point"
	MarkText     = "text"
	MarkTick     = "tick"
	MarkRect     = "rect"
	MarkRule     = "rule"
	MarkCircle   = "circle"
	MarkSquare   = "square"
	MarkGeoshape = "geoshape"
)

// Marks lists every mark type.
var Marks = []string{
	MarkArea, MarkBar, MarkLine, MarkPoint, MarkText, MarkTick,
	MarkRect, MarkRule, MarkCircle, MarkSquare, MarkGeoshape,
}

// Encoding data types.
const (
	Quantitative = "quantitative"
	Ordinal      = "ordinal"
	Temporal     = "temporal"
	Nominal      = "nominal"
)

var dataTypes = []string{Quantitative, Ordinal, Temporal, Nominal}

// AggregateOps lists the aggregation operations.
var AggregateOps = []string{
	"argmax", "argmin", "average", "count", "distinct", "max", "mean",
	"median", "min", "missing", "q1", "q3", "ci0", "ci1", "stdev",
	"stdevp", "sum", "valid", "values", "variance", "variancep",
}

// TimeUnits lists the time units accepted by timeUnit fields.
var TimeUnits = []string{
	"year", "quarter", "month", "day", "date", "hours", "minutes", "seconds", "milliseconds",
	"yearquarter", "yearquartermonth", "yearmonth", "yearmonthdate", "yearmonthdatehours",
	"yearmonthdatehoursminutes", "yearmonthdatehoursminutesseconds",
	"quartermonth", "monthdate", "hoursminutes", "hoursminutesseconds",
	"minutesseconds", "secondsmilliseconds",
	"utcyear", "utcquarter", "utcmonth", "utcday", "utcdate", "utchours",
	"utcminutes", "utcseconds", "utcmilliseconds", "utcyearmonth", "utcyearmonthdate",
	"utcmonthdate", "utchoursminutes",
}

var scaleTypes = []string{
	"linear", "bin-linear", "log", "pow", "sqrt", "time", "utc", "sequential",
	"ordinal", "bin-ordinal", "point", "band",
}

// Channels lists the encoding channel names.
var Channels = []string{
	"x", "y", "x2", "y2", "color", "opacity", "size", "shape",
	"text", "tooltip", "detail", "order", "row", "column",
}

var (
	sortOrders    = []string{"ascending", "descending"}
	stackOffsets  = []string{"zero", "center", "normalize"}
	orients       = []string{"horizontal", "vertical"}
	axisOrients   = []string{"top", "right", "left", "bottom"}
	legendOrients = []string{"left", "right", "top-left", "top-right", "bottom-left", "bottom-right", "none"}
	interpolates  = []string{
		"linear", "linear-closed", "step", "step-before", "step-after", "basis",
		"basis-open", "basis-closed", "cardinal", "cardinal-open", "cardinal-closed",
		"bundle", "monotone",
	}
	horizontalAligns = []string{"left", "right", "center"}
	verticalAligns   = []string{"top", "middle", "bottom"}
	fontStyles       = []string{"normal", "italic"}
	fontWeights      = []string{"normal", "bold"}
	dataFormatTypes  = []string{"json", "csv", "tsv", "topojson"}
	selectionTypes   = []string{"single", "multi", "interval"}
	resolveModes     = []string{"independent", "shared"}
)
