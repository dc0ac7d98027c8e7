package vegalite

import (
	"github.com/reoring/govega/dsl"
)

// MarkDef is the object form of a chart mark.
var MarkDef = dsl.Object("MarkDef").
	Field("type", dsl.Enum(Marks...)).Required().
	Field("style", dsl.Union(dsl.String(), dsl.ArrayOf(dsl.String()))).
	Field("clip", dsl.Boolean()).
	Field("orient", dsl.Enum(orients...)).
	Field("interpolate", dsl.Enum(interpolates...)).
	Field("tension", dsl.Number()).
	Field("filled", dsl.Boolean()).
	MustBuild()

// MarkConfig holds default mark properties. Its keys are the style keys
// accepted by chart.Mark.
var MarkConfig = dsl.Object("MarkConfig").
	Field("align", dsl.Enum(horizontalAligns...)).
	Field("angle", dsl.Number()).
	Field("baseline", dsl.Enum(verticalAligns...)).
	Field("color", dsl.String()).Help("Default color.").
	Field("cursor", dsl.String()).
	Field("dx", dsl.Number()).
	Field("dy", dsl.Number()).
	Field("fill", dsl.String()).
	Field("fillOpacity", dsl.Number()).
	Field("filled", dsl.Boolean()).
	Field("font", dsl.String()).
	Field("fontSize", dsl.Number()).
	Field("fontStyle", dsl.Enum(fontStyles...)).
	Field("fontWeight", dsl.Union(dsl.Enum(fontWeights...), dsl.Number())).
	Field("interpolate", dsl.Enum(interpolates...)).
	Field("limit", dsl.Number()).
	Field("opacity", dsl.Number()).Help("The overall opacity (value between [0,1]).").
	Field("orient", dsl.Enum(orients...)).
	Field("radius", dsl.Number()).
	Field("shape", dsl.String()).
	Field("size", dsl.Number()).
	Field("stroke", dsl.String()).
	Field("strokeDash", dsl.ArrayOf(dsl.Number())).
	Field("strokeDashOffset", dsl.Number()).
	Field("strokeOpacity", dsl.Number()).
	Field("strokeWidth", dsl.Number()).
	Field("tension", dsl.Number()).
	Field("text", dsl.String()).
	Field("theta", dsl.Number()).
	Field("binSpacing", dsl.Number()).
	Field("continuousBandSize", dsl.Number()).
	Field("discreteBandSize", dsl.Number()).
	Field("bandSize", dsl.Number()).
	Field("thickness", dsl.Number()).
	MustBuild()

// AxisConfig holds default axis properties.
var AxisConfig = dsl.Object("AxisConfig").
	Field("bandPosition", dsl.Number()).
	Field("domain", dsl.Boolean()).
	Field("domainColor", dsl.String()).
	Field("domainWidth", dsl.Number()).
	Field("grid", dsl.Boolean()).
	Field("gridColor", dsl.String()).
	Field("gridDash", dsl.ArrayOf(dsl.Number())).
	Field("gridOpacity", dsl.Number()).
	Field("gridWidth", dsl.Number()).
	Field("labelAngle", dsl.Number()).
	Field("labelColor", dsl.String()).
	Field("labelFont", dsl.String()).
	Field("labelFontSize", dsl.Number()).
	Field("labelLimit", dsl.Number()).
	Field("labels", dsl.Boolean()).
	Field("maxExtent", dsl.Number()).
	Field("minExtent", dsl.Number()).
	Field("shortTimeLabels", dsl.Boolean()).
	Field("tickColor", dsl.String()).
	Field("tickRound", dsl.Boolean()).
	Field("tickSize", dsl.Number()).
	Field("tickWidth", dsl.Number()).
	Field("ticks", dsl.Boolean()).
	Field("titleAlign", dsl.String()).
	Field("titleAngle", dsl.Number()).
	Field("titleBaseline", dsl.String()).
	Field("titleColor", dsl.String()).
	Field("titleFont", dsl.String()).
	Field("titleFontSize", dsl.Number()).
	Field("titleFontWeight", dsl.Union(dsl.Enum(fontWeights...), dsl.Number())).
	Field("titleLimit", dsl.Number()).
	Field("titleMaxLength", dsl.Number()).
	Field("titlePadding", dsl.Number()).
	MustBuild()

// LegendConfig holds default legend properties.
var LegendConfig = dsl.Object("LegendConfig").
	Field("cornerRadius", dsl.Number()).
	Field("entryPadding", dsl.Number()).
	Field("fillColor", dsl.String()).
	Field("gradientHeight", dsl.Number()).
	Field("gradientWidth", dsl.Number()).
	Field("labelColor", dsl.String()).
	Field("labelFont", dsl.String()).
	Field("labelFontSize", dsl.Number()).
	Field("offset", dsl.Number()).
	Field("orient", dsl.Enum(legendOrients...)).
	Field("padding", dsl.Number()).
	Field("shortTimeLabels", dsl.Boolean()).
	Field("strokeColor", dsl.String()).
	Field("symbolSize", dsl.Number()).
	Field("symbolType", dsl.String()).
	Field("titleColor", dsl.String()).
	Field("titleFont", dsl.String()).
	Field("titleFontSize", dsl.Number()).
	MustBuild()

// ScaleConfig holds default scale properties.
var ScaleConfig = dsl.Object("ScaleConfig").
	Field("bandPaddingInner", dsl.Number()).
	Field("bandPaddingOuter", dsl.Number()).
	Field("clamp", dsl.Boolean()).
	Field("continuousPadding", dsl.Number()).
	Field("maxBandSize", dsl.Number()).
	Field("maxFontSize", dsl.Number()).
	Field("maxOpacity", dsl.Number()).
	Field("maxSize", dsl.Number()).
	Field("maxStrokeWidth", dsl.Number()).
	Field("minBandSize", dsl.Number()).
	Field("minFontSize", dsl.Number()).
	Field("minOpacity", dsl.Number()).
	Field("minSize", dsl.Number()).
	Field("minStrokeWidth", dsl.Number()).
	Field("pointPadding", dsl.Number()).
	Field("rangeStep", dsl.Union(dsl.Number(), dsl.Null())).
	Field("round", dsl.Boolean()).
	Field("textXRangeStep", dsl.Number()).
	Field("useUnaggregatedDomain", dsl.Boolean()).
	MustBuild()

// ViewConfig styles the single view plotting area.
var ViewConfig = dsl.Object("ViewConfig").
	Field("width", dsl.Number()).
	Field("height", dsl.Number()).
	Field("clip", dsl.Boolean()).
	Field("fill", dsl.String()).
	Field("fillOpacity", dsl.Number()).
	Field("stroke", dsl.String()).
	Field("strokeDash", dsl.ArrayOf(dsl.Number())).
	Field("strokeOpacity", dsl.Number()).
	Field("strokeWidth", dsl.Number()).
	MustBuild()

// Config is the chart-wide configuration object.
var Config = dsl.Object("Config").
	Field("background", dsl.String()).
	Field("countTitle", dsl.String()).
	Field("numberFormat", dsl.String()).
	Field("timeFormat", dsl.String()).
	Field("mark", dsl.Instance(MarkConfig)).Help("Default properties for all marks.").
	Field("area", dsl.Instance(MarkConfig)).
	Field("bar", dsl.Instance(MarkConfig)).
	Field("circle", dsl.Instance(MarkConfig)).
	Field("line", dsl.Instance(MarkConfig)).
	Field("point", dsl.Instance(MarkConfig)).
	Field("rect", dsl.Instance(MarkConfig)).
	Field("rule", dsl.Instance(MarkConfig)).
	Field("square", dsl.Instance(MarkConfig)).
	Field("text", dsl.Instance(MarkConfig)).
	Field("tick", dsl.Instance(MarkConfig)).
	Field("axis", dsl.Instance(AxisConfig)).
	Field("axisX", dsl.Instance(AxisConfig)).
	Field("axisY", dsl.Instance(AxisConfig)).
	Field("legend", dsl.Instance(LegendConfig)).
	Field("scale", dsl.Instance(ScaleConfig)).
	Field("view", dsl.Instance(ViewConfig)).
	Field("range", dsl.MapOf(dsl.Any())).
	Field("selection", dsl.MapOf(dsl.Any())).
	Field("style", dsl.MapOf(dsl.Any())).
	MustBuild()
