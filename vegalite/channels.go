package vegalite

import (
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/dsl"
)

// finalizeFieldDef expands shorthand in "field" and fills in "type" from
// the bound table when it is still unset.
func finalizeFieldDef(e *dsl.Entity, fc *dsl.FinalizeContext) error {
	field, ok := dsl.Lookup[string](e, "field")
	if ok {
		sh := ParseShorthand(field)
		vals := dsl.Values{}
		if sh.Field != field {
			if sh.Field == "" {
				vals["field"] = govega.Undefined
			} else {
				vals["field"] = sh.Field
			}
		}
		if sh.Aggregate != "" && !e.Has("aggregate") {
			vals["aggregate"] = sh.Aggregate
		}
		if sh.Type != "" && !e.Has("type") {
			vals["type"] = sh.Type
		}
		if err := e.Update(vals); err != nil {
			return err
		}
		field = sh.Field
	}
	if e.Has("type") || field == "" {
		return nil
	}
	if tb, ok := fc.Data.(govega.Table); ok {
		if typ, ok := InferType(tb, field); ok {
			return e.Set("type", typ)
		}
	}
	return nil
}

// ValueDef sets a channel to a constant visual value.
var ValueDef = dsl.Object("ValueDef").
	Field("value", dsl.Union(dsl.Number(), dsl.String(), dsl.Boolean())).Required().
	MustBuild()

var binning = dsl.Union(dsl.Boolean(), dsl.Instance(Bin))

// FieldDef maps a data field to a channel without scale or guide.
var FieldDef = dsl.Object("FieldDef").
	Field("field", dsl.String()).Help("Name of the field, or shorthand \"agg(field):T\".").
	Field("type", dsl.Enum(dataTypes...)).
	Field("aggregate", dsl.Enum(AggregateOps...)).
	Field("bin", binning).
	Field("timeUnit", dsl.Enum(TimeUnits...)).
	Finalize(finalizeFieldDef).
	MustBuild()

// PositionFieldDef maps a data field to x or y.
var PositionFieldDef = dsl.Object("PositionFieldDef").
	Field("field", dsl.String()).Help("Name of the field, or shorthand \"agg(field):T\".").
	Field("type", dsl.Enum(dataTypes...)).
	Field("aggregate", dsl.Enum(AggregateOps...)).
	Field("bin", binning).
	Field("timeUnit", dsl.Enum(TimeUnits...)).
	Field("scale", dsl.Instance(Scale)).
	Field("axis", dsl.Union(dsl.Null(), dsl.Instance(Axis))).
	Field("sort", dsl.Union(dsl.Enum(sortOrders...), dsl.Instance(SortField), dsl.Null())).
	Field("stack", dsl.Union(dsl.Enum(stackOffsets...), dsl.Null())).
	Finalize(finalizeFieldDef).
	MustBuild()

// MarkPropFieldDef maps a data field to color, opacity, size or shape.
var MarkPropFieldDef = dsl.Object("MarkPropFieldDef").
	Field("field", dsl.String()).
	Field("type", dsl.Enum(dataTypes...)).
	Field("aggregate", dsl.Enum(AggregateOps...)).
	Field("bin", binning).
	Field("timeUnit", dsl.Enum(TimeUnits...)).
	Field("scale", dsl.Instance(Scale)).
	Field("legend", dsl.Union(dsl.Null(), dsl.Instance(Legend))).
	Field("sort", dsl.Union(dsl.Enum(sortOrders...), dsl.Instance(SortField), dsl.Null())).
	Finalize(finalizeFieldDef).
	MustBuild()

// TextFieldDef maps a data field to text or tooltip.
var TextFieldDef = dsl.Object("TextFieldDef").
	Field("field", dsl.String()).
	Field("type", dsl.Enum(dataTypes...)).
	Field("aggregate", dsl.Enum(AggregateOps...)).
	Field("bin", binning).
	Field("timeUnit", dsl.Enum(TimeUnits...)).
	Field("format", dsl.String()).
	Finalize(finalizeFieldDef).
	MustBuild()

// OrderFieldDef maps a data field to the order channel.
var OrderFieldDef = dsl.Object("OrderFieldDef").
	Field("field", dsl.String()).
	Field("type", dsl.Enum(dataTypes...)).
	Field("aggregate", dsl.Enum(AggregateOps...)).
	Field("bin", binning).
	Field("timeUnit", dsl.Enum(TimeUnits...)).
	Field("sort", dsl.Enum(sortOrders...)).
	Finalize(finalizeFieldDef).
	MustBuild()

// FacetFieldDef maps a data field to row or column.
var FacetFieldDef = dsl.Object("FacetFieldDef").
	Field("field", dsl.String()).
	Field("type", dsl.Enum(dataTypes...)).
	Field("aggregate", dsl.Enum(AggregateOps...)).
	Field("bin", binning).
	Field("timeUnit", dsl.Enum(TimeUnits...)).
	Field("header", dsl.Instance(Header)).
	Field("sort", dsl.Enum(sortOrders...)).
	Finalize(finalizeFieldDef).
	MustBuild()

var (
	positionChannel = dsl.Union(dsl.Instance(PositionFieldDef), dsl.Instance(ValueDef))
	markPropChannel = dsl.Union(dsl.Instance(MarkPropFieldDef), dsl.Instance(ValueDef))
	textChannel     = dsl.Union(dsl.Instance(TextFieldDef), dsl.Instance(ValueDef))
)

// Encoding maps channels to data fields or constant values.
var Encoding = dsl.Object("Encoding").
	Field("x", positionChannel).Help("X coordinates of the marks.").
	Field("y", positionChannel).Help("Y coordinates of the marks.").
	Field("x2", dsl.Union(dsl.Instance(FieldDef), dsl.Instance(ValueDef))).
	Field("y2", dsl.Union(dsl.Instance(FieldDef), dsl.Instance(ValueDef))).
	Field("color", markPropChannel).
	Field("opacity", markPropChannel).
	Field("size", markPropChannel).
	Field("shape", markPropChannel).
	Field("text", textChannel).
	Field("tooltip", textChannel).
	Field("detail", dsl.Union(dsl.Instance(FieldDef), dsl.ArrayOf(dsl.Instance(FieldDef)))).
	Field("order", dsl.Union(dsl.Instance(OrderFieldDef), dsl.ArrayOf(dsl.Instance(OrderFieldDef)))).
	Field("row", dsl.Instance(FacetFieldDef)).
	Field("column", dsl.Instance(FacetFieldDef)).
	MustBuild()

// Facet splits a chart into rows and columns of sub-plots.
var Facet = dsl.Object("Facet").
	Field("row", dsl.Instance(FacetFieldDef)).
	Field("column", dsl.Instance(FacetFieldDef)).
	MustBuild()
