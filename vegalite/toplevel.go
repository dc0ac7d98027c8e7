package vegalite

import (
	"github.com/reoring/govega/dsl"
)

// TopLevelProperties are the fields shared by every top-level chart. Chart
// types include them with dsl's Include.
var TopLevelProperties = dsl.Object("TopLevelProperties").
	Field("width", dsl.Number()).
	Field("height", dsl.Number()).
	Field("title", dsl.Union(dsl.String(), dsl.Instance(TitleParams))).
	Field("description", dsl.String()).Help("Description of this chart.").
	Field("background", dsl.String()).Help("CSS color of the entire view background.").
	Field("padding", dsl.Union(dsl.Number(), dsl.MapOf(dsl.Number()))).
	Field("autosize", dsl.Union(dsl.Enum("pad", "fit", "none"), dsl.MapOf(dsl.Any()))).
	Field("config", dsl.Instance(Config)).
	MustBuild()

// PropertyNames lists the keys accepted by chart Properties.
var PropertyNames = []string{"width", "height", "title", "description", "background", "padding", "autosize"}

// Types returns every entity type declared by this package, for
// introspection and schema export.
func Types() []*dsl.Type {
	return []*dsl.Type{
		Scale, Axis, Legend, Bin, SortField, Header,
		MarkDef, MarkConfig, AxisConfig, LegendConfig, ScaleConfig, ViewConfig, Config,
		DataFormat, Data, LookupData,
		SelectionDef, ResolveMapping, Resolve, TitleParams,
		ValueDef, FieldDef, PositionFieldDef, MarkPropFieldDef, TextFieldDef, OrderFieldDef, FacetFieldDef,
		Encoding, Facet,
		EqualFilter, RangeFilter, OneOfFilter, SelectionFilter, LogicalAnd, LogicalOr, LogicalNot,
		CalculateTransform, FilterTransform, BinTransform, TimeUnitTransform, AggregatedFieldDef,
		AggregateTransform, LookupTransform,
		TopLevelProperties,
	}
}

// TypeByName looks a type up by its name.
func TypeByName(name string) (*dsl.Type, bool) {
	for _, t := range Types() {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}
