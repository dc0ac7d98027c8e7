package vegalite

import (
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/dsl"
)

// EqualFilter keeps rows whose field equals a value.
var EqualFilter = dsl.Object("EqualFilter").
	Field("field", dsl.String()).Required().
	Field("equal", dsl.Union(dsl.String(), dsl.Number(), dsl.Boolean(), dsl.MapOf(dsl.Any()))).Required().
	Field("timeUnit", dsl.Enum(TimeUnits...)).
	MustBuild()

// RangeFilter keeps rows whose field lies in an inclusive range.
var RangeFilter = dsl.Object("RangeFilter").
	Field("field", dsl.String()).Required().
	Field("range", dsl.ArrayOf(dsl.Union(dsl.Number(), dsl.Null(), dsl.MapOf(dsl.Any())))).Required().
	Field("timeUnit", dsl.Enum(TimeUnits...)).
	MustBuild()

// OneOfFilter keeps rows whose field is one of a set of values.
var OneOfFilter = dsl.Object("OneOfFilter").
	Field("field", dsl.String()).Required().
	Field("oneOf", dsl.ArrayOf(dsl.Any())).Required().
	Field("timeUnit", dsl.Enum(TimeUnits...)).
	MustBuild()

// SelectionFilter keeps rows inside a named selection.
var SelectionFilter = dsl.Object("SelectionFilter").
	Field("selection", dsl.String()).Required().
	MustBuild()

// Logical filter combinators. They reference the predicate union, which
// references them back, so they are assigned in init.
var (
	LogicalAnd *dsl.Type
	LogicalOr  *dsl.Type
	LogicalNot *dsl.Type
)

var predicate = dsl.Union(
	dsl.String(),
	dsl.Expression(),
	dsl.Instance(EqualFilter),
	dsl.Instance(RangeFilter),
	dsl.Instance(OneOfFilter),
	dsl.Instance(SelectionFilter),
	dsl.InstanceOf(func() *dsl.Type { return LogicalAnd }),
	dsl.InstanceOf(func() *dsl.Type { return LogicalOr }),
	dsl.InstanceOf(func() *dsl.Type { return LogicalNot }),
)

func init() {
	LogicalAnd = dsl.Object("LogicalAnd").
		Field("and", dsl.ArrayOf(predicate)).Required().
		Finalize(stringifyPredicate("and")).
		MustBuild()
	LogicalOr = dsl.Object("LogicalOr").
		Field("or", dsl.ArrayOf(predicate)).Required().
		Finalize(stringifyPredicate("or")).
		MustBuild()
	LogicalNot = dsl.Object("LogicalNot").
		Field("not", predicate).Required().
		Finalize(stringifyPredicate("not")).
		MustBuild()
}

// stringifyPredicate replaces live expressions held by field name (directly
// or as array elements) with their text.
func stringifyPredicate(name string) dsl.Finalizer {
	return func(e *dsl.Entity, _ *dsl.FinalizeContext) error {
		switch v := e.Value(name).(type) {
		case govega.Expression:
			return e.Set(name, v.Expr())
		case []any:
			out := make([]any, len(v))
			for i, el := range v {
				if x, ok := el.(govega.Expression); ok {
					out[i] = x.Expr()
					continue
				}
				out[i] = el
			}
			return e.Set(name, out)
		}
		return nil
	}
}

// CalculateTransform derives a new field from an expression.
var CalculateTransform = dsl.Object("CalculateTransform").
	Field("calculate", dsl.Union(dsl.String(), dsl.Expression())).Required().
	Help("Expression computing the new field.").
	Field("as", dsl.String()).Required().
	Finalize(stringifyPredicate("calculate")).
	MustBuild()

// FilterTransform removes rows that do not satisfy a predicate.
var FilterTransform = dsl.Object("FilterTransform").
	Field("filter", dsl.Union(
		dsl.String(),
		dsl.Expression(),
		dsl.Instance(EqualFilter),
		dsl.Instance(RangeFilter),
		dsl.Instance(OneOfFilter),
		dsl.Instance(SelectionFilter),
		dsl.InstanceOf(func() *dsl.Type { return LogicalAnd }),
		dsl.InstanceOf(func() *dsl.Type { return LogicalOr }),
		dsl.InstanceOf(func() *dsl.Type { return LogicalNot }),
		dsl.ArrayOf(predicate),
	)).Required().
	Finalize(stringifyPredicate("filter")).
	MustBuild()

// BinTransform bins a field into a new one.
var BinTransform = dsl.Object("BinTransform").
	Field("bin", binning).Required().
	Field("field", dsl.String()).Required().
	Field("as", dsl.String()).Required().
	MustBuild()

// TimeUnitTransform truncates a temporal field into a new one.
var TimeUnitTransform = dsl.Object("TimeUnitTransform").
	Field("timeUnit", dsl.Enum(TimeUnits...)).Required().
	Field("field", dsl.String()).Required().
	Field("as", dsl.String()).Required().
	MustBuild()

// AggregatedFieldDef is one aggregate of an AggregateTransform.
var AggregatedFieldDef = dsl.Object("AggregatedFieldDef").
	Field("op", dsl.Enum(AggregateOps...)).Required().
	Field("field", dsl.String()).Required().
	Field("as", dsl.String()).Required().
	MustBuild()

// AggregateTransform groups rows and summarizes fields.
var AggregateTransform = dsl.Object("AggregateTransform").
	Field("aggregate", dsl.ArrayOf(dsl.Instance(AggregatedFieldDef))).Required().
	Field("groupby", dsl.ArrayOf(dsl.String())).
	MustBuild()

// LookupTransform joins fields from a secondary data source.
var LookupTransform = dsl.Object("LookupTransform").
	Field("lookup", dsl.String()).Required().
	Field("from", dsl.Instance(LookupData)).Required().
	Field("as", dsl.Union(dsl.String(), dsl.ArrayOf(dsl.String()))).
	Field("default", dsl.String()).
	MustBuild()

// Transform accepts any transform. Alternatives are distinguished by their
// keys, so the order only matters for empty values.
var Transform = dsl.Union(
	dsl.Instance(CalculateTransform),
	dsl.Instance(FilterTransform),
	dsl.Instance(BinTransform),
	dsl.Instance(TimeUnitTransform),
	dsl.Instance(AggregateTransform),
	dsl.Instance(LookupTransform),
)
