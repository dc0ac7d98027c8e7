package vegalite

import (
	"github.com/reoring/govega/dsl"
)

// DataFormat describes how a url data source is parsed.
var DataFormat = dsl.Object("DataFormat").
	Field("type", dsl.Enum(dataFormatTypes...)).
	Field("parse", dsl.Union(dsl.Enum("auto"), dsl.MapOf(dsl.String()), dsl.Null())).
	Field("property", dsl.String()).
	Field("feature", dsl.String()).
	Field("mesh", dsl.String()).
	MustBuild()

// Data is a data source: a url, inline values or a named data set.
var Data = dsl.Object("Data").
	Help("Data source of a chart.").
	Field("url", dsl.String()).
	Field("values", dsl.ArrayOf(dsl.Any())).Help("Inline data records.").
	Field("name", dsl.String()).
	Field("format", dsl.Instance(DataFormat)).
	MustBuild()

// LookupData is the secondary source of a lookup transform.
var LookupData = dsl.Object("LookupData").
	Field("data", dsl.Instance(Data)).Required().
	Field("key", dsl.String()).Required().
	Field("fields", dsl.ArrayOf(dsl.String())).
	MustBuild()
