package vegalite

import (
	"github.com/reoring/govega/dsl"
)

// SelectionDef declares an interactive selection.
var SelectionDef = dsl.Object("SelectionDef").
	Field("type", dsl.Enum(selectionTypes...)).Required().
	Field("on", dsl.String()).Help("Vega event stream that triggers the selection.").
	Field("encodings", dsl.ArrayOf(dsl.Enum(Channels...))).
	Field("fields", dsl.ArrayOf(dsl.String())).
	Field("empty", dsl.Enum("all", "none")).
	Field("resolve", dsl.Enum("global", "union", "intersect")).
	Field("bind", dsl.Union(dsl.Enum("scales"), dsl.MapOf(dsl.Any()))).
	Field("nearest", dsl.Boolean()).
	Field("toggle", dsl.Union(dsl.String(), dsl.Boolean())).
	Field("translate", dsl.Union(dsl.String(), dsl.Boolean())).
	Field("zoom", dsl.Union(dsl.String(), dsl.Boolean())).
	Field("mark", dsl.MapOf(dsl.Any())).
	MustBuild()

// ResolveMapping is one kind of resolution (scale, axis or legend).
var ResolveMapping = dsl.Object("ResolveMapping").
	Field("x", dsl.Enum(resolveModes...)).
	Field("y", dsl.Enum(resolveModes...)).
	Field("color", dsl.Enum(resolveModes...)).
	Field("opacity", dsl.Enum(resolveModes...)).
	Field("size", dsl.Enum(resolveModes...)).
	Field("shape", dsl.Enum(resolveModes...)).
	MustBuild()

// Resolve controls how layered or faceted views share scales and guides.
var Resolve = dsl.Object("Resolve").
	Field("scale", dsl.Instance(ResolveMapping)).
	Field("axis", dsl.Instance(ResolveMapping)).
	Field("legend", dsl.Instance(ResolveMapping)).
	MustBuild()

// TitleParams is the object form of a chart title.
var TitleParams = dsl.Object("TitleParams").
	Field("text", dsl.String()).Required().
	Field("anchor", dsl.Enum("start", "middle", "end")).
	Field("offset", dsl.Number()).
	Field("orient", dsl.Enum(axisOrients...)).
	Field("style", dsl.Union(dsl.String(), dsl.ArrayOf(dsl.String()))).
	MustBuild()
