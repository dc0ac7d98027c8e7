// Package dsl declares the grammar's node kinds and gives them behavior.
//
// Overview
//   - Builder API: declare an entity type with Object(name).Field(...).Required().Default(...).MustBuild().
//   - Constraints: String/Number/Integer/Boolean/Null/Enum/Any, Instance(t), ArrayOf, MapOf, Union and
//     Adapter values (Expression, Table) that are accepted from code but never come out of a document.
//   - Entities: Type.New validates keyword values; Set/Get/Update/MergeAt keep every stored value valid.
//   - Export: Entity.ToDocument finalizes a working copy, validates it and projects it in declaration order.
//   - Import: Type.FromDocument rebuilds an entity; unions resolve to the first alternative whose shape matches.
//   - JSON Schema: Type.JSONSchema projects a type and everything it references.
//
// File layout (roles)
//   - constraint.go: Constraint variants and their descriptions.
//   - field.go, primitives.go, union.go, array.go, adapter.go: value checks per variant.
//   - object_builder.go: Type, objectBuilder/fieldStep and Build/MustBuild.
//   - entity.go: Entity state, copy, equality and merge.
//   - object_core.go: document projection and reconstruction.
//   - finalize.go, validate.go: the two tree walks run before export.
//   - jsonschema.go: JSON Schema projection.
//
// Example (quickstart)
//
//	axis := dsl.Object("Axis").
//	    Field("title", dsl.String()).
//	    Field("grid", dsl.Boolean()).Default(true).
//	    MustBuild()
//
//	a, err := axis.New(dsl.Values{"title": "Price"})
//	if err != nil {
//	    return err
//	}
//	doc, err := a.ToDocument(govega.ExportOpt{})
//	// doc => {"title":"Price","grid":true}
//
// Example (union)
//
//	// The first alternative accepting the value wins.
//	f := dsl.Object("Filter").
//	    Field("filter", dsl.Union(dsl.String(), dsl.Expression())).Required().
//	    MustBuild()
package dsl
