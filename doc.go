// Package govega provides the shared vocabulary of the govega object model:
//
// - Document: the ordered, JSON-compatible wire form of an entity graph
// - Undefined: the sentinel for fields that are not set (distinct from null)
// - A stable error model (ValidationError, UnknownFieldError, Issues, ...)
//   with JSON Pointer paths
// - Collaborator interfaces for tabular data (Table) and expressions (Expression)
// - Process-wide configuration (row ceiling, rendering toggle, logger)
//
// Design policy:
// - Keep only shared types in the root package; the entity machinery lives
//   in dsl/, the grammar catalogue in vegalite/, the composites in chart/.
// - Encodings of a Document (JSON, YAML, MessagePack) live in codec/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	c, _ := chart.NewChart("data/cars.json")
//	_ = c.MarkPoint(nil)
//	_ = c.Encode(dsl.Values{"x": "Horsepower:Q", "y": "Miles_per_Gallon:Q"})
//	text, err := c.ToText(govega.ExportOpt{})
//
//	back, diag, err := chart.FromText(text)
package govega
