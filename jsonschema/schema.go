package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Only the keywords the grammar types need are modelled.
type Schema struct {
	// Core
	Schema      string `json:"$schema,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Default     any    `json:"default,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`

	Definitions map[string]*Schema `json:"definitions,omitempty"`
}

// Draft is the dialect declared by exported root schemas.
const Draft = "http://json-schema.org/draft-06/schema#"

// DefinitionRef returns the $ref pointing at a named definition.
func DefinitionRef(name string) string { return "#/definitions/" + name }
