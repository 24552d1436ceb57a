package revrseai

import (
	"fmt"
	"sort"
	"strings"
)

// Schema describes the shape of an endpoint's input or output. It is a
// subset of the OpenAPI schema object, produced by the service and read-only
// on the client.
type Schema struct {
	// Type is the JSON type: "object", "array", "string", "integer",
	// "number", or "boolean". Empty means unconstrained.
	Type string `json:"type,omitempty"`

	// Format qualifies the type, e.g. "uuid" or "date-time".
	Format string `json:"format,omitempty"`

	// Title is an optional display title.
	Title string `json:"title,omitempty"`

	// Description explains the field.
	Description string `json:"description,omitempty"`

	// Nullable marks the value as allowed to be null.
	Nullable bool `json:"nullable,omitempty"`

	// Enum lists the allowed values, if constrained.
	Enum []any `json:"enum,omitempty"`

	// Example is a service-provided example value.
	Example any `json:"example,omitempty"`

	// Properties maps field names to their schemas for object types.
	Properties map[string]*Schema `json:"properties,omitempty"`

	// Required lists the property names that must be supplied.
	Required []string `json:"required,omitempty"`

	// Items is the element schema for array types.
	Items *Schema `json:"items,omitempty"`
}

// ExampleData builds example data matching the schema: the declared example
// or first enum value where present, otherwise a zero-ish placeholder per
// type. Object examples include every declared property.
func (s *Schema) ExampleData() any {
	if s == nil {
		return nil
	}
	if s.Example != nil {
		return s.Example
	}
	if len(s.Enum) > 0 {
		return s.Enum[0]
	}

	switch {
	case s.Type == "object" || len(s.Properties) > 0:
		example := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			example[name] = prop.ExampleData()
		}
		return example
	case s.Type == "array":
		if s.Items != nil {
			return []any{s.Items.ExampleData()}
		}
		return []any{}
	case s.Type == "string":
		return "..."
	case s.Type == "integer":
		return 0
	case s.Type == "number":
		return 0.0
	case s.Type == "boolean":
		return false
	}
	return nil
}

// formatType renders the type for display in documentation tables.
func (s *Schema) formatType() string {
	typeStr := s.Type
	if typeStr == "" {
		typeStr = "any"
	}
	if s.Format != "" {
		typeStr = fmt.Sprintf("%s (%s)", typeStr, s.Format)
	}
	if s.Type == "array" && s.Items != nil {
		typeStr = fmt.Sprintf("array[%s]", s.Items.formatType())
	}
	if s.Nullable {
		typeStr += "?"
	}
	return typeStr
}

// markdownTable renders the schema's properties as a markdown table.
// Properties are emitted in sorted field-name order so the rendered
// documentation is byte-identical across runs.
func (s *Schema) markdownTable() string {
	if s == nil || len(s.Properties) == 0 {
		return "_No fields_"
	}

	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("| Field | Type | Required | Description |\n")
	b.WriteString("|-------|------|----------|-------------|\n")
	for _, name := range names {
		prop := s.Properties[name]
		req := "No"
		if required[name] {
			req = "Yes"
		}
		desc := prop.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", name, prop.formatType(), req, desc)
	}
	return strings.TrimRight(b.String(), "\n")
}
