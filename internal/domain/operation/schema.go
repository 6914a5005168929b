package operation

import (
	"fmt"
	"sort"
)

// FieldType is the shallow type of a config value.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeArray   FieldType = "array"
	TypeObject  FieldType = "object"
)

// Validate returns an error for unknown field types.
func (t FieldType) Validate() error {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeArray, TypeObject:
		return nil
	default:
		return fmt.Errorf("unknown field type %q", t)
	}
}

// SchemaNode describes the shape of an output value. Object nodes with
// AdditionalProperties set accept fields they do not declare.
type SchemaNode struct {
	Type                 FieldType
	Description          string
	Properties           map[string]SchemaNode
	Items                *SchemaNode
	AdditionalProperties bool
}

// JSONSchema renders the node as a JSON Schema fragment.
func (n SchemaNode) JSONSchema() map[string]any {
	out := map[string]any{}
	if n.Type != "" {
		out["type"] = string(n.Type)
	}
	if n.Description != "" {
		out["description"] = n.Description
	}
	if len(n.Properties) > 0 {
		props := make(map[string]any, len(n.Properties))
		for k, p := range n.Properties {
			props[k] = p.JSONSchema()
		}
		out["properties"] = props
	}
	if n.Items != nil {
		out["items"] = n.Items.JSONSchema()
	}
	if n.Type == TypeObject {
		out["additionalProperties"] = n.AdditionalProperties
	}
	return out
}

const draft2020 = "https://json-schema.org/draft/2020-12/schema"

// InputSchema renders the descriptor's config schema, including the reserved
// region key. Nested objects are left open; only the top level is typed.
func (d Descriptor) InputSchema() map[string]any {
	props := map[string]any{
		RegionKey: map[string]any{
			"type":        "string",
			"description": "AWS region the call is addressed to.",
		},
	}
	required := []string{RegionKey}

	for _, f := range d.InputFields {
		prop := map[string]any{"type": string(f.Type)}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		switch f.Type {
		case TypeArray:
			if f.Items != "" {
				items := map[string]any{"type": string(f.Items)}
				if f.Items == TypeObject {
					items["additionalProperties"] = true
				}
				prop["items"] = items
			}
		case TypeObject:
			prop["additionalProperties"] = true
		}
		props[f.Key] = prop
		if f.Required {
			required = append(required, f.Key)
		}
	}
	sort.Strings(required[1:])

	return map[string]any{
		"$schema":              draft2020,
		"title":                d.Name,
		"description":          d.Description,
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": true,
	}
}

// OutputSchema renders the declared output shape. The top level always
// accepts unknown fields so newer remote responses pass through.
func (d Descriptor) OutputSchema() map[string]any {
	node := d.OutputShape
	node.Type = TypeObject
	node.AdditionalProperties = true

	out := node.JSONSchema()
	out["$schema"] = draft2020
	out["title"] = d.Name + "Output"
	return out
}
