// Package sample synthesizes representative instance data from a schema,
// one value per canonical type. Used for previews and synthetic tests.
package sample

import (
	"github.com/propspec/propspec/pkg/schema"
)

// Props generates a sample value for every prop in the schema. A declared
// defaultValue wins over the canonical-type sample.
func Props(s schema.Schema) map[string]any {
	return generate(s, false)
}

// RequiredProps generates sample values for required props only.
func RequiredProps(s schema.Schema) map[string]any {
	return generate(s, true)
}

func generate(s schema.Schema, requiredOnly bool) map[string]any {
	out := make(map[string]any, len(s.Props))
	for _, p := range s.Props {
		if requiredOnly && !p.Required {
			continue
		}
		if p.DefaultValue != nil {
			out[p.Name] = p.DefaultValue
			continue
		}
		out[p.Name] = Value(p.Type)
	}
	return out
}

// Value returns a representative sample value for a canonical type.
func Value(t schema.CanonicalType) any {
	switch t {
	case schema.TypeNumber:
		return 42
	case schema.TypeBoolean:
		return true
	case schema.TypeArray:
		return []any{}
	case schema.TypeObject:
		return map[string]any{}
	case schema.TypeFunction:
		return "() => {}"
	case schema.TypeElement:
		return "<span>sample</span>"
	case schema.TypeColor:
		return "#336699"
	case schema.TypeDimension:
		return "16px"
	case schema.TypeResource:
		return "https://example.com/asset.png"
	default:
		return "sample text"
	}
}
