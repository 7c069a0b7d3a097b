package analyzer

import (
	"strings"

	"github.com/propspec/propspec/pkg/schema"
)

// typeRule maps raw type-annotation substrings to one canonical type.
type typeRule struct {
	canonical  schema.CanonicalType
	substrings []string
}

// typeRules are evaluated in order. More specific shapes (function arrows,
// array brackets, element types) come first so they are not shadowed by a
// general match occurring inside a generic type expression, e.g. the
// "string" inside "Array<string>".
var typeRules = []typeRule{
	{schema.TypeFunction, []string{"=>", "function", "callback", "handler"}},
	{schema.TypeArray, []string{"[]", "array", "list<", "set<", "readonlyarray"}},
	{schema.TypeElement, []string{
		"reactnode", "reactelement", "jsx.element", "vnode",
		"templateref", "htmlelement", "element", "node", "component", "slot",
	}},
	{schema.TypeColor, []string{"color", "colour"}},
	{schema.TypeDimension, []string{"dimension", "dimen"}},
	{schema.TypeResource, []string{"imagesource", "resource", "asset", "uri", "url"}},
	{schema.TypeBoolean, []string{"boolean", "bool"}},
	{schema.TypeNumber, []string{"number", "integer", "float", "double", "numeric"}},
	{schema.TypeObject, []string{"record<", "map<", "object", "{"}},
}

// MapType normalizes raw type-annotation text to a canonical type using
// ordered case-insensitive substring tests. Unmatched or empty input
// defaults to text. Pure function: no side effects, no traversal state.
func MapType(raw string) schema.CanonicalType {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return schema.TypeText
	}
	for _, rule := range typeRules {
		for _, sub := range rule.substrings {
			if strings.Contains(t, sub) {
				return rule.canonical
			}
		}
	}
	return schema.TypeText
}
