// Package validator checks component instance data against a schema:
// required props present, no unknown props, values conforming to their
// canonical types.
package validator

import (
	"fmt"

	"github.com/propspec/propspec/pkg/schema"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding.
type Issue struct {
	Prop     string   `json:"prop"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ValidateInstance checks instance data against a schema. It returns the
// issues found (empty slice when valid) and never fails: validation of a
// fallback schema simply finds nothing to check.
func ValidateInstance(s schema.Schema, instance map[string]any) []Issue {
	issues := []Issue{}

	byName := make(map[string]schema.PropertyDefinition, len(s.Props))
	for _, p := range s.Props {
		byName[p.Name] = p
	}
	eventNames := make(map[string]bool, len(s.Events))
	for _, e := range s.Events {
		eventNames[e.Name] = true
	}

	for _, p := range s.Props {
		if _, present := instance[p.Name]; !present && p.Required {
			issues = append(issues, Issue{
				Prop:     p.Name,
				Message:  fmt.Sprintf("required prop %q is missing", p.Name),
				Severity: SeverityError,
			})
		}
	}

	for name, value := range instance {
		def, known := byName[name]
		if !known {
			if eventNames[name] {
				continue
			}
			issues = append(issues, Issue{
				Prop:     name,
				Message:  fmt.Sprintf("prop %q is not declared by component %q", name, s.Name),
				Severity: SeverityWarning,
			})
			continue
		}
		if value == nil {
			continue
		}
		if msg := checkType(def.Type, value); msg != "" {
			issues = append(issues, Issue{
				Prop:     name,
				Message:  msg,
				Severity: SeverityError,
			})
		}
	}

	return issues
}

// checkType verifies a value against a canonical type. Returns an empty
// string when the value conforms. JSON-decoded instances are the common
// case, so numbers accept float64 alongside the native integer kinds.
func checkType(t schema.CanonicalType, value any) string {
	switch t {
	case schema.TypeText, schema.TypeColor, schema.TypeDimension, schema.TypeResource:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("expected %s value, got %T", t, value)
		}
	case schema.TypeNumber:
		switch value.(type) {
		case float64, float32, int, int32, int64:
		default:
			return fmt.Sprintf("expected number value, got %T", value)
		}
	case schema.TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("expected boolean value, got %T", value)
		}
	case schema.TypeArray:
		if _, ok := value.([]any); !ok {
			return fmt.Sprintf("expected array value, got %T", value)
		}
	case schema.TypeObject:
		if _, ok := value.(map[string]any); !ok {
			return fmt.Sprintf("expected object value, got %T", value)
		}
	case schema.TypeFunction, schema.TypeElement:
		// Opaque at validation time; any value passes.
	}
	return ""
}
