// Package schema defines the normalized, platform-agnostic description of a
// UI component: its properties, events, children support and authoring
// platform. A Schema is the single source of truth consumed downstream for
// input validation, per-platform prop adaptation and sample-data generation.
package schema

// Platform identifies the UI ecosystem a component was authored for.
type Platform string

const (
	PlatformReact       Platform = "react"
	PlatformReactNative Platform = "react-native"
	PlatformVue         Platform = "vue"
	PlatformAngular     Platform = "angular"
	PlatformSvelte      Platform = "svelte"
	PlatformVanilla     Platform = "vanilla"
	PlatformUniversal   Platform = "universal"
)

// Platforms lists every member of the platform enumeration.
func Platforms() []Platform {
	return []Platform{
		PlatformReact,
		PlatformReactNative,
		PlatformVue,
		PlatformAngular,
		PlatformSvelte,
		PlatformVanilla,
		PlatformUniversal,
	}
}

// CanonicalType describes a prop's value shape independent of the source
// language's own type system.
type CanonicalType string

const (
	TypeText      CanonicalType = "text"
	TypeNumber    CanonicalType = "number"
	TypeBoolean   CanonicalType = "boolean"
	TypeArray     CanonicalType = "array"
	TypeObject    CanonicalType = "object"
	TypeFunction  CanonicalType = "function"
	TypeElement   CanonicalType = "element"
	TypeColor     CanonicalType = "color"
	TypeDimension CanonicalType = "dimension"
	TypeResource  CanonicalType = "resource"
)

// CanonicalTypes lists every member of the canonical type vocabulary.
func CanonicalTypes() []CanonicalType {
	return []CanonicalType{
		TypeText,
		TypeNumber,
		TypeBoolean,
		TypeArray,
		TypeObject,
		TypeFunction,
		TypeElement,
		TypeColor,
		TypeDimension,
		TypeResource,
	}
}

// PropertyDefinition describes a single component property.
type PropertyDefinition struct {
	Name         string        `json:"name"`
	Type         CanonicalType `json:"type"`
	Required     bool          `json:"required"`
	Description string `json:"description,omitempty"`
	// DefaultValue holds the declared default, typed by its literal form:
	// quoted literals as string, boolean and numeric literals as bool and
	// float64, anything else as the raw expression text.
	DefaultValue any `json:"defaultValue,omitempty"`
}

// EventDefinition describes a single component event.
type EventDefinition struct {
	Name        string   `json:"name"`
	Parameters  []string `json:"parameters"`
	Description string   `json:"description,omitempty"`
}

// Schema is the normalized structural description of a UI component.
// The caller owns a returned Schema; analysis holds no reference after return.
type Schema struct {
	Name             string               `json:"name"`
	Platform         Platform             `json:"platform"`
	Props            []PropertyDefinition `json:"props"`
	Events           []EventDefinition    `json:"events"`
	SupportsChildren bool                 `json:"supportsChildren"`
	Description      string               `json:"description"`
}
