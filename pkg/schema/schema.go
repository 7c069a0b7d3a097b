package schema

import (
	"encoding/json"
	"fmt"
)

// FallbackDescription marks a schema produced by the fallback path.
const FallbackDescription = "fallback"

// Fallback returns the minimal valid Schema for a component whose analysis
// could not complete normally. Slices are non-nil so they serialize as [].
func Fallback(name string) Schema {
	return Schema{
		Name:             name,
		Platform:         PlatformUniversal,
		Props:            []PropertyDefinition{},
		Events:           []EventDefinition{},
		SupportsChildren: false,
		Description:      FallbackDescription,
	}
}

// IsFallback reports whether a schema was produced by the fallback path.
func (s *Schema) IsFallback() bool {
	return s.Description == FallbackDescription
}

var (
	validPlatforms = func() map[Platform]bool {
		m := make(map[Platform]bool, len(Platforms()))
		for _, p := range Platforms() {
			m[p] = true
		}
		return m
	}()
	validTypes = func() map[CanonicalType]bool {
		m := make(map[CanonicalType]bool, len(CanonicalTypes()))
		for _, t := range CanonicalTypes() {
			m[t] = true
		}
		return m
	}()
)

// Validate checks the schema for structural consistency.
// Returns a slice of validation errors (empty slice if valid).
func (s *Schema) Validate() []error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, fmt.Errorf("schema name is required"))
	}
	if !validPlatforms[s.Platform] {
		errs = append(errs, fmt.Errorf("schema %q: unknown platform %q", s.Name, s.Platform))
	}

	propNames := make(map[string]bool, len(s.Props))
	for i, p := range s.Props {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("schema %q props[%d]: name is required", s.Name, i))
			continue
		}
		if propNames[p.Name] {
			errs = append(errs, fmt.Errorf("schema %q: duplicate prop name %q", s.Name, p.Name))
			continue
		}
		propNames[p.Name] = true
		if !validTypes[p.Type] {
			errs = append(errs, fmt.Errorf("schema %q prop %q: unknown canonical type %q", s.Name, p.Name, p.Type))
		}
	}

	eventNames := make(map[string]bool, len(s.Events))
	for i, e := range s.Events {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("schema %q events[%d]: name is required", s.Name, i))
			continue
		}
		if eventNames[e.Name] {
			errs = append(errs, fmt.Errorf("schema %q: duplicate event name %q", s.Name, e.Name))
			continue
		}
		eventNames[e.Name] = true
		if propNames[e.Name] {
			errs = append(errs, fmt.Errorf("schema %q: name %q appears in both props and events", s.Name, e.Name))
		}
	}

	return errs
}

// Clone returns a deep copy of the schema. Registries hand out clones so
// callers can mutate results without corrupting stored schemas.
func (s *Schema) Clone() Schema {
	out := *s
	out.Props = make([]PropertyDefinition, len(s.Props))
	copy(out.Props, s.Props)
	out.Events = make([]EventDefinition, len(s.Events))
	for i, e := range s.Events {
		params := make([]string, len(e.Parameters))
		copy(params, e.Parameters)
		e.Parameters = params
		out.Events[i] = e
	}
	return out
}

// MarshalIndent renders the schema as indented JSON in the wire shape.
func (s *Schema) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
