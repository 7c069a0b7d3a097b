// Package adapter maps component instance props to a render target platform:
// declared props pass through, platform-specific spellings are renamed, and
// props the target cannot express are dropped.
package adapter

import (
	"github.com/propspec/propspec/pkg/schema"
)

// Adapter adapts instance props for one target platform.
type Adapter struct {
	platform schema.Platform
	renames  map[string]string
	drops    map[string]bool
}

// ForPlatform returns the adapter for a target platform. Unknown platforms
// get the universal pass-through adapter.
func ForPlatform(p schema.Platform) *Adapter {
	switch p {
	case schema.PlatformReact:
		return &Adapter{
			platform: p,
			renames:  map[string]string{"class": "className", "for": "htmlFor"},
		}
	case schema.PlatformReactNative:
		// Native views have no CSS classes.
		return &Adapter{
			platform: p,
			drops:    map[string]bool{"class": true, "className": true},
		}
	case schema.PlatformVue, schema.PlatformAngular, schema.PlatformSvelte, schema.PlatformVanilla:
		return &Adapter{
			platform: p,
			renames:  map[string]string{"className": "class", "htmlFor": "for"},
		}
	default:
		return &Adapter{platform: schema.PlatformUniversal}
	}
}

// Platform returns the adapter's target platform.
func (a *Adapter) Platform() schema.Platform {
	return a.platform
}

// AdaptProps filters and renames instance props for the target platform.
// Only props declared by the schema (or their platform spellings) pass
// through; event handler entries pass through under their canonical names.
func (a *Adapter) AdaptProps(s schema.Schema, instance map[string]any) map[string]any {
	declared := make(map[string]bool, len(s.Props)+len(s.Events))
	for _, p := range s.Props {
		declared[p.Name] = true
	}
	for _, e := range s.Events {
		declared[e.Name] = true
	}

	out := make(map[string]any, len(instance))
	for name, value := range instance {
		target := name
		if renamed, ok := a.renames[name]; ok {
			target = renamed
		}
		if a.drops[name] || a.drops[target] {
			continue
		}
		if !declared[name] && !declared[target] {
			continue
		}
		out[target] = value
	}
	return out
}
