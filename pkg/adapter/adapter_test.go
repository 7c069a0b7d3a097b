package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propspec/propspec/pkg/schema"
)

func cardSchema() schema.Schema {
	return schema.Schema{
		Name:     "Card",
		Platform: schema.PlatformReact,
		Props: []schema.PropertyDefinition{
			{Name: "title", Type: schema.TypeText, Required: true},
			{Name: "className", Type: schema.TypeText},
			{Name: "class", Type: schema.TypeText},
		},
		Events: []schema.EventDefinition{
			{Name: "onClick", Parameters: []string{}},
		},
	}
}

func TestAdaptProps_ReactRenames(t *testing.T) {
	a := ForPlatform(schema.PlatformReact)

	out := a.AdaptProps(cardSchema(), map[string]any{
		"title": "Hello",
		"class": "card--wide",
	})

	assert.Equal(t, map[string]any{
		"title":     "Hello",
		"className": "card--wide",
	}, out)
}

func TestAdaptProps_DomPlatformsRenameBack(t *testing.T) {
	for _, p := range []schema.Platform{
		schema.PlatformVue,
		schema.PlatformAngular,
		schema.PlatformSvelte,
		schema.PlatformVanilla,
	} {
		a := ForPlatform(p)
		out := a.AdaptProps(cardSchema(), map[string]any{"className": "x"})
		assert.Equal(t, map[string]any{"class": "x"}, out, "platform %s", p)
	}
}

func TestAdaptProps_ReactNativeDropsClasses(t *testing.T) {
	a := ForPlatform(schema.PlatformReactNative)

	out := a.AdaptProps(cardSchema(), map[string]any{
		"title":     "Hello",
		"className": "x",
		"class":     "y",
	})

	assert.Equal(t, map[string]any{"title": "Hello"}, out)
}

func TestAdaptProps_FiltersUndeclared(t *testing.T) {
	a := ForPlatform(schema.PlatformReact)

	out := a.AdaptProps(cardSchema(), map[string]any{
		"title":   "Hello",
		"mystery": 1,
	})

	assert.Equal(t, map[string]any{"title": "Hello"}, out)
}

func TestAdaptProps_EventsPassThrough(t *testing.T) {
	a := ForPlatform(schema.PlatformReact)

	out := a.AdaptProps(cardSchema(), map[string]any{"onClick": "handler"})
	assert.Equal(t, map[string]any{"onClick": "handler"}, out)
}

func TestForPlatform_UnknownIsPassThrough(t *testing.T) {
	a := ForPlatform(schema.PlatformUniversal)
	assert.Equal(t, schema.PlatformUniversal, a.Platform())

	out := a.AdaptProps(cardSchema(), map[string]any{"title": "x", "mystery": 1})
	assert.Equal(t, map[string]any{"title": "x"}, out)
}
