package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

// canonicalEventRE matches the canonical event naming convention:
// "on" followed by an uppercase-led remainder.
var canonicalEventRE = regexp.MustCompile(`^on[A-Z]`)

// NormalizeEventName rewrites ecosystem-specific event-attribute spellings to
// the canonical on+Name form:
//
//	on:click   -> onClick   (svelte)
//	@click     -> onClick   (vue shorthand)
//	v-on:click -> onClick   (vue)
//	(click)    -> onClick   (angular)
//
// Names not in a delimited form are returned unchanged.
func NormalizeEventName(name string) string {
	name = strings.TrimSpace(name)

	var remainder string
	switch {
	case strings.HasPrefix(name, "on:"):
		remainder = name[len("on:"):]
	case strings.HasPrefix(name, "v-on:"):
		remainder = name[len("v-on:"):]
	case strings.HasPrefix(name, "@"):
		remainder = name[len("@"):]
	case strings.HasPrefix(name, "(") && strings.HasSuffix(name, ")") && len(name) > 2:
		remainder = name[1 : len(name)-1]
	default:
		return name
	}

	// Event modifiers ("click.prevent", "keydown.enter") are not part of the
	// event name.
	if dot := strings.IndexByte(remainder, '.'); dot > 0 {
		remainder = remainder[:dot]
	}
	if remainder == "" {
		return name
	}

	runes := []rune(remainder)
	runes[0] = unicode.ToUpper(runes[0])
	return "on" + string(runes)
}

// IsEventName reports whether a candidate name qualifies as an event: it
// matches on+UppercaseLed after normalizing ecosystem spellings. Classified
// events are removed from prop consideration entirely.
func IsEventName(name string) bool {
	return canonicalEventRE.MatchString(NormalizeEventName(name))
}
