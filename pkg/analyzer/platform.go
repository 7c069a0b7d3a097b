package analyzer

import (
	"strings"

	"github.com/propspec/propspec/pkg/schema"
)

// platformRule is one ordered detection rule: the rule matches when any of
// its markers occurs in the source text.
type platformRule struct {
	platform schema.Platform
	markers  []string
}

// sourceRules is the ordered, non-scoring rule list for source text.
// First match wins. Precedence: native-mobile runtime primitives, then react
// state/effect idioms, then vue component-definition idioms, then angular
// decorator markers, then svelte reactive-template markers. Detection is
// deterministic: the slice order fixes evaluation order.
var sourceRules = []platformRule{
	{schema.PlatformReactNative, []string{
		"react-native",
		"<View", "<Text", "<TouchableOpacity", "<FlatList", "<ScrollView",
		"StyleSheet.create",
	}},
	{schema.PlatformReact, []string{
		"useState(", "useEffect(", "useCallback(", "useMemo(", "useRef(",
		"React.", "from \"react\"", "from 'react'",
	}},
	{schema.PlatformVue, []string{
		"defineComponent(", "defineProps", "defineEmits",
		"<template", "v-bind", "v-model", "v-if", "v-for",
	}},
	{schema.PlatformAngular, []string{
		"@Component(", "@Input(", "@Output(",
		"ngOnInit", "ngOnDestroy", "templateUrl",
	}},
	{schema.PlatformSvelte, []string{
		"svelte", "export let ", "$$props", " on:",
	}},
}

// DetectPlatform applies the ordered rule list to source text and returns
// the first matching platform, or vanilla when nothing matches.
func DetectPlatform(sourceText string) schema.Platform {
	for _, rule := range sourceRules {
		for _, marker := range rule.markers {
			if strings.Contains(sourceText, marker) {
				return rule.platform
			}
		}
	}
	return schema.PlatformVanilla
}

// runtimeRule is one ordered detection rule over a runtime shape descriptor:
// the rule matches when any of its fields is present.
type runtimeRule struct {
	platform schema.Platform
	fields   []string
}

// runtimeRules inspects distinguishing structural fields instead of text
// substrings: an element-type marker, a render/template/setup method, a
// selector/template-URL field, a render-fragment field.
var runtimeRules = []runtimeRule{
	{schema.PlatformReact, []string{"$$typeof", "elementType"}},
	{schema.PlatformVue, []string{"render", "template", "setup"}},
	{schema.PlatformAngular, []string{"selector", "templateUrl"}},
	{schema.PlatformSvelte, []string{"$$render", "fragment"}},
}

// DetectRuntimePlatform inspects a runtime component reference. Only
// map-shaped descriptors carry structural markers; absence of all markers
// (or a non-map reference) yields universal.
func DetectRuntimePlatform(ref any) schema.Platform {
	desc, ok := ref.(map[string]any)
	if !ok || desc == nil {
		return schema.PlatformUniversal
	}
	for _, rule := range runtimeRules {
		for _, field := range rule.fields {
			if _, present := desc[field]; present {
				return rule.platform
			}
		}
	}
	return schema.PlatformUniversal
}
