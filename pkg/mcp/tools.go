package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func analyzeComponentTool() mcp.Tool {
	return mcp.NewTool(
		"analyze_component",
		mcp.WithDescription("Analyze UI-component source text, register the extracted schema, and return it. Analysis never fails: broken sources yield a fallback schema."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name the schema is keyed by (e.g. 'Button')")),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Component source text (TypeScript, JavaScript or JSX)")),
	)
}

func getComponentSchemaTool() mcp.Tool {
	return mcp.NewTool(
		"get_component_schema",
		mcp.WithDescription("Return the stored schema for a registered component."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Registered component name")),
	)
}

func listComponentsTool() mcp.Tool {
	return mcp.NewTool(
		"list_components",
		mcp.WithDescription("List the names of all registered components."),
	)
}

func removeComponentTool() mcp.Tool {
	return mcp.NewTool(
		"remove_component",
		mcp.WithDescription("Remove a component's schema from the registry."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Registered component name")),
	)
}

func samplePropsTool() mcp.Tool {
	return mcp.NewTool(
		"sample_props",
		mcp.WithDescription("Synthesize representative sample prop values for a registered component."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Registered component name")),
		mcp.WithBoolean("required_only",
			mcp.Description("Generate values only for required props (default false)")),
	)
}

func adaptPropsTool() mcp.Tool {
	return mcp.NewTool(
		"adapt_props",
		mcp.WithDescription("Adapt instance prop data for a render target platform: declared props pass through, platform spellings are renamed (class/className, for/htmlFor), inexpressible props are dropped."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Registered component name")),
		mcp.WithString("platform",
			mcp.Required(),
			mcp.Description("Target platform (react, react-native, vue, angular, svelte, vanilla)")),
		mcp.WithObject("props",
			mcp.Required(),
			mcp.Description("Instance prop data to adapt")),
	)
}

func validateInstanceTool() mcp.Tool {
	return mcp.NewTool(
		"validate_instance",
		mcp.WithDescription("Validate instance prop data against a registered component's schema. Returns the issues found."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Registered component name")),
		mcp.WithObject("props",
			mcp.Required(),
			mcp.Description("Instance prop data to validate")),
	)
}
