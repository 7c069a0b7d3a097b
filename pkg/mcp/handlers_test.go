package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propspec/propspec/pkg/analyzer"
	"github.com/propspec/propspec/pkg/parser"
	"github.com/propspec/propspec/pkg/registry"
	"github.com/propspec/propspec/pkg/schema"
)

const buttonSource = `
interface Props {
  label: string;
  onClick?: () => void;
}
export function Button({ label, onClick }: Props) {
  return <button onClick={onClick}>{label}</button>;
}
`

func testServer(t *testing.T) *Server {
	t.Helper()
	pm := parser.NewManager(nil)
	t.Cleanup(func() { _ = pm.Close() })

	reg, err := registry.New(analyzer.New(pm, nil), 0, nil)
	require.NoError(t, err)
	return NewServer(reg, nil)
}

func callTool(t *testing.T, s *Server, req mcp.CallToolRequest) *mcp.CallToolResult {
	t.Helper()
	var handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

	switch req.Params.Name {
	case "analyze_component":
		handler = s.handleAnalyzeComponent
	case "get_component_schema":
		handler = s.handleGetComponentSchema
	case "list_components":
		handler = s.handleListComponents
	case "remove_component":
		handler = s.handleRemoveComponent
	case "sample_props":
		handler = s.handleSampleProps
	case "adapt_props":
		handler = s.handleAdaptProps
	case "validate_instance":
		handler = s.handleValidateInstance
	default:
		t.Fatalf("unknown tool: %s", req.Params.Name)
	}

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

func TestHandleAnalyzeComponent(t *testing.T) {
	s := testServer(t)

	result := callTool(t, s, makeRequest("analyze_component", map[string]any{
		"name":   "Button",
		"source": buttonSource,
	}))
	assert.False(t, result.IsError)

	var sch schema.Schema
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &sch))
	assert.Equal(t, "Button", sch.Name)
	require.Len(t, sch.Props, 1)
	assert.Equal(t, "label", sch.Props[0].Name)
	require.Len(t, sch.Events, 1)
	assert.Equal(t, "onClick", sch.Events[0].Name)
}

func TestHandleAnalyzeComponent_MissingArgs(t *testing.T) {
	s := testServer(t)

	result := callTool(t, s, makeRequest("analyze_component", map[string]any{"source": "x"}))
	assert.True(t, result.IsError)

	result = callTool(t, s, makeRequest("analyze_component", map[string]any{"name": "X"}))
	assert.True(t, result.IsError)
}

func TestHandleGetComponentSchema_RoundTrip(t *testing.T) {
	s := testServer(t)

	registered := callTool(t, s, makeRequest("analyze_component", map[string]any{
		"name":   "Button",
		"source": buttonSource,
	}))
	fetched := callTool(t, s, makeRequest("get_component_schema", map[string]any{
		"name": "Button",
	}))

	assert.JSONEq(t, resultJSON(t, registered), resultJSON(t, fetched))
}

func TestHandleGetComponentSchema_Unknown(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("get_component_schema", map[string]any{"name": "Ghost"}))
	assert.True(t, result.IsError)
}

func TestHandleListAndRemove(t *testing.T) {
	s := testServer(t)

	callTool(t, s, makeRequest("analyze_component", map[string]any{
		"name": "Button", "source": buttonSource,
	}))

	result := callTool(t, s, makeRequest("list_components", nil))
	var listing struct {
		Components []string `json:"components"`
		Total      int      `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &listing))
	assert.Equal(t, []string{"Button"}, listing.Components)
	assert.Equal(t, 1, listing.Total)

	result = callTool(t, s, makeRequest("remove_component", map[string]any{"name": "Button"}))
	assert.False(t, result.IsError)

	result = callTool(t, s, makeRequest("remove_component", map[string]any{"name": "Button"}))
	assert.True(t, result.IsError)
}

func TestHandleSampleProps(t *testing.T) {
	s := testServer(t)

	callTool(t, s, makeRequest("analyze_component", map[string]any{
		"name": "Button", "source": buttonSource,
	}))

	result := callTool(t, s, makeRequest("sample_props", map[string]any{"name": "Button"}))
	assert.False(t, result.IsError)

	var resp struct {
		Component string         `json:"component"`
		Props     map[string]any `json:"props"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &resp))
	assert.Equal(t, "Button", resp.Component)
	assert.Equal(t, "sample text", resp.Props["label"])
}

func TestHandleAdaptProps(t *testing.T) {
	s := testServer(t)

	callTool(t, s, makeRequest("analyze_component", map[string]any{
		"name": "Button", "source": buttonSource,
	}))

	result := callTool(t, s, makeRequest("adapt_props", map[string]any{
		"name":     "Button",
		"platform": "react",
		"props":    map[string]any{"label": "Save", "unknown": 1},
	}))
	assert.False(t, result.IsError)

	var resp struct {
		Component string         `json:"component"`
		Platform  string         `json:"platform"`
		Props     map[string]any `json:"props"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &resp))
	assert.Equal(t, "react", resp.Platform)
	assert.Equal(t, map[string]any{"label": "Save"}, resp.Props)

	result = callTool(t, s, makeRequest("adapt_props", map[string]any{
		"name": "Button", "props": map[string]any{},
	}))
	assert.True(t, result.IsError)

	result = callTool(t, s, makeRequest("adapt_props", map[string]any{
		"name": "Missing", "platform": "vue", "props": map[string]any{},
	}))
	assert.True(t, result.IsError)
}

func TestHandleValidateInstance(t *testing.T) {
	s := testServer(t)

	callTool(t, s, makeRequest("analyze_component", map[string]any{
		"name": "Button", "source": buttonSource,
	}))

	result := callTool(t, s, makeRequest("validate_instance", map[string]any{
		"name":  "Button",
		"props": map[string]any{"label": "Save"},
	}))
	var resp struct {
		Valid  bool             `json:"valid"`
		Issues []map[string]any `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &resp))
	assert.True(t, resp.Valid)

	result = callTool(t, s, makeRequest("validate_instance", map[string]any{
		"name":  "Button",
		"props": map[string]any{},
	}))
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &resp))
	assert.False(t, resp.Valid)
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "label", resp.Issues[0]["prop"])
}
