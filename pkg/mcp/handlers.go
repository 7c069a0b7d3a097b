package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/propspec/propspec/pkg/adapter"
	"github.com/propspec/propspec/pkg/sample"
	"github.com/propspec/propspec/pkg/schema"
	"github.com/propspec/propspec/pkg/validator"
)

func (s *Server) handleAnalyzeComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	source, ok := args["source"].(string)
	if !ok {
		return mcp.NewToolResultError("source parameter is required"), nil
	}

	sch := s.registry.Register(name, source)
	return jsonResult(sch)
}

func (s *Server) handleGetComponentSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := req.GetArguments()["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	sch, found := s.registry.Get(name)
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("component %q is not registered", name)), nil
	}
	return jsonResult(sch)
}

func (s *Server) handleListComponents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"components": s.registry.List(),
		"total":      s.registry.Len(),
	})
}

func (s *Server) handleRemoveComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := req.GetArguments()["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	if !s.registry.Remove(name) {
		return mcp.NewToolResultError(fmt.Sprintf("component %q is not registered", name)), nil
	}
	return jsonResult(map[string]any{"removed": name})
}

func (s *Server) handleSampleProps(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	sch, found := s.registry.Get(name)
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("component %q is not registered", name)), nil
	}

	requiredOnly, _ := args["required_only"].(bool)
	var props map[string]any
	if requiredOnly {
		props = sample.RequiredProps(sch)
	} else {
		props = sample.Props(sch)
	}
	return jsonResult(map[string]any{"component": name, "props": props})
}

func (s *Server) handleAdaptProps(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	platform, ok := args["platform"].(string)
	if !ok || platform == "" {
		return mcp.NewToolResultError("platform parameter is required"), nil
	}
	instance, ok := args["props"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("props parameter must be an object"), nil
	}

	sch, found := s.registry.Get(name)
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("component %q is not registered", name)), nil
	}

	a := adapter.ForPlatform(schema.Platform(platform))
	return jsonResult(map[string]any{
		"component": name,
		"platform":  a.Platform(),
		"props":     a.AdaptProps(sch, instance),
	})
}

func (s *Server) handleValidateInstance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	instance, ok := args["props"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("props parameter must be an object"), nil
	}

	sch, found := s.registry.Get(name)
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("component %q is not registered", name)), nil
	}

	issues := validator.ValidateInstance(sch, instance)
	return jsonResult(map[string]any{
		"component": name,
		"valid":     len(issues) == 0,
		"issues":    issues,
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
