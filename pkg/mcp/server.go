// Package mcp exposes the schema registry over the Model Context Protocol
// on stdio: agents can register components, query schemas, synthesize sample
// props and validate instance data.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/propspec/propspec/pkg/registry"
)

const serverVersion = "0.1.0"

// Server implements the MCP server over a schema registry.
type Server struct {
	mcpServer *server.MCPServer
	registry  *registry.Registry
	logger    *slog.Logger
}

// NewServer creates a new MCP server backed by the given registry.
func NewServer(reg *registry.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{registry: reg, logger: logger}

	s.mcpServer = server.NewMCPServer(
		"propspec",
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.loggingMiddleware()),
	)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: analyzeComponentTool(), Handler: s.handleAnalyzeComponent},
		server.ServerTool{Tool: getComponentSchemaTool(), Handler: s.handleGetComponentSchema},
		server.ServerTool{Tool: listComponentsTool(), Handler: s.handleListComponents},
		server.ServerTool{Tool: removeComponentTool(), Handler: s.handleRemoveComponent},
		server.ServerTool{Tool: samplePropsTool(), Handler: s.handleSampleProps},
		server.ServerTool{Tool: adaptPropsTool(), Handler: s.handleAdaptProps},
		server.ServerTool{Tool: validateInstanceTool(), Handler: s.handleValidateInstance},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
