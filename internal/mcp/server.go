// Package mcp exposes window commands as MCP tools over stdio, so agents
// and editors can drive tiling through the running daemon.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ssokolow/quicktile/internal/ipc"
)

const (
	ServerName    = "quicktile"
	ServerVersion = "0.1.0"
)

// Server is the MCP server. Tool calls are forwarded to the daemon over
// the IPC socket; the daemon stays the single process talking to X11.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates the MCP server and registers its tools.
func NewServer() *Server {
	s := &Server{
		client: ipc.NewClient(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "run_command",
		Description: "Run a window command against the focused window: tile it into a zone (top-left, center, bottom...), move it without resizing (move-to-*), step it across monitors (monitor-next/prev/switch), navigate or send it between workspaces (workspace-go-*/workspace-send-*), or toggle maximization. Repeating a zone command cycles the window through that zone's preset sizes.",
	}, s.handleRunCommand)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_commands",
		Description: "List every recognized command name.",
	}, s.handleListCommands)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_monitors",
		Description: "List the connected monitors with their bounds.",
	}, s.handleGetMonitors)
}
