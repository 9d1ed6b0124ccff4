package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleRunCommand(_ context.Context, _ *mcpsdk.CallToolRequest, args RunCommandInput) (*mcpsdk.CallToolResult, RunCommandOutput, error) {
	if args.Name == "" {
		return nil, RunCommandOutput{}, fmt.Errorf("no command name given")
	}

	if err := s.client.RunCommand(args.Name); err != nil {
		return nil, RunCommandOutput{}, fmt.Errorf("command %q failed: %w", args.Name, err)
	}

	return nil, RunCommandOutput{Command: args.Name, Status: "ok"}, nil
}

func (s *Server) handleListCommands(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListCommandsInput) (*mcpsdk.CallToolResult, ListCommandsOutput, error) {
	names, err := s.client.ListCommands()
	if err != nil {
		return nil, ListCommandsOutput{}, err
	}
	return nil, ListCommandsOutput{Commands: names}, nil
}

func (s *Server) handleGetMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetMonitorsInput) (*mcpsdk.CallToolResult, GetMonitorsOutput, error) {
	monitors, err := s.client.GetMonitors()
	if err != nil {
		return nil, GetMonitorsOutput{}, err
	}

	infos := make([]MonitorInfo, len(monitors.Monitors))
	for i, m := range monitors.Monitors {
		infos[i] = MonitorInfo{
			ID: m.ID, Name: m.Name,
			X: m.X, Y: m.Y, Width: m.Width, Height: m.Height,
		}
	}
	return nil, GetMonitorsOutput{Monitors: infos}, nil
}
