package mcp

// RunCommandInput is the input for the run_command tool.
type RunCommandInput struct {
	Name string `json:"name" jsonschema:"required,The command name, e.g. top-left or move-to-center or monitor-next. Use list_commands to enumerate."`
}

// RunCommandOutput is the output for the run_command tool.
type RunCommandOutput struct {
	Command string `json:"command"`
	Status  string `json:"status"`
}

// ListCommandsInput is the input for the list_commands tool.
type ListCommandsInput struct{}

// ListCommandsOutput is the output for the list_commands tool.
type ListCommandsOutput struct {
	Commands []string `json:"commands"`
}

// GetMonitorsInput is the input for the get_monitors tool.
type GetMonitorsInput struct{}

// MonitorInfo describes one monitor.
type MonitorInfo struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// GetMonitorsOutput is the output for the get_monitors tool.
type GetMonitorsOutput struct {
	Monitors []MonitorInfo `json:"monitors"`
}
