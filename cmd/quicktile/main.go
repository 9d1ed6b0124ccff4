package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ssokolow/quicktile/internal/commands"
	"github.com/ssokolow/quicktile/internal/config"
	"github.com/ssokolow/quicktile/internal/hotkeys"
	"github.com/ssokolow/quicktile/internal/ipc"
	"github.com/ssokolow/quicktile/internal/layout"
	"github.com/ssokolow/quicktile/internal/platform"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		if len(os.Args) > 2 && (os.Args[2] == "help" || os.Args[2] == "-h" || os.Args[2] == "--help") {
			fmt.Fprintln(os.Stdout, "Usage: quicktile daemon")
			os.Exit(0)
		}
		if len(os.Args) > 2 {
			fmt.Fprintln(os.Stderr, "daemon takes no arguments")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Usage: quicktile daemon")
			os.Exit(2)
		}
		runDaemon()
	case "run":
		os.Exit(runRun(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "commands":
		os.Exit(runCommands(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: quicktile <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the hotkey daemon (foreground)")
	fmt.Fprintln(w, "  run <name>...       Run one or more window commands")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "  monitors            List connected monitors")
	fmt.Fprintln(w, "  commands            List recognized command names")
	fmt.Fprintln(w, "  reload              Ask the daemon to re-read its configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config bindings     List the effective key bindings")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'quicktile <command> --help' for command-specific options.")
}

func settingsFromConfig(cfg *config.Config) commands.Settings {
	return commands.Settings{
		Columns: cfg.ColumnCount,
		Margins: layout.Margins{
			XPercent: cfg.MarginXPercent,
			YPercent: cfg.MarginYPercent,
		},
		MovementsWrap: cfg.Wrap(),
	}
}

// runRun executes commands through the daemon when one is listening, and
// falls back to a direct display connection for daemonless use.
func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: quicktile run <command> [<command>...]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Runs each named command in order against the focused window.")
		fmt.Fprintln(os.Stderr, "See 'quicktile commands' for the full list of names.")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	names := fs.Args()
	if len(names) == 0 {
		fs.Usage()
		return 2
	}

	for _, name := range names {
		if !commands.Known(name) {
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
			return 2
		}
	}

	return dispatchBatch(ipc.NewClient(), names, runStandalone)
}

// commandRunner is the slice of the IPC client dispatchBatch needs.
type commandRunner interface {
	RunCommand(name string) error
}

// dispatchBatch executes names in order through the daemon. Only an
// unreachable daemon falls back to standalone execution, and only for the
// names not yet executed; a failure the daemon reported is a failed
// command, never silently retried.
func dispatchBatch(client commandRunner, names []string, standalone func([]string) int) int {
	for i, name := range names {
		err := client.RunCommand(name)
		if err == nil {
			continue
		}
		if errors.Is(err, ipc.ErrDaemonUnavailable) {
			return standalone(names[i:])
		}
		fmt.Fprintf(os.Stderr, "Command %q failed: %v\n", name, err)
		return 1
	}
	return 0
}

// runStandalone executes commands over a fresh X11 connection, for use
// without a running daemon (e.g. bindings owned by the window manager).
func runStandalone(names []string) int {
	cfg, err := config.Load(commands.Known)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to display: %v\n", err)
		return 1
	}
	defer backend.Disconnect()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	dispatcher := commands.NewDispatcher(backend, settingsFromConfig(cfg), logger)

	for _, name := range names {
		if err := dispatcher.Dispatch(name); err != nil {
			fmt.Fprintf(os.Stderr, "Command %q failed: %v\n", name, err)
			return 1
		}
	}
	return 0
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: quicktile status")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	client := ipc.NewClient()
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	fmt.Printf("Daemon running (uptime %ds)\n", status.UptimeSeconds)
	if status.ActiveWindow != 0 {
		fmt.Printf("Active window: 0x%x at %d,%d size %dx%d\n",
			status.ActiveWindow,
			status.WindowX, status.WindowY,
			status.WindowWidth, status.WindowHeight)
		fmt.Printf("Frame extents: left=%d right=%d top=%d bottom=%d\n",
			status.FrameLeft, status.FrameRight, status.FrameTop, status.FrameBottom)
	}
	return 0
}

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: quicktile monitors")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Prefer the daemon; fall back to asking the display directly.
	client := ipc.NewClient()
	if data, err := client.GetMonitors(); err == nil {
		for _, m := range data.Monitors {
			fmt.Printf("%d: %s %dx%d+%d+%d\n", m.ID, m.Name, m.Width, m.Height, m.X, m.Y)
		}
		return 0
	}

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to display: %v\n", err)
		return 1
	}
	defer backend.Disconnect()

	monitors, err := backend.Monitors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get monitors: %v\n", err)
		return 1
	}
	for _, m := range monitors {
		fmt.Printf("%d: %s %dx%d+%d+%d\n", m.ID, m.Name, m.Bounds.Width, m.Bounds.Height, m.Bounds.X, m.Bounds.Y)
	}
	return 0
}

func runCommands(args []string) int {
	fs := flag.NewFlagSet("commands", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: quicktile commands")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	for _, name := range commands.List() {
		fmt.Println(name)
	}
	return 0
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: quicktile reload")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	client := ipc.NewClient()
	if err := client.Reload(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Println("Reload requested")
	return 0
}

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: quicktile config <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  validate    Load the config and report problems")
	fmt.Fprintln(w, "  print       Print the effective configuration as YAML")
	fmt.Fprintln(w, "  bindings    List the effective key bindings")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "validate":
		path, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		if _, err := config.LoadFromPath(path, commands.Known); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			return 1
		}
		fmt.Printf("OK: %s\n", path)
		return 0
	case "print":
		cfg, err := config.Load(commands.Known)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		out, err := config.Dump(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		fmt.Print(out)
		return 0
	case "bindings":
		cfg, err := config.Load(commands.Known)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		for _, line := range cfg.Bindings() {
			fmt.Println(line)
		}
		return 0
	case "help", "-h", "--help":
		printConfigUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}

func runDaemon() {
	// Load configuration
	cfg, err := config.Load(commands.Known)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded (columns: %d, bindings: %d)", cfg.ColumnCount, len(cfg.Keys))

	// Connect to display server
	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Disconnect()

	dispatchLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	dispatcher := commands.NewDispatcher(backend, settingsFromConfig(cfg), dispatchLogger)

	// Setup hotkey handler
	conn := backend.Conn()
	hotkeyHandler := hotkeys.NewHandler(conn.XUtil, conn.Root, dispatcher.Dispatch)
	if err := hotkeyHandler.RegisterBindings(cfg.ModMask, cfg.Keys); err != nil {
		log.Fatalf("Failed to register hotkeys: %v", err)
	}
	log.Printf("Registered %d key bindings under %s", len(cfg.Keys), cfg.ModMask)

	// Create config reload channel
	reloadChan := make(chan struct{}, 1)

	// Start IPC server
	ipcServer, err := ipc.NewServer(dispatcher, backend, reloadChan)
	if err != nil {
		log.Fatalf("Failed to create IPC server: %v", err)
	}
	if err := ipcServer.Start(); err != nil {
		log.Fatalf("Failed to start IPC server: %v", err)
	}
	defer ipcServer.Stop()

	log.Println("quicktile daemon started successfully")

	reload := func() {
		newCfg, err := config.Load(commands.Known)
		if err != nil {
			log.Printf("Config reload failed: %v", err)
			return
		}
		dispatcher.UpdateSettings(settingsFromConfig(newCfg))
		hotkeyHandler.Detach()
		if err := hotkeyHandler.RegisterBindings(newCfg.ModMask, newCfg.Keys); err != nil {
			log.Printf("Failed to re-register hotkeys: %v", err)
		}
		log.Println("Config reloaded successfully")
	}

	// Setup signal handlers
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	// Handle signals and config reloads
	go func() {
		for {
			select {
			case sig := <-sigCh:
				switch sig {
				case syscall.SIGHUP:
					log.Println("Received SIGHUP, reloading config...")
					reload()
				case os.Interrupt, syscall.SIGTERM:
					log.Println("Shutting down quicktile daemon...")
					ipcServer.Stop()
					os.Exit(0)
				}
			case <-reloadChan:
				reload()
			}
		}
	}()

	// Start event loop (blocking)
	log.Println("Entering event loop...")
	conn.EventLoop()
}
