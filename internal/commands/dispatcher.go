package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ssokolow/quicktile/internal/cycle"
	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/layout"
	"github.com/ssokolow/quicktile/internal/platform"
	"github.com/ssokolow/quicktile/internal/workarea"
)

// Dispatcher executes named commands against a platform backend. Dispatches
// are serialized under one mutex: commands target the active window and
// each dispatch re-observes live geometry, so overlapping runs would read
// geometry the previous command has not finished changing.
type Dispatcher struct {
	backend platform.Backend
	engine  *Engine
	log     *slog.Logger

	mu  sync.Mutex
	cfg Settings
}

// NewDispatcher wires a dispatcher to a backend. A nil logger discards
// dispatch logging.
func NewDispatcher(backend platform.Backend, cfg Settings, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		backend: backend,
		engine:  NewEngine(nil),
		log:     logger,
		cfg:     cfg,
	}
}

// UpdateSettings swaps in new configuration, typically after a reload.
func (d *Dispatcher) UpdateSettings(cfg Settings) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cfg = cfg
}

// Settings returns the current configuration.
func (d *Dispatcher) Settings() Settings {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cfg
}

// Dispatch runs one command by name. Unknown names fail with
// ErrUnknownCommand before any window is touched. A degenerate work area
// is logged and swallowed: the command did nothing, but nothing is wrong.
func (d *Dispatcher) Dispatch(name string) error {
	run, ok := registry[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	err := run(d)
	switch {
	case errors.Is(err, ErrDegenerateWorkArea):
		d.log.Warn("command skipped", "command", name, "reason", err)
		return nil
	case err != nil:
		d.log.Error("command failed", "command", name, "error", err)
		return err
	}
	d.log.Debug("command completed", "command", name)
	return nil
}

// observation is everything a command needs to know about the world,
// gathered fresh at dispatch time.
type observation struct {
	win      platform.WindowID
	observed geometry.Rect
	monitors []platform.Monitor
	monitor  int
	desktop  geometry.Rect
	struts   []workarea.Strut
	wa       workarea.WorkArea
}

func (d *Dispatcher) observe() (observation, error) {
	var o observation
	var err error

	if o.win, err = d.backend.ActiveWindow(); err != nil {
		return o, fmt.Errorf("no target window: %w", err)
	}
	if o.observed, err = d.backend.CurrentGeometry(o.win); err != nil {
		return o, fmt.Errorf("failed to observe window geometry: %w", err)
	}
	if o.monitors, err = d.backend.Monitors(); err != nil {
		return o, err
	}
	if o.desktop, err = d.backend.DesktopBounds(); err != nil {
		return o, err
	}
	if o.struts, err = d.backend.DesktopStruts(); err != nil {
		return o, err
	}

	o.monitor = d.monitorFor(o.observed, o.monitors)
	m := o.monitors[o.monitor]
	o.wa = workarea.Resolve(m.ID, m.Bounds, o.desktop, o.struts)
	return o, nil
}

// monitorFor picks the monitor containing the window's center. A window
// straddling no monitor targets the monitor under the pointer, and failing
// that the one whose center is closest.
func (d *Dispatcher) monitorFor(window geometry.Rect, monitors []platform.Monitor) int {
	cx, cy := window.Center()
	for i, m := range monitors {
		if m.Bounds.ContainsPoint(cx, cy) {
			return i
		}
	}

	if px, py, err := d.backend.PointerPosition(); err == nil {
		for i, m := range monitors {
			if m.Bounds.ContainsPoint(px, py) {
				return i
			}
		}
	}

	best, bestDist := 0, -1
	for i, m := range monitors {
		mx, my := m.Bounds.Center()
		dx, dy := mx-cx, my-cy
		dist := dx*dx + dy*dy
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

func (d *Dispatcher) runTile(zone layout.Zone) error {
	o, err := d.observe()
	if err != nil {
		return err
	}

	var stored *cycle.State
	if st, ok, err := d.backend.LoadCycleState(o.win); err == nil && ok {
		stored = &st
	}

	rect, state, err := d.engine.ResolveTiling(zone, o.observed, o.wa, stored, d.cfg)
	if err != nil {
		return err
	}

	if err := d.backend.ApplyGeometry(o.win, rect); err != nil {
		// Cycle state intentionally not advanced; a retry resumes here.
		return err
	}
	if err := d.backend.StoreCycleState(o.win, state); err != nil {
		d.log.Warn("cycle state not persisted", "window", o.win, "error", err)
	}
	return nil
}

func (d *Dispatcher) runMove(g geometry.Gravity) error {
	o, err := d.observe()
	if err != nil {
		return err
	}

	rect, err := d.engine.ResolveMovement(g, o.observed, o.wa)
	if err != nil {
		return err
	}
	return d.backend.ApplyGeometry(o.win, rect)
}

func (d *Dispatcher) runMonitorStep(delta int, forceWrap bool) error {
	o, err := d.observe()
	if err != nil {
		return err
	}

	wrap := forceWrap || d.cfg.MovementsWrap
	next := d.engine.ResolveMonitorStep(o.monitor, len(o.monitors), delta, wrap)
	if next == o.monitor {
		return nil
	}

	dest := o.monitors[next]
	destWA := workarea.Resolve(dest.ID, dest.Bounds, o.desktop, o.struts)
	rect, ok := d.engine.MonitorSwitchTarget(o.observed, o.wa, destWA)
	if !ok {
		d.log.Warn("window does not fit destination monitor", "monitor", dest.ID)
		return nil
	}
	return d.backend.ApplyGeometry(o.win, rect)
}

func (d *Dispatcher) runWorkspaceNav(dir NavDirection, send bool) error {
	count, err := d.backend.DesktopCount()
	if err != nil {
		return err
	}
	rows, cols, err := d.backend.DesktopLayout()
	if err != nil {
		return err
	}

	current, err := d.backend.CurrentDesktop()
	if err != nil {
		return err
	}

	var win platform.WindowID
	if send {
		if win, err = d.backend.ActiveWindow(); err != nil {
			return fmt.Errorf("no target window: %w", err)
		}
		// Sticky windows follow the current desktop.
		if wd, err := d.backend.WindowDesktop(win); err == nil && wd >= 0 {
			current = wd
		}
	}

	target, ok := d.engine.ResolveWorkspaceNav(current, count, rows, cols, dir, d.cfg.MovementsWrap)
	if !ok {
		return nil
	}

	if send {
		return d.backend.SendToDesktop(win, target)
	}
	return d.backend.SwitchDesktop(target)
}

func (d *Dispatcher) runMaximize(horiz, vert bool) error {
	win, err := d.backend.ActiveWindow()
	if err != nil {
		return fmt.Errorf("no target window: %w", err)
	}
	return d.backend.ToggleMaximize(win, horiz, vert)
}
