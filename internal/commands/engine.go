// Package commands maps command names to window actions. The Engine holds
// the pure resolution logic (geometry in, geometry out); the Dispatcher
// wraps it with window observation, application, and cycle-state storage
// against a platform backend.
package commands

import (
	"errors"
	"fmt"

	"github.com/ssokolow/quicktile/internal/cycle"
	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/layout"
	"github.com/ssokolow/quicktile/internal/workarea"
)

// ErrDegenerateWorkArea means struts consumed the target monitor entirely;
// there is nowhere legal to place a window, so the command becomes a no-op.
var ErrDegenerateWorkArea = errors.New("work area has no usable space")

// ErrUnknownCommand is returned for command names outside the vocabulary.
var ErrUnknownCommand = errors.New("unknown command")

// Settings are the configuration values the engine consumes per invocation.
type Settings struct {
	Columns       int
	Margins       layout.Margins
	MovementsWrap bool
}

// DefaultSettings mirrors the stock configuration.
func DefaultSettings() Settings {
	return Settings{Columns: 3, MovementsWrap: true}
}

// Engine resolves commands into target rectangles and desktop/monitor
// indices. Every method is a pure function of its arguments; the Engine
// itself only carries the cycle scorer.
type Engine struct {
	Scorer cycle.Scorer
}

// NewEngine returns an Engine using the given scorer, or the default
// tolerance scorer when nil.
func NewEngine(scorer cycle.Scorer) *Engine {
	if scorer == nil {
		scorer = cycle.DefaultScorer()
	}
	return &Engine{Scorer: scorer}
}

// ResolveTiling runs one cycle step for a zone: it generates the preset
// sequence for the freshly resolved work area, picks the next index from
// the stored state (or a nearest-match when the state no longer describes
// the observed window), and finalizes the chosen preset. The returned
// state records the finalized rectangle so the next invocation compares
// against what was actually applied.
func (e *Engine) ResolveTiling(zone layout.Zone, observed geometry.Rect, wa workarea.WorkArea, stored *cycle.State, cfg Settings) (geometry.Rect, cycle.State, error) {
	if wa.Degenerate() {
		return geometry.Rect{}, cycle.State{}, fmt.Errorf("monitor %d: %w", wa.Monitor, ErrDegenerateWorkArea)
	}

	seq, err := layout.Presets(zone, cfg.Columns, wa)
	if err != nil {
		return geometry.Rect{}, cycle.State{}, err
	}

	zoneID := layout.ZoneID(zone)
	idx := cycle.NextIndex(stored, zoneID, seq, observed, e.Scorer)
	final := layout.Finalize(seq[idx], wa, cfg.Margins)

	return final, cycle.State{Zone: zoneID, Index: idx, LastApplied: final}, nil
}

// ResolveMovement places the window at a gravity position without resizing
// and without touching cycle state.
func (e *Engine) ResolveMovement(g geometry.Gravity, observed geometry.Rect, wa workarea.WorkArea) (geometry.Rect, error) {
	if wa.Degenerate() {
		return geometry.Rect{}, fmt.Errorf("monitor %d: %w", wa.Monitor, ErrDegenerateWorkArea)
	}
	return layout.MoveTarget(g, observed, wa), nil
}

// ResolveMonitorStep returns the index of the monitor delta steps away from
// current, wrapping or saturating per wrap.
func (e *Engine) ResolveMonitorStep(current, count, delta int, wrap bool) int {
	return geometry.ClampIndex(current+delta, count, wrap)
}

// MonitorSwitchTarget computes where the window lands on the destination
// monitor: the same offset relative to the destination work area that it
// had relative to the source one. A window whose top-left would fall
// outside the destination is refused (ok=false); one whose top-left fits
// but whose far corner does not is shrunk to fit.
func (e *Engine) MonitorSwitchTarget(window geometry.Rect, from, to workarea.WorkArea) (geometry.Rect, bool) {
	if to.Degenerate() {
		return geometry.Rect{}, false
	}

	target := window.ToRelative(from.Rect).FromRelative(to.Rect)
	if !to.Rect.ContainsPoint(target.X, target.Y) {
		return geometry.Rect{}, false
	}
	if !to.Rect.Contains(target) {
		target = target.Intersect(to.Rect)
	}
	return target, true
}

// NavDirection is a workspace navigation direction.
type NavDirection int

const (
	NavNext NavDirection = iota
	NavPrev
	NavUp
	NavDown
	NavLeft
	NavRight
)

// ResolveWorkspaceNav returns the desktop one step away from current in the
// given direction. Next/prev walk the flat desktop list; the grid
// directions consult the pager layout (rows x cols, row-major). ok is
// false when the step goes nowhere, either because wrapping is off at an
// edge or because the grid position is past the last desktop of a ragged
// final row.
func (e *Engine) ResolveWorkspaceNav(current, count, rows, cols int, dir NavDirection, wrap bool) (int, bool) {
	if count < 1 || current < 0 || current >= count {
		return current, false
	}

	switch dir {
	case NavNext:
		t := geometry.ClampIndex(current+1, count, wrap)
		return t, t != current
	case NavPrev:
		t := geometry.ClampIndex(current-1, count, wrap)
		return t, t != current
	}

	if rows < 1 || cols < 1 {
		return current, false
	}

	row, col := current/cols, current%cols
	switch dir {
	case NavLeft:
		col = geometry.ClampIndex(col-1, cols, wrap)
	case NavRight:
		col = geometry.ClampIndex(col+1, cols, wrap)
	case NavUp:
		row = geometry.ClampIndex(row-1, rows, wrap)
	case NavDown:
		row = geometry.ClampIndex(row+1, rows, wrap)
	}

	target := row*cols + col
	if target >= count {
		return current, false
	}
	return target, target != current
}
