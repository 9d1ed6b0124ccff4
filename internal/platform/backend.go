// Package platform abstracts the window-manipulation collaborator the
// command engine talks to. The engine only computes geometry; everything
// that observes or mutates real windows goes through a Backend.
package platform

import (
	"errors"

	"github.com/ssokolow/quicktile/internal/cycle"
	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/layout"
	"github.com/ssokolow/quicktile/internal/workarea"
)

// ErrPlacementRejected is returned by ApplyGeometry when the window manager
// refuses a move/resize request. Terminal for that invocation; cycle state
// must not be advanced so a retry resumes from the same point.
var ErrPlacementRejected = errors.New("window manager rejected placement")

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Monitor describes a physical display's full bounds (panels included).
type Monitor struct {
	ID     int
	Name   string
	Bounds geometry.Rect
}

// Backend is the window-manipulation collaborator contract.
//
// Geometry accessors must return fresh observations on every call, never
// values cached from an earlier command in the same batch; stale reads are
// what make rapid successive commands step on each other.
type Backend interface {
	ActiveWindow() (WindowID, error)
	CurrentGeometry(win WindowID) (geometry.Rect, error)
	FrameExtents(win WindowID) (layout.FrameExtents, error)

	Monitors() ([]Monitor, error)
	DesktopBounds() (geometry.Rect, error)
	DesktopStruts() ([]workarea.Strut, error)

	// PointerPosition is the fallback for locating a window straddling no
	// monitor: the command targets the monitor under the pointer instead.
	PointerPosition() (x, y int, err error)

	// Cycle state round-trips through whatever per-window storage the
	// platform offers (an X property on X11). A false second return means
	// no state is stored.
	LoadCycleState(win WindowID) (cycle.State, bool, error)
	StoreCycleState(win WindowID, state cycle.State) error

	ApplyGeometry(win WindowID, rect geometry.Rect) error
	ToggleMaximize(win WindowID, horiz, vert bool) error

	CurrentDesktop() (int, error)
	DesktopCount() (int, error)
	DesktopLayout() (rows, cols int, err error)
	SwitchDesktop(desktop int) error
	WindowDesktop(win WindowID) (int, error)
	SendToDesktop(win WindowID, desktop int) error
}

// DesktopBoundingBox returns the bounding box of all monitors. Strut spans
// are measured against this box, not against any single monitor.
func DesktopBoundingBox(monitors []Monitor) geometry.Rect {
	if len(monitors) == 0 {
		return geometry.Rect{}
	}
	box := monitors[0].Bounds
	for _, m := range monitors[1:] {
		box = box.Union(m.Bounds)
	}
	return box
}
