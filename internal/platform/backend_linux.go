//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/ssokolow/quicktile/internal/cycle"
	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/layout"
	"github.com/ssokolow/quicktile/internal/workarea"
	"github.com/ssokolow/quicktile/internal/x11"
)

// LinuxBackend wraps an existing X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Conn exposes the underlying X11 connection for event-loop wiring.
func (b *LinuxBackend) Conn() *x11.Connection {
	return b.conn
}

func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	win, err := b.conn.GetActiveWindow()
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return WindowID(win), nil
}

func (b *LinuxBackend) CurrentGeometry(win WindowID) (geometry.Rect, error) {
	return b.conn.WindowGeometry(xproto.Window(win))
}

func (b *LinuxBackend) FrameExtents(win WindowID) (layout.FrameExtents, error) {
	extents, err := b.conn.FrameExtents(xproto.Window(win))
	if err != nil {
		return layout.FrameExtents{}, err
	}
	return layout.FrameExtents{
		Left:   extents.Left,
		Right:  extents.Right,
		Top:    extents.Top,
		Bottom: extents.Bottom,
	}, nil
}

func (b *LinuxBackend) Monitors() ([]Monitor, error) {
	mons, err := b.conn.GetMonitors()
	if err != nil {
		return nil, err
	}
	out := make([]Monitor, len(mons))
	for i, m := range mons {
		out[i] = Monitor{ID: m.ID, Name: m.Name, Bounds: m.Bounds}
	}
	return out, nil
}

// DesktopBounds is the bounding box of all monitors, with the root window
// geometry as a fallback when randr reports nothing.
func (b *LinuxBackend) DesktopBounds() (geometry.Rect, error) {
	if mons, err := b.Monitors(); err == nil && len(mons) > 0 {
		return DesktopBoundingBox(mons), nil
	}
	return b.conn.RootBounds()
}

func (b *LinuxBackend) DesktopStruts() ([]workarea.Strut, error) {
	desktop, err := b.DesktopBounds()
	if err != nil {
		return nil, err
	}
	return b.conn.GatherStruts(desktop)
}

func (b *LinuxBackend) PointerPosition() (int, int, error) {
	return b.conn.PointerPosition()
}

// Cycle state is stored on the window itself as six 32-bit cardinals:
// zone id, preset index, then the last applied x, y, width, height.
// Coordinates can be negative on multi-head setups so they round-trip
// through int32 two's complement.
const cycleStateWords = 6

func (b *LinuxBackend) LoadCycleState(win WindowID) (cycle.State, bool, error) {
	vals, ok, err := b.conn.ReadCyclePos(xproto.Window(win))
	if err != nil || !ok {
		return cycle.State{}, false, err
	}
	if len(vals) != cycleStateWords {
		// Property written by an older version; treat as absent.
		return cycle.State{}, false, nil
	}
	return cycle.State{
		Zone:  int(int32(vals[0])),
		Index: int(int32(vals[1])),
		LastApplied: geometry.Rect{
			X:      int(int32(vals[2])),
			Y:      int(int32(vals[3])),
			Width:  int(int32(vals[4])),
			Height: int(int32(vals[5])),
		},
	}, true, nil
}

func (b *LinuxBackend) StoreCycleState(win WindowID, state cycle.State) error {
	vals := []uint{
		uint(uint32(int32(state.Zone))),
		uint(uint32(int32(state.Index))),
		uint(uint32(int32(state.LastApplied.X))),
		uint(uint32(int32(state.LastApplied.Y))),
		uint(uint32(int32(state.LastApplied.Width))),
		uint(uint32(int32(state.LastApplied.Height))),
	}
	return b.conn.WriteCyclePos(xproto.Window(win), vals)
}

func (b *LinuxBackend) ApplyGeometry(win WindowID, rect geometry.Rect) error {
	if err := b.conn.MoveResize(xproto.Window(win), rect); err != nil {
		return fmt.Errorf("%w: %v", ErrPlacementRejected, err)
	}
	return nil
}

func (b *LinuxBackend) ToggleMaximize(win WindowID, horiz, vert bool) error {
	return b.conn.ToggleMaximize(xproto.Window(win), horiz, vert)
}

func (b *LinuxBackend) CurrentDesktop() (int, error) {
	return b.conn.GetCurrentDesktop()
}

func (b *LinuxBackend) DesktopCount() (int, error) {
	return b.conn.GetDesktopCount()
}

func (b *LinuxBackend) DesktopLayout() (rows, cols int, err error) {
	return b.conn.GetDesktopLayout()
}

func (b *LinuxBackend) SwitchDesktop(desktop int) error {
	return b.conn.SwitchDesktop(desktop)
}

func (b *LinuxBackend) WindowDesktop(win WindowID) (int, error) {
	return b.conn.GetWindowDesktop(xproto.Window(win))
}

func (b *LinuxBackend) SendToDesktop(win WindowID, desktop int) error {
	return b.conn.SetWindowDesktop(xproto.Window(win), desktop)
}
