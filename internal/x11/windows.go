package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/layout"
)

const cyclePosProperty = "_QUICKTILE_CYCLE_POS"

// WindowGeometry returns the window's outer frame geometry in root
// coordinates.
func (c *Connection) WindowGeometry(windowID xproto.Window) (geometry.Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to get window geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to translate coordinates: %w", err)
	}

	rect := geometry.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}

	extents, err := c.FrameExtents(windowID)
	if err == nil {
		rect.X -= extents.Left
		rect.Y -= extents.Top
		rect.Width += extents.Left + extents.Right
		rect.Height += extents.Top + extents.Bottom
	}
	return rect, nil
}

// FrameExtents reads _NET_FRAME_EXTENTS for the window. Windows without the
// property report zero extents.
func (c *Connection) FrameExtents(windowID xproto.Window) (FrameExtents, error) {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID)
	if err != nil || extents == nil {
		return FrameExtents{}, err
	}
	return FrameExtents{
		Left:   extents.Left,
		Right:  extents.Right,
		Top:    extents.Top,
		Bottom: extents.Bottom,
	}, nil
}

// FrameExtents holds window decoration sizes in pixels.
type FrameExtents struct {
	Left, Right, Top, Bottom int
}

// MoveResize places the window's outer frame at the given root-coordinate
// rectangle. The window is unmaximized first since maximized windows ignore
// configure requests under most window managers.
func (c *Connection) MoveResize(windowID xproto.Window, rect geometry.Rect) error {
	c.Unmaximize(windowID)

	// EWMH moveresize positions the frame but sizes the client area.
	w, h := rect.Width, rect.Height
	if extents, err := c.FrameExtents(windowID); err == nil {
		client := layout.FrameAdjust(rect, layout.FrameExtents(extents))
		w, h = client.Width, client.Height
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	err := ewmh.MoveresizeWindow(c.XUtil, windowID, rect.X, rect.Y, w, h)
	if err != nil {
		win := xwindow.New(c.XUtil, windowID)
		return win.WMMoveResize(rect.X, rect.Y, w, h)
	}
	return nil
}

// Unmaximize clears both maximization states so a subsequent move-resize
// takes effect.
func (c *Connection) Unmaximize(windowID xproto.Window) {
	ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateRemove, "_NET_WM_STATE_MAXIMIZED_VERT")
	ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateRemove, "_NET_WM_STATE_MAXIMIZED_HORZ")
}

// ToggleMaximize toggles the requested maximization axes.
func (c *Connection) ToggleMaximize(windowID xproto.Window, horiz, vert bool) error {
	if horiz && vert {
		return ewmh.WmStateReqExtra(c.XUtil, windowID, ewmh.StateToggle,
			"_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT", 2)
	}
	if horiz {
		return ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateToggle, "_NET_WM_STATE_MAXIMIZED_HORZ")
	}
	if vert {
		return ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateToggle, "_NET_WM_STATE_MAXIMIZED_VERT")
	}
	return nil
}

// ReadCyclePos reads the window's stored cycle position property. ok is
// false when the property is absent or malformed.
func (c *Connection) ReadCyclePos(windowID xproto.Window) (vals []uint, ok bool, err error) {
	prop, err := xprop.GetProperty(c.XUtil, windowID, cyclePosProperty)
	if err != nil || prop == nil {
		// Absence is reported as a routine error by the X server.
		return nil, false, nil
	}
	nums, err := xprop.PropValNums(prop, nil)
	if err != nil {
		return nil, false, nil
	}
	return nums, true, nil
}

// WriteCyclePos stores the window's cycle position property.
func (c *Connection) WriteCyclePos(windowID xproto.Window, vals []uint) error {
	return xprop.ChangeProp32(c.XUtil, windowID, cyclePosProperty, "CARDINAL", vals...)
}
