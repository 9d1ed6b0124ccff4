// Package workarea computes the usable rectangle of a monitor by subtracting
// panel strut reservations from its bounds.
//
// Struts are expressed against the bounding box of the whole desktop, not
// against individual monitors, so a panel on a short monitor in a mixed-height
// setup validly reserves space on the taller monitor's dead zone too. Each
// strut is therefore projected onto each monitor independently.
package workarea

import (
	"github.com/ssokolow/quicktile/internal/geometry"
)

// Strut is a panel's reservation of desktop space, one depth per desktop
// edge plus the span along that edge it applies to (_NET_WM_STRUT_PARTIAL).
type Strut struct {
	Left   int
	Right  int
	Top    int
	Bottom int

	LeftStartY   int
	LeftEndY     int
	RightStartY  int
	RightEndY    int
	TopStartX    int
	TopEndX      int
	BottomStartX int
	BottomEndX   int
}

// FullSpan widens a plain _NET_WM_STRUT-style reservation (depths only) so
// its spans cover the whole desktop edge.
func FullSpan(left, right, top, bottom int, desktop geometry.Rect) Strut {
	return Strut{
		Left: left, Right: right, Top: top, Bottom: bottom,
		LeftStartY: desktop.Y, LeftEndY: desktop.Y2() - 1,
		RightStartY: desktop.Y, RightEndY: desktop.Y2() - 1,
		TopStartX: desktop.X, TopEndX: desktop.X2() - 1,
		BottomStartX: desktop.X, BottomEndX: desktop.X2() - 1,
	}
}

// edgeRects resolves the strut into absolute rectangles relative to the
// desktop bounding box, one per non-zero edge reservation.
func (s Strut) edgeRects(desktop geometry.Rect) []geometry.Rect {
	var rects []geometry.Rect

	if s.Left > 0 {
		rects = append(rects, geometry.Rect{
			X: desktop.X, Y: s.LeftStartY,
			Width: s.Left, Height: s.LeftEndY - s.LeftStartY + 1,
		})
	}
	if s.Right > 0 {
		rects = append(rects, geometry.Rect{
			X: desktop.X2() - s.Right, Y: s.RightStartY,
			Width: s.Right, Height: s.RightEndY - s.RightStartY + 1,
		})
	}
	if s.Top > 0 {
		rects = append(rects, geometry.Rect{
			X: s.TopStartX, Y: desktop.Y,
			Width: s.TopEndX - s.TopStartX + 1, Height: s.Top,
		})
	}
	if s.Bottom > 0 {
		rects = append(rects, geometry.Rect{
			X: s.BottomStartX, Y: desktop.Y2() - s.Bottom,
			Width: s.BottomEndX - s.BottomStartX + 1, Height: s.Bottom,
		})
	}

	return rects
}

// WorkArea is the usable rectangle of one monitor.
type WorkArea struct {
	Monitor int
	Rect    geometry.Rect
}

// Degenerate reports whether no window can legally be placed in this area.
func (w WorkArea) Degenerate() bool { return w.Rect.Empty() }

// Resolve computes the usable area of a monitor by cutting away every strut
// rectangle that overlaps its bounds. The result can be degenerate; callers
// must check Degenerate before placing windows. Never cached: panel layout
// can change between invocations.
func Resolve(monitorID int, monitor, desktop geometry.Rect, struts []Strut) WorkArea {
	usable := monitor

	for _, strut := range struts {
		for _, reserved := range strut.edgeRects(desktop) {
			usable = cut(usable, reserved)
		}
	}

	return WorkArea{Monitor: monitorID, Rect: usable}
}

// cut shrinks usable along one axis so it no longer overlaps reserved.
// The edge to trim is the one whose removal loses the least area.
func cut(usable, reserved geometry.Rect) geometry.Rect {
	if !usable.Overlaps(reserved) {
		return usable
	}

	candidates := []geometry.Rect{
		// Keep the part right of the reservation.
		{X: reserved.X2(), Y: usable.Y, Width: usable.X2() - reserved.X2(), Height: usable.Height},
		// Keep the part left of the reservation.
		{X: usable.X, Y: usable.Y, Width: reserved.X - usable.X, Height: usable.Height},
		// Keep the part below the reservation.
		{X: usable.X, Y: reserved.Y2(), Width: usable.Width, Height: usable.Y2() - reserved.Y2()},
		// Keep the part above the reservation.
		{X: usable.X, Y: usable.Y, Width: usable.Width, Height: reserved.Y - usable.Y},
	}

	best := geometry.Rect{X: usable.X, Y: usable.Y}
	for _, c := range candidates {
		if c.Width < 0 {
			c.Width = 0
		}
		if c.Height < 0 {
			c.Height = 0
		}
		if c.Area() > best.Area() {
			best = c
		}
	}

	return best
}
