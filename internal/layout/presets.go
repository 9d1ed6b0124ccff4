// Package layout generates the ordered preset rectangle sequences that
// window-cycling commands step through, and finalizes chosen rectangles
// (margins, clamping, frame compensation) before they are applied.
package layout

import (
	"fmt"

	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/workarea"
)

// Zone names a tiling target on the monitor.
type Zone string

const (
	ZoneTopLeft     Zone = "top-left"
	ZoneTop         Zone = "top"
	ZoneTopRight    Zone = "top-right"
	ZoneLeft        Zone = "left"
	ZoneCenter      Zone = "center"
	ZoneRight       Zone = "right"
	ZoneBottomLeft  Zone = "bottom-left"
	ZoneBottom      Zone = "bottom"
	ZoneBottomRight Zone = "bottom-right"
)

// Zones lists every tiling zone in stable order. The position of a zone in
// this slice doubles as its persistent ID in stored cycle state.
var Zones = []Zone{
	ZoneTopLeft, ZoneTop, ZoneTopRight,
	ZoneLeft, ZoneCenter, ZoneRight,
	ZoneBottomLeft, ZoneBottom, ZoneBottomRight,
}

// ZoneID returns the stable numeric ID for a zone, or -1 if unknown.
func ZoneID(zone Zone) int {
	for i, z := range Zones {
		if z == zone {
			return i
		}
	}
	return -1
}

func (z Zone) gravity() geometry.Gravity {
	g, err := geometry.ParseGravity(string(z))
	if err != nil {
		return geometry.GravityTopLeft
	}
	return g
}

// fullHeight reports whether presets for this zone span the work area's
// full height rather than half of it.
func (z Zone) fullHeight() bool {
	switch z {
	case ZoneLeft, ZoneCenter, ZoneRight:
		return true
	}
	return false
}

// Presets generates the ordered cycle sequence for a zone: columns+1
// rectangles inside the work area, anchored at the zone's gravity.
//
// Element 0 is the "biggest reasonable" first step: the full-size
// rectangle for the center zone, full width for the top/bottom edges, and
// the half-width variant everywhere else. Elements 1..columns step through
// widths of k/(columns+1) of the work area. The sequence is a pure function
// of its inputs; identical inputs always produce identical output, which is
// what lets a cycle resume across process restarts.
func Presets(zone Zone, columns int, wa workarea.WorkArea) ([]geometry.Rect, error) {
	if columns < 1 {
		return nil, fmt.Errorf("%w: column count must be >= 1, got %d",
			ErrInvalidConfiguration, columns)
	}
	if ZoneID(zone) < 0 {
		return nil, fmt.Errorf("%w: unknown zone %q", ErrInvalidConfiguration, zone)
	}

	area := wa.Rect
	height := area.Height
	if !zone.fullHeight() {
		height = area.Height / 2
	}

	widths := make([]int, 0, columns+1)
	switch zone {
	case ZoneCenter, ZoneTop, ZoneBottom:
		widths = append(widths, area.Width)
	default:
		widths = append(widths, area.Width/2)
	}
	for k := 1; k <= columns; k++ {
		widths = append(widths, area.Width*k/(columns+1))
	}

	grav := zone.gravity()
	seq := make([]geometry.Rect, 0, len(widths))
	for _, width := range widths {
		seq = append(seq, anchored(width, height, grav, area))
	}

	return seq, nil
}

// anchored places a width×height rectangle inside area at the gravity's
// reference position, returning top-left-anchored coordinates.
func anchored(width, height int, g geometry.Gravity, area geometry.Rect) geometry.Rect {
	fx, fy := g.Anchor()
	return geometry.Rect{
		X:      area.X + int(float64(area.Width-width)*fx),
		Y:      area.Y + int(float64(area.Height-height)*fy),
		Width:  width,
		Height: height,
	}
}

// MoveTarget computes the rectangle for a non-cycling movement command:
// the window keeps its size and lands with its gravity reference point on
// the work area's matching reference point, clamped so it never leaves the
// work area.
func MoveTarget(g geometry.Gravity, window geometry.Rect, wa workarea.WorkArea) geometry.Rect {
	anchor := wa.Rect.ToGravity(g)
	target := geometry.Rect{
		X: anchor.X, Y: anchor.Y,
		Width: window.Width, Height: window.Height,
	}.FromGravity(g)
	return target.MovedInto(wa.Rect).Intersect(wa.Rect)
}
