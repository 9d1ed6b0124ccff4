package layout

import (
	"errors"

	"github.com/ssokolow/quicktile/internal/geometry"
	"github.com/ssokolow/quicktile/internal/workarea"
)

// ErrInvalidConfiguration marks configuration values the engine refuses to
// operate on (non-positive column count, malformed margin percentage).
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Margins holds the configured horizontal and vertical margin percentages.
// Each is measured against the corresponding work-area dimension and applied
// symmetrically to both edges. Margins between adjacent windows are not
// collapsed; that doubling is a deliberate simplification.
type Margins struct {
	XPercent float64
	YPercent float64
}

// Validate rejects percentages outside [0, 100).
func (m Margins) Validate() error {
	if m.XPercent < 0 || m.XPercent >= 100 {
		return ErrInvalidConfiguration
	}
	if m.YPercent < 0 || m.YPercent >= 100 {
		return ErrInvalidConfiguration
	}
	return nil
}

// FrameExtents is the size of the window decorations on each side, used to
// translate between outer (decorated) and client coordinate frames.
type FrameExtents struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Finalize shrinks rect inward by the configured margins and clamps the
// result inside the work area. Margin pixels are computed against the work
// area's dimensions, not the candidate's own, so every preset in a cycle
// sees the same gutter. The returned rectangle is always fully contained in
// the work area; if it did not fit, the clamped size is what the caller
// must fingerprint, not the pre-clamp ideal.
func Finalize(rect geometry.Rect, wa workarea.WorkArea, m Margins) geometry.Rect {
	mx := int(float64(wa.Rect.Width) * m.XPercent / 100)
	my := int(float64(wa.Rect.Height) * m.YPercent / 100)

	out := geometry.Rect{
		X:      rect.X + mx,
		Y:      rect.Y + my,
		Width:  rect.Width - 2*mx,
		Height: rect.Height - 2*my,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}

	return out.MovedInto(wa.Rect).Intersect(wa.Rect)
}

// FrameAdjust translates an outer-frame target rectangle into the client
// coordinates the window manager accepts: the client area is inset by the
// decoration extents so the decorated window lands exactly on the target.
func FrameAdjust(rect geometry.Rect, f FrameExtents) geometry.Rect {
	out := geometry.Rect{
		X:      rect.X + f.Left,
		Y:      rect.Y + f.Top,
		Width:  rect.Width - f.Left - f.Right,
		Height: rect.Height - f.Top - f.Bottom,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}
