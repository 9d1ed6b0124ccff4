package geometry

// Rect represents a window or monitor region in desktop pixel coordinates.
// All operations return new values; a Rect is never mutated in place.
// Zero or negative extents are legal and denote "no usable space".
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// X2 returns the x coordinate of the right edge (top-left gravity assumed).
func (r Rect) X2() int { return r.X + r.Width }

// Y2 returns the y coordinate of the bottom edge.
func (r Rect) Y2() int { return r.Y + r.Height }

// Area returns the surface area in square pixels.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Empty reports whether the rectangle has no usable extent.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Intersect returns the overlap of two rectangles. The result is degenerate
// (zero width and/or height) when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.X2(), other.X2())
	y2 := min(r.Y2(), other.Y2())

	return Rect{X: x1, Y: y1, Width: max(0, x2-x1), Height: max(0, y2-y1)}
}

// Union returns the bounding box of two rectangles.
func (r Rect) Union(other Rect) Rect {
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.X2(), other.X2())
	y2 := max(r.Y2(), other.Y2())

	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return r.X <= other.X && other.X2() <= r.X2() &&
		r.Y <= other.Y && other.Y2() <= r.Y2()
}

// ContainsPoint reports whether the point (x, y) lies within r.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.X2() && y >= r.Y && y < r.Y2()
}

// Overlaps reports whether the two rectangles share any area.
func (r Rect) Overlaps(other Rect) bool {
	return !r.Intersect(other).Empty()
}

// FromRelative interprets r as relative to origin's top-left corner and
// returns the absolute-coordinate equivalent.
func (r Rect) FromRelative(origin Rect) Rect {
	return Rect{X: r.X + origin.X, Y: r.Y + origin.Y, Width: r.Width, Height: r.Height}
}

// ToRelative interprets r as absolute and returns it relative to origin.
func (r Rect) ToRelative(origin Rect) Rect {
	return Rect{X: r.X - origin.X, Y: r.Y - origin.Y, Width: r.Width, Height: r.Height}
}

// MovedInto returns a copy of r slid the minimum distance so that it lies
// within bounds, preserving width and height. If r is wider or taller than
// bounds, the left/top edges are aligned and the remainder overflows
// right/down; call Intersect afterward to clip.
func (r Rect) MovedInto(bounds Rect) Rect {
	out := r

	if out.X < bounds.X {
		out.X = bounds.X
	} else if out.X2() > bounds.X2() {
		out.X = max(bounds.X2()-out.Width, bounds.X)
	}

	if out.Y < bounds.Y {
		out.Y = bounds.Y
	} else if out.Y2() > bounds.Y2() {
		out.Y = max(bounds.Y2()-out.Height, bounds.Y)
	}

	return out
}

// FromGravity treats r's X and Y as referring to the gravity reference point
// and returns a copy translated so they refer to the top-left corner.
func (r Rect) FromGravity(g Gravity) Rect {
	fx, fy := g.Anchor()
	return Rect{
		X:      r.X - int(float64(r.Width)*fx),
		Y:      r.Y - int(float64(r.Height)*fy),
		Width:  r.Width,
		Height: r.Height,
	}
}

// ToGravity reverses FromGravity: it reinterprets a top-left-anchored
// rectangle so that X and Y refer to the given gravity reference point.
func (r Rect) ToGravity(g Gravity) Rect {
	fx, fy := g.Anchor()
	return Rect{
		X:      r.X + int(float64(r.Width)*fx),
		Y:      r.Y + int(float64(r.Height)*fy),
		Width:  r.Width,
		Height: r.Height,
	}
}

// ClampIndex keeps a 0-based index within [0, n). With wrap it cycles using
// modular arithmetic (negative inputs wrap backward); without it saturates at
// the nearest bound.
func ClampIndex(idx, n int, wrap bool) int {
	if n <= 0 {
		return 0
	}
	if wrap {
		return ((idx % n) + n) % n
	}
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
