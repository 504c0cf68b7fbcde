// Package paint is the editor core: toolbar, size slider, tool dispatch and
// the per-frame session that decides what is previewed and what is
// committed to the canvas. It draws through the Surface interface and has
// no window system dependency.
package paint

// Point is a window position in pixels.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned screen region.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether p lies strictly inside r. Points on the edge
// are outside.
func (r Rect) Contains(p Point) bool {
	return r.X < p.X && p.X < r.X+r.W &&
		r.Y < p.Y && p.Y < r.Y+r.H
}

// containsInclusive is the edge-inclusive variant used by controls whose
// grab area includes their border.
func (r Rect) containsInclusive(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W &&
		r.Y <= p.Y && p.Y <= r.Y+r.H
}

// spanRect returns the rectangle with opposite corners a and b, both
// included.
func spanRect(a, b Point) Rect {
	return Rect{
		X: min(a.X, b.X),
		Y: min(a.Y, b.Y),
		W: abs(b.X-a.X) + 1,
		H: abs(b.Y-a.Y) + 1,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
