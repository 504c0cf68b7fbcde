package paint

import "image/color"

const sliderHandleWidth = 12

// Slider maps a horizontal cursor position onto an integer range.
type Slider struct {
	Bounds Rect
	Min    int
	Max    int
	Value  int
}

// UpdateValue moves the slider to follow cursorX. A drag that is not yet
// in progress only starts when the cursor is inside the slider; once it is
// in progress it keeps tracking the cursor anywhere until the caller stops
// passing dragging. It returns the new value and whether the drag is live.
func (sl *Slider) UpdateValue(cursorX, cursorY int, dragging bool) (int, bool) {
	if !dragging && !sl.Bounds.containsInclusive(Point{cursorX, cursorY}) {
		return sl.Value, false
	}
	if sl.Max <= sl.Min || sl.Bounds.W <= 0 {
		sl.Value = sl.Min
		return sl.Value, true
	}
	v := sl.Min + (cursorX-sl.Bounds.X)*(sl.Max-sl.Min)/sl.Bounds.W
	sl.Value = clamp(v, sl.Min, sl.Max)
	return sl.Value, true
}

// SetValue stores v clamped into [Min, Max].
func (sl *Slider) SetValue(v int) {
	if sl.Max < sl.Min {
		sl.Value = sl.Min
		return
	}
	sl.Value = clamp(v, sl.Min, sl.Max)
}

// handleX is the left edge of the handle for the current value.
func (sl *Slider) handleX() int {
	if sl.Max <= sl.Min {
		return sl.Bounds.X
	}
	return sl.Bounds.X + (sl.Value-sl.Min)*sl.Bounds.W/(sl.Max-sl.Min)
}

// Draw renders the track and handle.
func (sl *Slider) Draw(s Surface, c color.RGBA) {
	b := sl.Bounds
	mid := b.Y + b.H/2
	s.ThickLine(Point{b.X, mid}, Point{b.X + b.W, mid}, 2, c)
	s.RoundedRect(Rect{X: sl.handleX(), Y: b.Y, W: sliderHandleWidth, H: b.H}, 0.5, c)
}
