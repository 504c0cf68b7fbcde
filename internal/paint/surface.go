package paint

import "image/color"

// Surface is a target for drawing primitives. The rasterisation itself
// belongs to the implementation.
type Surface interface {
	FillCircle(center Point, radius float32, c color.RGBA)
	ThickLine(from, to Point, width float32, c color.RGBA)
	FillRect(r Rect, c color.RGBA)
	Circle(center Point, radius float32, c color.RGBA)
	Ellipse(center Point, rx, ry float32, c color.RGBA)
	FillEllipse(center Point, rx, ry float32, c color.RGBA)
	RoundedRect(r Rect, roundness float32, c color.RGBA)
	Icon(name string, at Point)
}

// Canvas is the persistent off-screen surface. Draw calls must be
// bracketed by Begin and End.
type Canvas interface {
	Surface
	Begin()
	End()
	Clear(c color.RGBA)
}

// Palette holds the colours used by the session.
type Palette struct {
	Stroke     color.RGBA // committed strokes and shapes
	Preview    color.RGBA // in-progress shapes
	Background color.RGBA // blank canvas, eraser
	Panel      color.RGBA // toolbar background
	Controls   color.RGBA // slider track and handle
	Highlight  color.RGBA // selected tool button
}

func DefaultPalette() Palette {
	return Palette{
		Stroke:     color.RGBA{255, 0, 0, 255},
		Preview:    color.RGBA{255, 255, 255, 255},
		Background: color.RGBA{0, 0, 0, 255},
		Panel:      color.RGBA{255, 255, 255, 255},
		Controls:   color.RGBA{0, 0, 0, 255},
		Highlight:  color.RGBA{200, 200, 220, 255},
	}
}
