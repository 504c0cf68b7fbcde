package paint

import (
	"image/color"
	"math"
)

type shapeFunc func(s Surface, from, to Point, size int, c color.RGBA)

// shapes maps every tool to its primitive sequence. For freehand tools from
// is the previous motion sample; for the rest it is the press anchor.
var shapes = [toolCount]shapeFunc{
	ToolFreeDraw:      drawSegment,
	ToolLine:          drawLine,
	ToolRect:          drawRect,
	ToolFilledRect:    fillRect,
	ToolCircle:        drawCircle,
	ToolFilledCircle:  fillCircle,
	ToolEllipse:       drawEllipse,
	ToolFilledEllipse: fillEllipse,
	ToolEraser:        drawSegment,
}

// DrawShape issues the primitives for tool t between from and to onto s.
// Unknown tools draw nothing.
func DrawShape(s Surface, t Tool, from, to Point, size int, c color.RGBA) {
	if !t.Valid() || shapes[t] == nil {
		return
	}
	shapes[t](s, from, to, size, c)
}

// drawSegment draws a round-capped stroke piece so that successive motion
// samples join without gaps.
func drawSegment(s Surface, from, to Point, size int, c color.RGBA) {
	r := float32(size) / 2
	s.FillCircle(from, r, c)
	s.ThickLine(from, to, float32(size), c)
	s.FillCircle(to, r, c)
}

func drawLine(s Surface, from, to Point, size int, c color.RGBA) {
	s.ThickLine(from, to, float32(size), c)
}

func drawRect(s Surface, from, to Point, size int, c color.RGBA) {
	w := float32(size)
	s.ThickLine(from, Point{to.X, from.Y}, w, c)
	s.ThickLine(from, Point{from.X, to.Y}, w, c)
	s.ThickLine(Point{from.X, to.Y}, to, w, c)
	s.ThickLine(Point{to.X, from.Y}, to, w, c)
}

func fillRect(s Surface, from, to Point, _ int, c color.RGBA) {
	s.FillRect(spanRect(from, to), c)
}

func drawCircle(s Surface, from, to Point, _ int, c color.RGBA) {
	s.Circle(from, distance(from, to), c)
}

func fillCircle(s Surface, from, to Point, _ int, c color.RGBA) {
	s.FillCircle(from, distance(from, to), c)
}

func drawEllipse(s Surface, from, to Point, _ int, c color.RGBA) {
	s.Ellipse(from, float32(abs(to.X-from.X)), float32(abs(to.Y-from.Y)), c)
}

func fillEllipse(s Surface, from, to Point, _ int, c color.RGBA) {
	s.FillEllipse(from, float32(abs(to.X-from.X)), float32(abs(to.Y-from.Y)), c)
}

func distance(a, b Point) float32 {
	return float32(math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y)))
}
