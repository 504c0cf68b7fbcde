package paint

import (
	"fmt"
	"image/color"
)

// op is one recorded primitive call.
type op struct {
	kind   string
	a, b   Point
	r1, r2 float32
	rect   Rect
	c      color.RGBA
	icon   string
}

func (o op) String() string {
	return fmt.Sprintf("%s %v %v %.1f %.1f %v", o.kind, o.a, o.b, o.r1, o.r2, o.rect)
}

// recorder is a Surface and Canvas that remembers what was drawn. Clear
// drops everything drawn before it, like a real canvas.
type recorder struct {
	ops    []op
	begins int
	ends   int
	clears int
}

func (r *recorder) add(o op) { r.ops = append(r.ops, o) }

func (r *recorder) FillCircle(center Point, radius float32, c color.RGBA) {
	r.add(op{kind: "fillcircle", a: center, r1: radius, c: c})
}

func (r *recorder) ThickLine(from, to Point, width float32, c color.RGBA) {
	r.add(op{kind: "line", a: from, b: to, r1: width, c: c})
}

func (r *recorder) FillRect(rect Rect, c color.RGBA) {
	r.add(op{kind: "fillrect", rect: rect, c: c})
}

func (r *recorder) Circle(center Point, radius float32, c color.RGBA) {
	r.add(op{kind: "circle", a: center, r1: radius, c: c})
}

func (r *recorder) Ellipse(center Point, rx, ry float32, c color.RGBA) {
	r.add(op{kind: "ellipse", a: center, r1: rx, r2: ry, c: c})
}

func (r *recorder) FillEllipse(center Point, rx, ry float32, c color.RGBA) {
	r.add(op{kind: "fillellipse", a: center, r1: rx, r2: ry, c: c})
}

func (r *recorder) RoundedRect(rect Rect, roundness float32, c color.RGBA) {
	r.add(op{kind: "roundedrect", rect: rect, r1: roundness, c: c})
}

func (r *recorder) Icon(name string, at Point) {
	r.add(op{kind: "icon", a: at, icon: name})
}

func (r *recorder) Begin() { r.begins++ }
func (r *recorder) End()   { r.ends++ }

func (r *recorder) Clear(c color.RGBA) {
	r.clears++
	r.ops = nil
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) kinds() []string {
	out := make([]string, 0, len(r.ops))
	for _, o := range r.ops {
		out = append(out, o.kind)
	}
	return out
}

func (r *recorder) reset() { r.ops = nil }
