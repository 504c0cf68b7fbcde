package main

import (
	"fmt"
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/mathpad/internal/paint"
)

func vec(p paint.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

func rect(r paint.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}
}

// rlSurface draws straight into whatever raylib target is active.
type rlSurface struct {
	icons map[string]rl.Texture2D
}

func (s *rlSurface) FillCircle(center paint.Point, radius float32, c color.RGBA) {
	rl.DrawCircleV(vec(center), radius, rl.Color(c))
}

func (s *rlSurface) ThickLine(from, to paint.Point, width float32, c color.RGBA) {
	rl.DrawLineEx(vec(from), vec(to), width, rl.Color(c))
}

func (s *rlSurface) FillRect(r paint.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rect(r), rl.Color(c))
}

func (s *rlSurface) Circle(center paint.Point, radius float32, c color.RGBA) {
	rl.DrawCircleLines(int32(center.X), int32(center.Y), radius, rl.Color(c))
}

func (s *rlSurface) Ellipse(center paint.Point, rx, ry float32, c color.RGBA) {
	rl.DrawEllipseLines(int32(center.X), int32(center.Y), rx, ry, rl.Color(c))
}

func (s *rlSurface) FillEllipse(center paint.Point, rx, ry float32, c color.RGBA) {
	rl.DrawEllipse(int32(center.X), int32(center.Y), rx, ry, rl.Color(c))
}

func (s *rlSurface) RoundedRect(r paint.Rect, roundness float32, c color.RGBA) {
	rl.DrawRectangleRounded(rect(r), roundness, 8, rl.Color(c))
}

func (s *rlSurface) Icon(name string, at paint.Point) {
	tex, ok := s.icons[name]
	if !ok {
		return
	}
	rl.DrawTexture(tex, int32(at.X), int32(at.Y), rl.White)
}

// rlCanvas is the persistent drawing, kept in a render texture.
type rlCanvas struct {
	rlSurface
	target rl.RenderTexture2D
}

func newCanvas(width, height int, bg color.RGBA, icons map[string]rl.Texture2D) (*rlCanvas, error) {
	target := rl.LoadRenderTexture(int32(width), int32(height))
	if target.ID == 0 {
		return nil, fmt.Errorf("create %dx%d canvas texture", width, height)
	}
	c := &rlCanvas{rlSurface: rlSurface{icons: icons}, target: target}
	c.Begin()
	c.Clear(bg)
	c.End()
	return c, nil
}

func (c *rlCanvas) Begin() { rl.BeginTextureMode(c.target) }
func (c *rlCanvas) End()   { rl.EndTextureMode() }

func (c *rlCanvas) Clear(bg color.RGBA) { rl.ClearBackground(rl.Color(bg)) }

// Composite draws the canvas onto the current target. Render textures are
// stored upside down, hence the negative source height.
func (c *rlCanvas) Composite() {
	tex := c.target.Texture
	rl.DrawTextureRec(
		tex,
		rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: -float32(tex.Height)},
		rl.Vector2{X: 0, Y: 0},
		rl.White,
	)
}

func (c *rlCanvas) Unload() { rl.UnloadRenderTexture(c.target) }

// loadTextures uploads decoded icons to the GPU.
func loadTextures(imgs map[string]*image.RGBA) (map[string]rl.Texture2D, error) {
	out := make(map[string]rl.Texture2D, len(imgs))
	for name, img := range imgs {
		rimg := rl.NewImageFromImage(img)
		tex := rl.LoadTextureFromImage(rimg)
		rl.UnloadImage(rimg)
		if tex.ID == 0 {
			unloadTextures(out)
			return nil, fmt.Errorf("upload icon %q", name)
		}
		out[name] = tex
	}
	return out, nil
}

func unloadTextures(texs map[string]rl.Texture2D) {
	for _, t := range texs {
		rl.UnloadTexture(t)
	}
}

// input turns raylib's polled mouse state into ordered session events.
type input struct {
	last   paint.Point
	primed bool
	events []paint.Event
}

func (in *input) poll() []paint.Event {
	in.events = in.events[:0]
	if rl.WindowShouldClose() {
		in.events = append(in.events, paint.Event{Kind: paint.EventQuit})
	}

	m := rl.GetMousePosition()
	pos := paint.Point{X: int(m.X), Y: int(m.Y)}
	if !in.primed || pos != in.last {
		in.events = append(in.events, paint.Event{Kind: paint.EventMotion, Pos: pos})
		in.last, in.primed = pos, true
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		in.events = append(in.events, paint.Event{Kind: paint.EventPress, Pos: pos})
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		in.events = append(in.events, paint.Event{Kind: paint.EventRelease, Pos: pos})
	}
	return in.events
}
