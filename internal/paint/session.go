package paint

import (
	"image/color"
	"log/slog"
)

// Brush size limits.
const (
	MinBrushSize     = 1
	MaxBrushSize     = 20
	DefaultBrushSize = 5
)

// EventKind identifies an input event. Press and release refer to the
// left mouse button only.
type EventKind int

const (
	EventQuit EventKind = iota
	EventPress
	EventRelease
	EventMotion
)

// Event is one input sample delivered to the session.
type Event struct {
	Kind EventKind
	Pos  Point
}

type segment struct {
	from, to Point
	tool     Tool
	dab      bool
}

type pendingShape struct {
	tool     Tool
	from, to Point
}

// Session is the application state: selected tool, brush size, toolbar and
// the in-flight mouse gesture.
type Session struct {
	Toolbar *Toolbar
	Palette Palette

	tool    Tool
	size    int
	running bool

	anchor Point
	last   Point
	cur    Point

	pressed        bool
	drawing        bool // gesture started on the canvas
	sliderDragging bool

	segments []segment
	shape    *pendingShape
	clear    bool

	log *slog.Logger
}

// NewSession returns a session with the FreeDraw tool and the default brush
// size. A nil logger discards output.
func NewSession(tb *Toolbar, pal Palette, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		Toolbar: tb,
		Palette: pal,
		tool:    ToolFreeDraw,
		running: true,
		log:     logger,
	}
	s.SetSize(DefaultBrushSize)
	return s
}

func (s *Session) Tool() Tool    { return s.tool }
func (s *Session) Size() int     { return s.size }
func (s *Session) Running() bool { return s.running }

// SetSize sets the brush size clamped to [MinBrushSize, MaxBrushSize] and
// moves the slider to match.
func (s *Session) SetSize(n int) {
	s.size = clamp(n, MinBrushSize, MaxBrushSize)
	s.Toolbar.Slider.SetValue(s.size)
}

// Update applies a frame's worth of input events in order. It returns false
// once the session has been asked to quit.
func (s *Session) Update(events []Event) bool {
	for _, e := range events {
		switch e.Kind {
		case EventQuit:
			s.quit("window")
		case EventPress:
			s.press(e.Pos)
		case EventRelease:
			s.release(e.Pos)
		case EventMotion:
			s.motion(e.Pos)
		}
	}
	s.SetSize(s.size)
	return s.running
}

func (s *Session) press(p Point) {
	if s.pressed {
		return
	}
	s.anchor, s.last, s.cur = p, p, p

	if b, ok := s.Toolbar.Hit(p); ok {
		s.apply(b)
	}

	var value int
	value, s.sliderDragging = s.Toolbar.Slider.UpdateValue(p.X, p.Y, false)
	if s.sliderDragging {
		s.SetSize(value)
	}

	s.pressed = true
	s.drawing = !s.Toolbar.Covers(p) && !s.sliderDragging
	if s.drawing && s.tool.Freehand() {
		s.segments = append(s.segments, segment{from: p, to: p, tool: s.tool, dab: true})
	}
}

func (s *Session) apply(b Button) {
	switch b.Action {
	case ActionSelectTool:
		if s.tool != b.Tool {
			s.log.Debug("tool selected", slog.String("tool", b.Tool.String()))
		}
		s.tool = b.Tool
	case ActionShrink:
		s.SetSize(s.size - 1)
		s.log.Debug("brush size", slog.Int("size", s.size))
	case ActionGrow:
		s.SetSize(s.size + 1)
		s.log.Debug("brush size", slog.Int("size", s.size))
	case ActionClear:
		s.clear = true
		s.log.Debug("canvas cleared")
	case ActionQuit:
		s.quit("button")
	}
}

func (s *Session) release(p Point) {
	if !s.pressed {
		return
	}
	s.last, s.cur = s.cur, p
	if s.drawing && !s.tool.Freehand() {
		s.shape = &pendingShape{tool: s.tool, from: s.anchor, to: p}
	}
	if s.sliderDragging {
		s.log.Debug("brush size", slog.Int("size", s.size))
	}
	s.pressed = false
	s.drawing = false
	s.sliderDragging = false
}

func (s *Session) motion(p Point) {
	s.last, s.cur = s.cur, p
	if s.sliderDragging {
		v, _ := s.Toolbar.Slider.UpdateValue(p.X, p.Y, true)
		s.SetSize(v)
		return
	}
	if s.drawing && s.tool.Freehand() {
		s.segments = append(s.segments, segment{from: s.last, to: p, tool: s.tool})
	}
}

func (s *Session) quit(source string) {
	if s.running {
		s.log.Info("quit requested", slog.String("source", source))
	}
	s.running = false
}

// strokeColor is the commit colour for t.
func (s *Session) strokeColor(t Tool) color.RGBA {
	if t == ToolEraser {
		return s.Palette.Background
	}
	return s.Palette.Stroke
}

// Draw renders one frame on top of the composited canvas: the preview of
// an in-progress shape on screen, pending commits onto canvas, then the
// toolbar over everything.
func (s *Session) Draw(screen Surface, canvas Canvas) {
	if s.drawing && !s.tool.Freehand() {
		DrawShape(screen, s.tool, s.anchor, s.cur, s.size, s.Palette.Preview)
	}

	if s.clear || len(s.segments) > 0 || s.shape != nil {
		canvas.Begin()
		if s.clear {
			canvas.Clear(s.Palette.Background)
		}
		for _, seg := range s.segments {
			c := s.strokeColor(seg.tool)
			if seg.dab {
				canvas.FillCircle(seg.from, float32(s.size)/2, c)
				continue
			}
			DrawShape(canvas, seg.tool, seg.from, seg.to, s.size, c)
		}
		if s.shape != nil {
			DrawShape(canvas, s.shape.tool, s.shape.from, s.shape.to, s.size, s.strokeColor(s.shape.tool))
		}
		canvas.End()
	}
	s.clear = false
	s.segments = s.segments[:0]
	s.shape = nil

	s.Toolbar.Draw(screen, s.Palette, s.tool)
}
