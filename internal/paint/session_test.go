package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	s      *Session
	screen recorder
	canvas recorder
}

func newHarness() *harness {
	return &harness{s: NewSession(NewToolbar(WindowHeight), DefaultPalette(), nil)}
}

// frame feeds events and renders, returning what Update returned.
func (h *harness) frame(events ...Event) bool {
	h.screen.reset()
	running := h.s.Update(events)
	h.s.Draw(&h.screen, &h.canvas)
	return running
}

func center(b Button) Point {
	return Point{b.Bounds.X + b.Bounds.W/2, b.Bounds.Y + b.Bounds.H/2}
}

func (h *harness) click(t *testing.T, p Point) {
	t.Helper()
	h.frame(Event{Kind: EventMotion, Pos: p}, Event{Kind: EventPress, Pos: p})
	h.frame(Event{Kind: EventRelease, Pos: p})
}

func (h *harness) clickAction(t *testing.T, a Action) {
	t.Helper()
	for _, b := range h.s.Toolbar.Buttons {
		if b.Action == a {
			h.click(t, center(b))
			return
		}
	}
	t.Fatalf("no button for action %d", a)
}

func (h *harness) selectTool(t *testing.T, tool Tool) {
	t.Helper()
	b, ok := h.s.Toolbar.ButtonFor(tool)
	require.True(t, ok, "no button for %s", tool)
	h.click(t, center(b))
}

// drag presses at from, moves through path one sample per frame, then
// releases at the last point.
func (h *harness) drag(from Point, path ...Point) {
	h.frame(Event{Kind: EventMotion, Pos: from}, Event{Kind: EventPress, Pos: from})
	for _, p := range path {
		h.frame(Event{Kind: EventMotion, Pos: p})
	}
	end := from
	if len(path) > 0 {
		end = path[len(path)-1]
	}
	h.frame(Event{Kind: EventRelease, Pos: end})
}

func TestNewSessionDefaults(t *testing.T) {
	h := newHarness()
	assert.Equal(t, ToolFreeDraw, h.s.Tool())
	assert.Equal(t, DefaultBrushSize, h.s.Size())
	assert.Equal(t, DefaultBrushSize, h.s.Toolbar.Slider.Value)
	assert.True(t, h.s.Running())
}

func TestBrushSizeStaysInRange(t *testing.T) {
	h := newHarness()
	for i := 0; i < 25; i++ {
		h.clickAction(t, ActionGrow)
		assert.LessOrEqual(t, h.s.Size(), MaxBrushSize)
	}
	assert.Equal(t, 20, h.s.Size())
	assert.Equal(t, 20, h.s.Toolbar.Slider.Value)

	for i := 0; i < 30; i++ {
		h.clickAction(t, ActionShrink)
		assert.GreaterOrEqual(t, h.s.Size(), MinBrushSize)
	}
	assert.Equal(t, 1, h.s.Size())
	assert.Equal(t, 1, h.s.Toolbar.Slider.Value)
}

func TestSliderDragSetsSizeWithoutDrawing(t *testing.T) {
	h := newHarness()
	h.frame(Event{Kind: EventPress, Pos: Point{95, 40}})
	assert.Equal(t, 10, h.s.Size())

	h.frame(Event{Kind: EventMotion, Pos: Point{600, 500}})
	assert.Equal(t, 20, h.s.Size())

	h.frame(Event{Kind: EventMotion, Pos: Point{0, 500}})
	assert.Equal(t, 1, h.s.Size())

	h.frame(Event{Kind: EventRelease, Pos: Point{0, 500}})
	assert.Zero(t, h.canvas.begins)
	assert.Empty(t, h.canvas.ops)

	// after release motion no longer moves the slider
	h.frame(Event{Kind: EventMotion, Pos: Point{145, 40}})
	assert.Equal(t, 1, h.s.Size())
}

func TestFreeDrawCommitsEverySample(t *testing.T) {
	h := newHarness()
	path := []Point{{410, 400}, {420, 405}, {430, 415}, {445, 420}, {460, 440}}

	h.frame(Event{Kind: EventMotion, Pos: Point{400, 400}}, Event{Kind: EventPress, Pos: Point{400, 400}})
	for i, p := range path {
		h.frame(Event{Kind: EventMotion, Pos: p})
		assert.Equal(t, i+1, h.canvas.count("line"), "segments after %d samples", i+1)
	}
	h.frame(Event{Kind: EventRelease, Pos: Point{460, 440}})

	assert.Equal(t, len(path), h.canvas.count("line"))
	for _, o := range h.canvas.ops {
		assert.Equal(t, DefaultPalette().Stroke, o.c)
	}
	// freehand tools have no preview, the toolbar panel is drawn first
	require.NotEmpty(t, h.screen.ops)
	assert.Equal(t, "fillrect", h.screen.ops[0].kind)
}

func TestFreeDrawSeveralSamplesInOneFrame(t *testing.T) {
	h := newHarness()
	h.frame(
		Event{Kind: EventPress, Pos: Point{400, 400}},
		Event{Kind: EventMotion, Pos: Point{401, 400}},
		Event{Kind: EventMotion, Pos: Point{402, 400}},
		Event{Kind: EventMotion, Pos: Point{403, 400}},
	)
	assert.Equal(t, 3, h.canvas.count("line"))
	assert.Equal(t, 1, h.canvas.begins)
	assert.Equal(t, 1, h.canvas.ends)
}

func TestEraserUsesBackground(t *testing.T) {
	h := newHarness()
	h.selectTool(t, ToolEraser)
	h.drag(Point{400, 400}, Point{420, 420})

	require.NotEmpty(t, h.canvas.ops)
	for _, o := range h.canvas.ops {
		assert.Equal(t, DefaultPalette().Background, o.c)
	}
}

func TestShapesCommitOnceAtRelease(t *testing.T) {
	for _, tool := range []Tool{ToolLine, ToolRect, ToolCircle, ToolEllipse, ToolFilledRect, ToolFilledCircle, ToolFilledEllipse} {
		t.Run(tool.String(), func(t *testing.T) {
			h := newHarness()
			h.selectTool(t, tool)

			from := Point{500, 400}
			h.frame(Event{Kind: EventMotion, Pos: from}, Event{Kind: EventPress, Pos: from})
			for _, p := range []Point{{520, 410}, {560, 450}, {600, 470}} {
				h.frame(Event{Kind: EventMotion, Pos: p})
				assert.Empty(t, h.canvas.ops, "committed before release")

				var want recorder
				DrawShape(&want, tool, from, p, h.s.Size(), DefaultPalette().Preview)
				assert.Equal(t, want.ops, h.screen.ops[:len(want.ops)], "preview")
			}
			end := Point{610, 480}
			h.frame(Event{Kind: EventRelease, Pos: end})

			var want recorder
			DrawShape(&want, tool, from, end, h.s.Size(), DefaultPalette().Stroke)
			assert.Equal(t, want.ops, h.canvas.ops)
			assert.Equal(t, 1, h.canvas.begins)

			// later frames do not commit again
			h.frame(Event{Kind: EventMotion, Pos: Point{700, 700}})
			assert.Equal(t, want.ops, h.canvas.ops)
		})
	}
}

func TestSelectingToolThenDragging(t *testing.T) {
	for _, tool := range Tools() {
		t.Run(tool.String(), func(t *testing.T) {
			h := newHarness()
			h.selectTool(t, tool)
			require.Equal(t, tool, h.s.Tool())
			assert.Empty(t, h.canvas.ops, "selecting a tool draws nothing")

			from, end := Point{500, 400}, Point{560, 450}
			h.drag(from, end)

			var want recorder
			c := DefaultPalette().Stroke
			if tool == ToolEraser {
				c = DefaultPalette().Background
			}
			if tool.Freehand() {
				want.FillCircle(from, float32(h.s.Size())/2, c)
			}
			DrawShape(&want, tool, from, end, h.s.Size(), c)
			assert.Equal(t, want.ops, h.canvas.ops)
		})
	}
}

func TestToolbarPressesDoNotDraw(t *testing.T) {
	h := newHarness()
	h.drag(Point{150, 600}, Point{180, 620}, Point{500, 600})
	assert.Zero(t, h.canvas.begins)

	h.selectTool(t, ToolLine)
	h.drag(Point{150, 600}, Point{500, 600})
	assert.Zero(t, h.canvas.begins)
}

func TestClearBlanksCanvasOnPress(t *testing.T) {
	h := newHarness()
	h.drag(Point{400, 400}, Point{420, 420}, Point{440, 440})
	require.NotEmpty(t, h.canvas.ops)

	var clearBtn Button
	for _, b := range h.s.Toolbar.Buttons {
		if b.Action == ActionClear {
			clearBtn = b
		}
	}
	p := center(clearBtn)
	h.frame(Event{Kind: EventMotion, Pos: p}, Event{Kind: EventPress, Pos: p})
	assert.Equal(t, 1, h.canvas.clears, "cleared before release")
	assert.Empty(t, h.canvas.ops)

	h.frame(Event{Kind: EventRelease, Pos: p})
	h.frame()
	assert.Empty(t, h.canvas.ops)
	assert.Equal(t, 1, h.canvas.clears)
}

func TestQuit(t *testing.T) {
	h := newHarness()
	assert.True(t, h.frame())
	assert.False(t, h.frame(Event{Kind: EventQuit}))
	assert.False(t, h.s.Running())

	h = newHarness()
	h.clickAction(t, ActionQuit)
	assert.False(t, h.s.Running())
}

func TestReleaseWithoutPressIgnored(t *testing.T) {
	h := newHarness()
	h.selectTool(t, ToolLine)
	h.frame(Event{Kind: EventRelease, Pos: Point{600, 600}})
	assert.Empty(t, h.canvas.ops)
}

func TestToolbarDrawHighlightsActiveTool(t *testing.T) {
	tb := NewToolbar(WindowHeight)
	var r recorder
	tb.Draw(&r, DefaultPalette(), ToolCircle)

	assert.Equal(t, "fillrect", r.ops[0].kind)
	assert.Equal(t, Rect{X: 0, Y: 0, W: PanelWidth, H: WindowHeight}, r.ops[0].rect)
	assert.Equal(t, len(tb.Buttons), r.count("icon"))

	b, _ := tb.ButtonFor(ToolCircle)
	var highlights []Rect
	for _, o := range r.ops {
		if o.kind == "roundedrect" && o.c == DefaultPalette().Highlight {
			highlights = append(highlights, o.rect)
		}
	}
	require.Len(t, highlights, 1)
	assert.True(t, highlights[0].containsInclusive(Point{b.Bounds.X, b.Bounds.Y}))
}

func TestToolbarBindsEveryToolOnce(t *testing.T) {
	tb := NewToolbar(WindowHeight)
	seen := map[Tool]string{}
	for _, b := range tb.Buttons {
		if b.Action != ActionSelectTool {
			continue
		}
		_, dup := seen[b.Tool]
		assert.False(t, dup, "%s bound twice", b.Tool)
		seen[b.Tool] = b.Icon
	}
	assert.Len(t, seen, len(Tools()))
	assert.Equal(t, "fellipse", seen[ToolFilledEllipse])
	assert.Equal(t, "fcircle", seen[ToolFilledCircle])
}

func TestToolbarButtonsDoNotOverlap(t *testing.T) {
	tb := NewToolbar(WindowHeight)
	for i, a := range tb.Buttons {
		for _, b := range tb.Buttons[i+1:] {
			overlap := a.Bounds.X < b.Bounds.X+b.Bounds.W && b.Bounds.X < a.Bounds.X+a.Bounds.W &&
				a.Bounds.Y < b.Bounds.Y+b.Bounds.H && b.Bounds.Y < a.Bounds.Y+a.Bounds.H
			assert.False(t, overlap, "%s overlaps %s", a.Icon, b.Icon)
		}
		assert.LessOrEqual(t, a.Bounds.X+a.Bounds.W, PanelWidth, a.Icon)
	}
}
