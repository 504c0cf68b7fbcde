package paint

// Window and panel geometry.
const (
	WindowWidth  = 1440
	WindowHeight = 850
	PanelWidth   = 200
)

const (
	smallIcon = 32
	toolIcon  = 64
)

// Action is what a toolbar button does when pressed.
type Action int

const (
	ActionSelectTool Action = iota
	ActionShrink
	ActionGrow
	ActionClear
	ActionQuit
)

// Button is a fixed toolbar region drawn with a named icon.
type Button struct {
	Icon   string
	Bounds Rect
	Action Action
	Tool   Tool // only for ActionSelectTool
}

// Intersects reports whether (x, y) lies strictly inside the button.
func (b Button) Intersects(x, y int) bool {
	return b.Bounds.Contains(Point{x, y})
}

// IconSpec names an icon and the size it is drawn at.
type IconSpec struct {
	Name          string
	Width, Height int
}

// Toolbar is the left-hand control panel.
type Toolbar struct {
	Width   int
	Height  int
	Buttons []Button
	Slider  Slider
}

func toolButton(icon string, x, y int, t Tool) Button {
	return Button{
		Icon:   icon,
		Bounds: Rect{X: x, Y: y, W: toolIcon, H: toolIcon},
		Action: ActionSelectTool,
		Tool:   t,
	}
}

// NewToolbar lays out the panel for a window of the given height.
func NewToolbar(height int) *Toolbar {
	return &Toolbar{
		Width:  PanelWidth,
		Height: height,
		Slider: Slider{Bounds: Rect{X: 45, Y: 10, W: 100, H: 64}, Min: MinBrushSize, Max: MaxBrushSize, Value: DefaultBrushSize},
		Buttons: []Button{
			{Icon: "minus", Bounds: Rect{X: 10, Y: 29, W: smallIcon, H: smallIcon}, Action: ActionShrink},
			{Icon: "plus", Bounds: Rect{X: 155, Y: 29, W: smallIcon, H: smallIcon}, Action: ActionGrow},

			toolButton("brush", 24, 84, ToolFreeDraw),
			toolButton("line", 112, 84, ToolLine),
			toolButton("rect", 24, 156, ToolRect),
			toolButton("frect", 112, 156, ToolFilledRect),
			toolButton("circle", 24, 232, ToolCircle),
			toolButton("fcircle", 112, 232, ToolFilledCircle),
			toolButton("ellipse", 24, 306, ToolEllipse),
			toolButton("fellipse", 112, 306, ToolFilledEllipse),
			toolButton("eraser", 24, 380, ToolEraser),

			{Icon: "clear", Bounds: Rect{X: 10, Y: height - 74, W: toolIcon, H: toolIcon}, Action: ActionClear},
			{Icon: "quit", Bounds: Rect{X: 112, Y: height - 74, W: toolIcon, H: toolIcon}, Action: ActionQuit},
		},
	}
}

// Hit returns the first button strictly containing p.
func (tb *Toolbar) Hit(p Point) (Button, bool) {
	for _, b := range tb.Buttons {
		if b.Intersects(p.X, p.Y) {
			return b, true
		}
	}
	return Button{}, false
}

// Covers reports whether p falls on the panel rather than the canvas.
func (tb *Toolbar) Covers(p Point) bool {
	return p.X < tb.Width
}

// ButtonFor returns the tool-select button bound to t.
func (tb *Toolbar) ButtonFor(t Tool) (Button, bool) {
	for _, b := range tb.Buttons {
		if b.Action == ActionSelectTool && b.Tool == t {
			return b, true
		}
	}
	return Button{}, false
}

// Icons lists the icon assets the toolbar needs, one entry per button.
func (tb *Toolbar) Icons() []IconSpec {
	out := make([]IconSpec, 0, len(tb.Buttons))
	for _, b := range tb.Buttons {
		out = append(out, IconSpec{Name: b.Icon, Width: b.Bounds.W, Height: b.Bounds.H})
	}
	return out
}

// Draw renders the panel, the size slider and the buttons. The button for
// active gets a highlight behind its icon.
func (tb *Toolbar) Draw(s Surface, pal Palette, active Tool) {
	s.FillRect(Rect{X: 0, Y: 0, W: tb.Width, H: tb.Height}, pal.Panel)
	tb.Slider.Draw(s, pal.Controls)

	for _, b := range tb.Buttons {
		if b.Action == ActionSelectTool && b.Tool == active {
			s.RoundedRect(Rect{X: b.Bounds.X - 4, Y: b.Bounds.Y - 4, W: b.Bounds.W + 8, H: b.Bounds.H + 8}, 0.2, pal.Highlight)
		}
		s.Icon(b.Icon, Point{b.Bounds.X, b.Bounds.Y})
	}
}
