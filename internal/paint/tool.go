package paint

// Tool types
type Tool int

const (
	ToolFreeDraw Tool = iota
	ToolLine
	ToolRect
	ToolFilledRect
	ToolCircle
	ToolFilledCircle
	ToolEllipse
	ToolFilledEllipse
	ToolEraser

	toolCount
)

var toolNames = [toolCount]string{
	ToolFreeDraw:      "FREEDRAW",
	ToolLine:          "LINE",
	ToolRect:          "RECT",
	ToolFilledRect:    "FILLED RECT",
	ToolCircle:        "CIRCLE",
	ToolFilledCircle:  "FILLED CIRCLE",
	ToolEllipse:       "ELLIPSE",
	ToolFilledEllipse: "FILLED ELLIPSE",
	ToolEraser:        "ERASER",
}

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	out := make([]Tool, 0, toolCount)
	for t := ToolFreeDraw; t < toolCount; t++ {
		out = append(out, t)
	}
	return out
}

func (t Tool) Valid() bool { return t >= 0 && t < toolCount }

func (t Tool) String() string {
	if !t.Valid() {
		return "UNKNOWN"
	}
	return toolNames[t]
}

// Freehand reports whether the tool commits while dragging instead of on
// release.
func (t Tool) Freehand() bool {
	return t == ToolFreeDraw || t == ToolEraser
}
