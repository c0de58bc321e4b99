package diagram

// Label is a positioned run of text. Width/height are filled in by
// Initialize via the Canvas and are transient — never serialised, since
// they depend on the host's font metrics, not the document's content.
type Label struct {
	PosX    int32          `json:"x"`
	PosY    int32          `json:"y"`
	Text    string         `json:"text"`
	Props   TextProperties `json:"properties"`
	RgbFill Color          `json:"color"`

	width, height float64
	measured      bool

	interaction InteractionState
}

// NewLabel builds an unmeasured Label; call Initialize before drawing.
func NewLabel(x, y int32, text string, props TextProperties, color Color) *Label {
	return &Label{PosX: x, PosY: y, Text: text, Props: props, RgbFill: color}
}

func (l *Label) X() int32 { return l.PosX }

// Y returns the label's baseline-adjusted top, per the original layout:
// the measured height shifts the anchor down so title/attribute stacks
// read top-to-bottom from the point the caller specified.
func (l *Label) Y() int32 {
	return l.PosY + int32(l.height)
}

func (l *Label) Width() (float64, bool)  { return l.width, l.measured }
func (l *Label) Height() (float64, bool) { return l.height, l.measured }

func (l *Label) SetText(text string) { l.Text = text }

func (l *Label) CursorIntersects(x, y int32) bool {
	if !l.measured {
		return false
	}
	return x >= l.PosX && x < l.PosX+int32(l.width) &&
		y >= l.PosY && y < l.PosY+int32(l.height)
}

func (l *Label) HoverEnter()     { l.interaction.SetHover(true) }
func (l *Label) HoverLeave()     { l.interaction.SetHover(false) }
func (l *Label) IsHovered() bool { return l.interaction.IsHovered() }

func (l *Label) AdjustPosition(dx, dy int32) {
	l.PosX += dx
	l.PosY += dy
}

func (l *Label) Click(x, y int32) *Prompt { return nil }

func (l *Label) RespondPrompt(resp PromptResponse) {}

// Initialize measures the label's text via the canvas. If the host
// cannot measure yet, the label remains unmeasured and skips drawing
// until a later Redraw retries it — no state corruption (spec.md §7).
func (l *Label) Initialize(canvas Canvas) {
	size, ok := canvas.MeasureText(l.Text, l.Props)
	if !ok {
		l.measured = false
		return
	}
	l.width = size.Width
	l.height = size.Height
	l.measured = true
}

func (l *Label) Draw(canvas Canvas, camera Camera) {
	if !l.measured {
		return
	}
	canvas.DrawText(*l, camera)
}

func (l *Label) Kind() string { return "Label" }
