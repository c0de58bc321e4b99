package diagram

const (
	classMargin  = 20
	classSpacing = 8
)

var (
	classDefaultColor   = NewColor(244, 244, 244)
	classDefaultStroke  = NewStroke(2, NewColor(210, 210, 210))
	classHighlightColor = NewColor(142, 202, 230)
	classTitleColor     = NewColor(31, 31, 31)
	classTitleSize      = 20.0
	classAttributeSize  = 14.0
)

// Class is a UML class box: a background rectangle sized to fit an
// editable title label, with a highlighted outline while hovered.
//
// Unlike the source this was ported from, a fresh Class never carries a
// placeholder title — Initialize raises a text Prompt instead, so the
// very first render always asks the user to name it.
type Class struct {
	PosX       int32    `json:"x"`
	PosY       int32    `json:"y"`
	RgbFill    Color    `json:"color"`
	Radius     uint32   `json:"radius,omitempty"`
	Title      *Label   `json:"title,omitempty"`
	Attributes []*Label `json:"attributes,omitempty"`

	margin      uint32
	titlePrompt bool
	interaction InteractionState
}

// NewClass builds an untitled Class at the given position. radius
// defaults to 0 when nil; the outline always uses the package default
// stroke.
func NewClass(x, y int32, radius *uint32) *Class {
	c := &Class{PosX: x, PosY: y, RgbFill: classDefaultColor, margin: classMargin}
	if radius != nil {
		c.Radius = *radius
	}
	return c
}

func (c *Class) X() int32 { return c.PosX }
func (c *Class) Y() int32 { return c.PosY }

// width is the widest child label plus the margin on both sides.
func (c *Class) width() (float64, bool) {
	if c.Title == nil {
		return 0, false
	}
	max, ok := c.Title.Width()
	if !ok {
		return 0, false
	}
	for _, attr := range c.Attributes {
		w, ok := attr.Width()
		if !ok {
			return 0, false
		}
		if w > max {
			max = w
		}
	}
	return max + float64(2*c.margin), true
}

// height is the title plus every attribute label stacked vertically,
// each separated by classSpacing, plus the margin top and bottom.
func (c *Class) height() (float64, bool) {
	if c.Title == nil {
		return 0, false
	}
	total, ok := c.Title.Height()
	if !ok {
		return 0, false
	}
	for _, attr := range c.Attributes {
		h, ok := attr.Height()
		if !ok {
			return 0, false
		}
		total += float64(classSpacing) + h
	}
	return total + float64(2*c.margin), true
}

// relayout repositions the title and every attribute label relative to
// the class's own position: title first, then attributes stacked below
// it in order, each classSpacing apart. A label not yet measured is
// still placed at the current row, but adds no height, so the labels
// after it stack as if it were absent until the next Initialize.
func (c *Class) relayout() {
	if c.Title == nil {
		return
	}
	c.Title.PosX = c.PosX + int32(c.margin)
	c.Title.PosY = c.PosY + int32(c.margin)

	y := c.Title.PosY
	if h, ok := c.Title.Height(); ok {
		y += int32(h) + classSpacing
	}

	for _, attr := range c.Attributes {
		attr.PosX = c.PosX + int32(c.margin)
		attr.PosY = y
		if h, ok := attr.Height(); ok {
			y += int32(h) + classSpacing
		}
	}
}

// AddAttribute appends a new, not-yet-measured attribute label owned by
// the class. It is laid out alongside the title on the next Initialize.
func (c *Class) AddAttribute(text string) *Label {
	props := NewTextProperties(classAttributeSize, "sans-serif")
	attr := NewLabel(c.PosX+int32(c.margin), c.PosY, text, props, classTitleColor)
	c.Attributes = append(c.Attributes, attr)
	c.relayout()
	return attr
}

func (c *Class) CursorIntersects(x, y int32) bool {
	w, ok := c.width()
	if !ok {
		return false
	}
	h, _ := c.height()
	return x >= c.PosX && x < c.PosX+int32(w) &&
		y >= c.PosY && y < c.PosY+int32(h)
}

func (c *Class) HoverEnter() { c.interaction.SetHover(true) }
func (c *Class) HoverLeave() { c.interaction.SetHover(false) }
func (c *Class) IsHovered() bool { return c.interaction.IsHovered() }

func (c *Class) AdjustPosition(dx, dy int32) {
	c.PosX += dx
	c.PosY += dy
	c.relayout()
}

// Click asks to rename the class, pre-filling the current title (empty
// until the first prompt response arrives).
func (c *Class) Click(x, y int32) *Prompt {
	current := ""
	if c.Title != nil {
		current = c.Title.Text
	}
	return &Prompt{Text: &TextPrompt{
		Explanation: "Rename the class",
		Placeholder: "Class name",
		Value:       current,
	}}
}

// RespondPrompt sets the title from the response, creating the title
// Label on first use.
func (c *Class) RespondPrompt(resp PromptResponse) {
	if resp.Text == nil {
		return
	}
	if c.Title == nil {
		props := NewTextProperties(classTitleSize, "sans-serif")
		c.Title = NewLabel(c.PosX+int32(c.margin), c.PosY+int32(c.margin), resp.Text.Response, props, classTitleColor)
		return
	}
	c.Title.SetText(resp.Text.Response)
}

// Initialize measures the title and every attribute label, then
// re-lays them out. While there is no title yet it measures nothing and
// instead raises a rename prompt, on every call until a title exists.
func (c *Class) Initialize(canvas Canvas) {
	if c.Title == nil {
		c.titlePrompt = true
		return
	}
	c.Title.Initialize(canvas)
	for _, attr := range c.Attributes {
		attr.Initialize(canvas)
	}
	c.relayout()
}

// PendingPrompt reports (and clears) a prompt Initialize wants raised.
// Element.InitializeAndPrompt polls this after every Initialize call, since
// Initialize itself has no return value in the Shape interface.
func (c *Class) PendingPrompt() *Prompt {
	if !c.titlePrompt {
		return nil
	}
	c.titlePrompt = false
	return &Prompt{Text: &TextPrompt{
		Explanation: "Name the class",
		Placeholder: "Class name",
	}}
}

func (c *Class) Draw(canvas Canvas, camera Camera) {
	w, ok := c.width()
	if !ok {
		return
	}
	h, _ := c.height()

	stroke := classDefaultStroke
	if c.interaction.IsHovered() {
		stroke = NewStroke(2, classHighlightColor)
	}

	bg := Rectangle{
		PosX: c.PosX, PosY: c.PosY,
		Width: uint32(w), Height: uint32(h),
		RgbFill: c.RgbFill,
		Outline: &stroke,
	}
	if c.Radius > 0 {
		r := c.Radius
		bg.Radius = &r
	}
	canvas.DrawRectangle(bg, camera)

	if c.Title != nil {
		c.Title.Draw(canvas, camera)
	}
	for _, attr := range c.Attributes {
		attr.Draw(canvas, camera)
	}
}

func (c *Class) Kind() string { return "Class" }
