package diagram

// Rectangle is an axis-aligned box in world-space. Coordinates are
// pan-invariant: the camera never touches them, only the draw call does.
type Rectangle struct {
	PosX    int32   `json:"x"`
	PosY    int32   `json:"y"`
	Width   uint32  `json:"width"`
	Height  uint32  `json:"height"`
	RgbFill Color   `json:"color"`
	Radius  *uint32 `json:"radius,omitempty"`
	Outline *Stroke `json:"stroke,omitempty"`

	interaction InteractionState
}

// NewRectangle builds a Rectangle with no radius or stroke.
func NewRectangle(x, y int32, width, height uint32, color Color) *Rectangle {
	return &Rectangle{PosX: x, PosY: y, Width: width, Height: height, RgbFill: color}
}

func (r *Rectangle) X() int32 { return r.PosX }
func (r *Rectangle) Y() int32 { return r.PosY }

// CursorIntersects is axis-aligned containment in world-space.
func (r *Rectangle) CursorIntersects(x, y int32) bool {
	return x >= r.PosX && x < r.PosX+int32(r.Width) &&
		y >= r.PosY && y < r.PosY+int32(r.Height)
}

func (r *Rectangle) HoverEnter() { r.interaction.SetHover(true) }
func (r *Rectangle) HoverLeave() { r.interaction.SetHover(false) }
func (r *Rectangle) IsHovered() bool { return r.interaction.IsHovered() }

func (r *Rectangle) AdjustPosition(dx, dy int32) {
	r.PosX += dx
	r.PosY += dy
}

// Click never raises a prompt for a plain rectangle.
func (r *Rectangle) Click(x, y int32) *Prompt { return nil }

// RespondPrompt is a no-op: rectangles never open prompts.
func (r *Rectangle) RespondPrompt(resp PromptResponse) {}

func (r *Rectangle) Draw(canvas Canvas, camera Camera) {
	canvas.DrawRectangle(*r, camera)
}

// Initialize is a no-op: rectangles need no measurement pass.
func (r *Rectangle) Initialize(canvas Canvas) {}

func (r *Rectangle) Kind() string { return "Rectangle" }
