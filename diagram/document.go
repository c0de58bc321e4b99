package diagram

import "encoding/json"

// Document is the full shared diagram state: an ordered list of elements
// plus a background colour. It tracks its own synchronization flag so the
// caller knows when a fresh copy needs to go out over the wire.
type Document struct {
	Elements []Element `json:"elements"`
	Color    Color     `json:"color"`

	synchronized bool
}

// NewDocument returns an empty Document with the default background,
// already marked synchronized (nothing to send yet).
func NewDocument() *Document {
	return &Document{Color: DefaultBackground, synchronized: true}
}

// AddElement appends shape as a new Element and marks the Document out
// of sync with any peer that has already seen the previous state.
func (d *Document) AddElement(shape Shape) Element {
	el := NewElement(shape)
	d.Elements = append(d.Elements, el)
	d.synchronized = false
	return el
}

// Synchronized reports whether the last known-sent state matches the
// current one.
func (d *Document) Synchronized() bool {
	return d.synchronized
}

// AssumeSynchronized marks the current state as sent. Callers use this
// right after a successful broadcast.
func (d *Document) AssumeSynchronized() {
	d.synchronized = true
}

// MarkDirty forces Synchronized to false, e.g. after a local edit to an
// existing element that has not been sent yet.
func (d *Document) MarkDirty() {
	d.synchronized = false
}

// ElementByID finds an element by its process-local Id.
func (d *Document) ElementByID(id Id) (Element, bool) {
	for _, el := range d.Elements {
		if el.Id == id {
			return el, true
		}
	}
	return Element{}, false
}

// TopmostAt returns the last (topmost, by draw order) element whose
// shape contains the given world-space point, searching back-to-front
// so elements drawn later win hit-testing ties.
func (d *Document) TopmostAt(x, y int32) (Element, bool) {
	for i := len(d.Elements) - 1; i >= 0; i-- {
		if d.Elements[i].Shape.CursorIntersects(x, y) {
			return d.Elements[i], true
		}
	}
	return Element{}, false
}

// Initialize runs Initialize on every element's shape, returning prompts
// raised along the way keyed by the element they came from. Called once
// per Redraw so newly added, not-yet-measured shapes get a chance to
// complete their layout.
func (d *Document) Initialize(canvas Canvas) map[Id]*Prompt {
	prompts := make(map[Id]*Prompt)
	for _, el := range d.Elements {
		if p := el.InitializeAndPrompt(canvas); p != nil {
			prompts[el.Id] = p
		}
	}
	return prompts
}

// Draw clears the background, renders the dot-grid overlay, then draws
// every element in order.
func (d *Document) Draw(canvas Canvas, camera Camera, viewport Size) {
	bg := NewRectangle(0, 0, uint32(viewport.Width), uint32(viewport.Height), d.Color)
	canvas.DrawRectangle(*bg, Camera{})

	offX, offY := camera.GridOffset()
	const dotSize = 2
	for row := -1; float64(row)*GridSpacing+offY < viewport.Height; row++ {
		for col := -1; float64(col)*GridSpacing+offX < viewport.Width; col++ {
			x := int32(float64(col)*GridSpacing + offX)
			y := int32(float64(row)*GridSpacing + offY)
			dot := NewRectangle(x, y, dotSize, dotSize, GridDotColor)
			canvas.DrawRectangle(*dot, Camera{})
		}
	}

	for _, el := range d.Elements {
		el.Shape.Draw(canvas, camera)
	}
}

// MarshalJSON serialises elements and colour only; synchronized is a
// transient, process-local flag.
func (d Document) MarshalJSON() ([]byte, error) {
	type wire struct {
		Elements []Element `json:"elements"`
		Color    Color     `json:"color"`
	}
	return json.Marshal(wire{Elements: d.Elements, Color: d.Color})
}

// UnmarshalJSON reconstructs elements and colour; a freshly decoded
// Document is considered synchronized until modified further.
func (d *Document) UnmarshalJSON(data []byte) error {
	var wire struct {
		Elements []Element `json:"elements"`
		Color    Color     `json:"color"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d.Elements = wire.Elements
	d.Color = wire.Color
	d.synchronized = true
	return nil
}
