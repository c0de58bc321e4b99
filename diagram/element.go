package diagram

import (
	"encoding/json"
	"fmt"
)

// Shape is anything that can live on a Document: a drawable, hit-testable,
// optionally interactive piece of content. Rectangle, Label and Class are
// the only implementations today.
type Shape interface {
	X() int32
	Y() int32
	CursorIntersects(x, y int32) bool
	HoverEnter()
	HoverLeave()
	IsHovered() bool
	AdjustPosition(dx, dy int32)
	Click(x, y int32) *Prompt
	RespondPrompt(resp PromptResponse)
	Draw(canvas Canvas, camera Camera)
	Initialize(canvas Canvas)
	Kind() string
}

// promptPoller is implemented by shapes whose Initialize can raise a
// prompt asynchronously to its return value (Class only, today).
type promptPoller interface {
	PendingPrompt() *Prompt
}

// Element pairs a process-local Id with a polymorphic Shape. The Id is
// never serialised — each peer assigns its own on receipt.
type Element struct {
	Id    Id
	Shape Shape
}

// NewElement wraps a Shape with a freshly minted Id.
func NewElement(shape Shape) Element {
	return Element{Id: NewId(), Shape: shape}
}

// InitializeAndPrompt runs Initialize and returns any prompt it wants
// raised, since the Shape interface's Initialize has no return value.
func (e Element) InitializeAndPrompt(canvas Canvas) *Prompt {
	e.Shape.Initialize(canvas)
	if poller, ok := e.Shape.(promptPoller); ok {
		return poller.PendingPrompt()
	}
	return nil
}

// MarshalJSON produces the tagged wire shape {"inner": {"<Kind>": {...}}}.
func (e Element) MarshalJSON() ([]byte, error) {
	body, err := json.Marshal(e.Shape)
	if err != nil {
		return nil, fmt.Errorf("marshal %s body: %w", e.Shape.Kind(), err)
	}
	inner := map[string]json.RawMessage{e.Shape.Kind(): body}
	return json.Marshal(struct {
		Inner map[string]json.RawMessage `json:"inner"`
	}{Inner: inner})
}

// UnmarshalJSON reconstructs the concrete Shape from whichever tag key is
// present, then mints a fresh local Id — Ids never travel on the wire.
func (e *Element) UnmarshalJSON(data []byte) error {
	var wire struct {
		Inner map[string]json.RawMessage `json:"inner"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("unmarshal element envelope: %w", err)
	}
	if len(wire.Inner) != 1 {
		return fmt.Errorf("element envelope must have exactly one tagged variant, got %d", len(wire.Inner))
	}

	for kind, body := range wire.Inner {
		shape, err := unmarshalShape(kind, body)
		if err != nil {
			return err
		}
		e.Id = NewId()
		e.Shape = shape
		return nil
	}
	return fmt.Errorf("unreachable")
}

func unmarshalShape(kind string, body json.RawMessage) (Shape, error) {
	switch kind {
	case "Rectangle":
		var r Rectangle
		if err := json.Unmarshal(body, &r); err != nil {
			return nil, fmt.Errorf("unmarshal Rectangle: %w", err)
		}
		return &r, nil
	case "Label":
		var l Label
		if err := json.Unmarshal(body, &l); err != nil {
			return nil, fmt.Errorf("unmarshal Label: %w", err)
		}
		l.measured = false
		return &l, nil
	case "Class":
		var c Class
		if err := json.Unmarshal(body, &c); err != nil {
			return nil, fmt.Errorf("unmarshal Class: %w", err)
		}
		c.margin = classMargin
		return &c, nil
	default:
		return nil, fmt.Errorf("unknown element kind %q", kind)
	}
}
