package client

import "github.com/sofush/uml-go/diagram"

// HoverHandler tracks which element, if any, the cursor currently sits
// over and emits HoverElement transitions only when that changes.
type HoverHandler struct {
	prev    diagram.Id
	hasPrev bool
}

func (h *HoverHandler) Handle(ev Event, doc *diagram.Document, camera diagram.Camera) []Outcome {
	if ev.Kind != EventMouse {
		return nil
	}

	wx := ev.Mouse.X + int32(camera.X)
	wy := ev.Mouse.Y + int32(camera.Y)

	el, found := doc.TopmostAt(wx, wy)

	if h.hasPrev && found && h.prev == el.Id {
		return nil
	}
	if !h.hasPrev && !found {
		return nil
	}

	var outcomes []Outcome
	if h.hasPrev {
		outcomes = append(outcomes, HoverElementOutcome(h.prev, false))
	}
	if found {
		outcomes = append(outcomes, HoverElementOutcome(el.Id, true))
		h.prev = el.Id
		h.hasPrev = true
	} else {
		h.hasPrev = false
	}

	return outcomes
}
