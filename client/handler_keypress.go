package client

import "github.com/sofush/uml-go/diagram"

// KeypressHandler adds a Class at the cursor on "a" and closes the
// open prompt on Escape. It caches the latest pointer position (from
// mouse events) since key events carry no coordinates of their own, and
// debounces OS key-repeat via a held-key set.
type KeypressHandler struct {
	prompts *PromptRegistry

	x, y    int32
	pressed map[string]bool
}

func NewKeypressHandler(prompts *PromptRegistry) *KeypressHandler {
	return &KeypressHandler{prompts: prompts, pressed: make(map[string]bool)}
}

func (h *KeypressHandler) Handle(ev Event, doc *diagram.Document, camera diagram.Camera) []Outcome {
	if ev.Kind == EventMouse {
		h.x, h.y = ev.Mouse.X, ev.Mouse.Y
		return nil
	}
	if ev.Kind != EventKeyboard {
		return nil
	}

	key := ev.Keyboard.Key

	if h.prompts.IsOpen() && key != "Escape" {
		if ev.Keyboard.Kind == KeyDown {
			h.pressed[key] = true
		} else {
			delete(h.pressed, key)
		}
		return nil
	}

	if ev.Keyboard.Kind == KeyDown {
		h.pressed[key] = true
		return nil
	}

	// KeyUp: only act if we saw the matching KeyDown (debounces repeat,
	// and ignores a KeyUp for a key that was pressed before this
	// handler existed).
	if !h.pressed[key] {
		return nil
	}
	delete(h.pressed, key)

	switch key {
	case "a":
		wx := h.x + int32(camera.X)
		wy := h.y + int32(camera.Y)
		return []Outcome{AddElementOutcome(diagram.NewClass(wx, wy, nil))}
	case "Escape":
		h.prompts.Close()
		return nil
	default:
		return nil
	}
}
