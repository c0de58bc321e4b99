package client

import "github.com/sofush/uml-go/diagram"

type dragState int

const (
	dragNone dragState = iota
	dragCamera
	dragPressing
	dragDragging
)

// DragHandler is the core drag/camera-pan state machine. It owns no
// document state — only its own cursor/button/key bookkeeping — and
// reads the document and camera it is given fresh on every call.
type DragHandler struct {
	state      dragState
	pressedID  diagram.Id
	draggingID diagram.Id

	cursorX, cursorY       int32
	haveCursor             bool
	translateKey, leftDown bool

	lastCursor CursorStyle
}

// Handle advances the drag state machine for one event and returns the
// outcomes it emits, in emission order.
func (h *DragHandler) Handle(ev Event, doc *diagram.Document, camera diagram.Camera) []Outcome {
	prevState := h.state
	var outcomes []Outcome
	var dx, dy int32
	moved := false

	switch ev.Kind {
	case EventKeyboard:
		if ev.Keyboard.Key == " " {
			h.translateKey = ev.Keyboard.Kind == KeyDown
		}
	case EventMouse:
		switch ev.Mouse.Kind {
		case MouseDown:
			if ev.Mouse.Button == MouseButtonLeft {
				h.leftDown = true
			}
		case MouseUp:
			if ev.Mouse.Button == MouseButtonLeft {
				h.leftDown = false
			}
		}
		if h.haveCursor {
			dx = ev.Mouse.X - h.cursorX
			dy = ev.Mouse.Y - h.cursorY
			moved = ev.Mouse.Kind == MouseMove && (dx != 0 || dy != 0)
		}
		h.cursorX, h.cursorY = ev.Mouse.X, ev.Mouse.Y
		h.haveCursor = true
	}

	switch h.state {
	case dragNone:
		switch {
		case h.translateKey && h.leftDown:
			h.state = dragCamera
		case h.leftDown && !h.translateKey:
			wx := h.cursorX + int32(camera.X)
			wy := h.cursorY + int32(camera.Y)
			if el, ok := doc.TopmostAt(wx, wy); ok {
				h.state = dragPressing
				h.pressedID = el.Id
			}
		}
	case dragCamera:
		switch {
		case !h.leftDown || !h.translateKey:
			h.state = dragNone
		case moved:
			outcomes = append(outcomes, TranslateOutcome(float64(-dx), float64(-dy)))
		}
	case dragPressing:
		switch {
		case moved:
			h.state = dragDragging
			h.draggingID = h.pressedID
			outcomes = append(outcomes, MoveElementOutcome(h.pressedID, dx, dy))
		case !h.leftDown:
			h.state = dragNone
			wx := h.cursorX + int32(camera.X)
			wy := h.cursorY + int32(camera.Y)
			outcomes = append(outcomes, ClickElementOutcome(h.pressedID, wx, wy))
		}
	case dragDragging:
		switch {
		case !h.leftDown:
			h.state = dragNone
		case moved:
			outcomes = append(outcomes, MoveElementOutcome(h.draggingID, dx, dy))
		}
	}

	if h.state != prevState || h.state == dragCamera {
		outcomes = append(outcomes, UpdateInfoOutcome(h.state == dragCamera))
	}

	style := h.cursorStyle()
	if style != h.lastCursor {
		h.lastCursor = style
		outcomes = append(outcomes, CursorStyleOutcome(style))
	}

	return outcomes
}

func (h *DragHandler) cursorStyle() CursorStyle {
	switch h.state {
	case dragCamera:
		return CursorGrabbing
	case dragNone:
		if h.translateKey {
			return CursorGrab
		}
		return CursorDefault
	default:
		return CursorDefault
	}
}
