package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofush/uml-go/diagram"
)

func TestDragCameraPan(t *testing.T) {
	h := &DragHandler{}
	doc := diagram.NewDocument()
	cam := diagram.Camera{}

	var all []Outcome
	all = append(all, h.Handle(KeyboardEv(KeyboardEvent{Kind: KeyDown, Key: " "}), doc, cam)...)
	all = append(all, h.Handle(MouseEv(MouseEvent{Kind: MouseDown, Button: MouseButtonLeft, X: 0, Y: 0}), doc, cam)...)
	all = append(all, h.Handle(MouseEv(MouseEvent{Kind: MouseMove, Button: MouseButtonLeft, X: 100, Y: -50}), doc, cam)...)

	var translates []Outcome
	var cursorStyles []Outcome
	for _, o := range all {
		switch o.Kind {
		case OutcomeTranslate:
			translates = append(translates, o)
		case OutcomeCursorStyle:
			cursorStyles = append(cursorStyles, o)
		}
	}

	require.Len(t, translates, 1)
	assert.Equal(t, -100.0, translates[0].DX)
	assert.Equal(t, 50.0, translates[0].DY)
	// Holding Space while idle switches to Grab; pressing the button then
	// starts the pan and switches to Grabbing.
	require.Len(t, cursorStyles, 2)
	assert.Equal(t, CursorGrab, cursorStyles[0].Cursor)
	assert.Equal(t, CursorGrabbing, cursorStyles[1].Cursor)
}

func TestDragClickVsDrag(t *testing.T) {
	h := &DragHandler{}
	doc := diagram.NewDocument()
	el := doc.AddElement(diagram.NewRectangle(150, 150, 100, 100, diagram.Black))
	cam := diagram.Camera{}

	h.Handle(MouseEv(MouseEvent{Kind: MouseDown, Button: MouseButtonLeft, X: 200, Y: 200}), doc, cam)
	outcomes := h.Handle(MouseEv(MouseEvent{Kind: MouseUp, Button: MouseButtonLeft, X: 200, Y: 200}), doc, cam)

	var clicks, moves []Outcome
	for _, o := range outcomes {
		if o.Kind == OutcomeClickElement {
			clicks = append(clicks, o)
		}
		if o.Kind == OutcomeMoveElement {
			moves = append(moves, o)
		}
	}

	require.Len(t, clicks, 1)
	assert.Equal(t, el.Id, clicks[0].ElementID)
	assert.Equal(t, int32(200), clicks[0].ClickX)
	assert.Equal(t, int32(200), clicks[0].ClickY)
	assert.Empty(t, moves)
}

func TestDragEndsInNoneAfterLeftUp(t *testing.T) {
	h := &DragHandler{}
	doc := diagram.NewDocument()
	doc.AddElement(diagram.NewRectangle(0, 0, 500, 500, diagram.Black))
	cam := diagram.Camera{}

	h.Handle(MouseEv(MouseEvent{Kind: MouseDown, Button: MouseButtonLeft, X: 10, Y: 10}), doc, cam)
	h.Handle(MouseEv(MouseEvent{Kind: MouseMove, Button: MouseButtonLeft, X: 20, Y: 30}), doc, cam)
	h.Handle(MouseEv(MouseEvent{Kind: MouseUp, Button: MouseButtonLeft, X: 20, Y: 30}), doc, cam)

	assert.Equal(t, dragNone, h.state)
}
