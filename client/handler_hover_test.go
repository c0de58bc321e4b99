package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofush/uml-go/diagram"
)

func TestHoverEmitsOnlyOnChange(t *testing.T) {
	h := &HoverHandler{}
	doc := diagram.NewDocument()
	back := doc.AddElement(diagram.NewRectangle(0, 0, 200, 200, diagram.Black))
	front := doc.AddElement(diagram.NewRectangle(50, 50, 50, 50, diagram.White))
	cam := diagram.Camera{}

	outcomes := h.Handle(MouseEv(MouseEvent{Kind: MouseMove, X: 60, Y: 60}), doc, cam)
	require.Len(t, outcomes, 1)
	assert.Equal(t, front.Id, outcomes[0].ElementID)
	assert.True(t, outcomes[0].Hovered)

	// Same element again: no new outcomes.
	outcomes = h.Handle(MouseEv(MouseEvent{Kind: MouseMove, X: 61, Y: 61}), doc, cam)
	assert.Empty(t, outcomes)

	// Move to the background element: leave front, enter back.
	outcomes = h.Handle(MouseEv(MouseEvent{Kind: MouseMove, X: 10, Y: 10}), doc, cam)
	require.Len(t, outcomes, 2)
	assert.Equal(t, front.Id, outcomes[0].ElementID)
	assert.False(t, outcomes[0].Hovered)
	assert.Equal(t, back.Id, outcomes[1].ElementID)
	assert.True(t, outcomes[1].Hovered)

	// Move off all elements: leave back, nothing entered.
	outcomes = h.Handle(MouseEv(MouseEvent{Kind: MouseMove, X: 900, Y: 900}), doc, cam)
	require.Len(t, outcomes, 1)
	assert.Equal(t, back.Id, outcomes[0].ElementID)
	assert.False(t, outcomes[0].Hovered)
}

func TestHoverIgnoresNonMouseEvents(t *testing.T) {
	h := &HoverHandler{}
	doc := diagram.NewDocument()
	outcomes := h.Handle(KeyboardEv(KeyboardEvent{Kind: KeyDown, Key: "a"}), doc, diagram.Camera{})
	assert.Empty(t, outcomes)
}
