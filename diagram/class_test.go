package diagram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassAttributesStackVertically(t *testing.T) {
	c := NewClass(10, 10, nil)
	c.RespondPrompt(PromptResponse{Text: &TextResponse{Response: "Account"}})
	first := c.AddAttribute("id: int")
	second := c.AddAttribute("balance: float")

	c.Initialize(NullCanvas{})

	require.True(t, c.Title.measured)
	assert.True(t, first.measured)
	assert.True(t, second.measured)

	// Each label sits below the previous one, separated by classSpacing.
	titleBottom := c.Title.PosY + int32(c.Title.height)
	assert.Equal(t, titleBottom+classSpacing, first.PosY)
	firstBottom := first.PosY + int32(first.height)
	assert.Equal(t, firstBottom+classSpacing, second.PosY)

	// All three labels share the same left margin.
	assert.Equal(t, c.PosX+int32(c.margin), c.Title.PosX)
	assert.Equal(t, c.PosX+int32(c.margin), first.PosX)
	assert.Equal(t, c.PosX+int32(c.margin), second.PosX)

	w, ok := c.width()
	require.True(t, ok)
	h, ok := c.height()
	require.True(t, ok)
	assert.Greater(t, w, 0.0)

	wantHeight := c.Title.height + classSpacing + first.height + classSpacing + second.height + float64(2*classMargin)
	assert.Equal(t, wantHeight, h)
}

func TestClassAdjustPositionMovesAttributes(t *testing.T) {
	c := NewClass(0, 0, nil)
	c.RespondPrompt(PromptResponse{Text: &TextResponse{Response: "Point"}})
	attr := c.AddAttribute("x: int")
	c.Initialize(NullCanvas{})

	titlePosBefore := c.Title.PosY
	attrPosBefore := attr.PosY

	c.AdjustPosition(5, 7)

	assert.Equal(t, int32(5), c.PosX)
	assert.Equal(t, int32(7), c.PosY)
	assert.Equal(t, titlePosBefore+7, c.Title.PosY)
	assert.Equal(t, attrPosBefore+7, attr.PosY)
}

func TestClassRoundTripWithAttributes(t *testing.T) {
	c := NewClass(0, 0, nil)
	c.RespondPrompt(PromptResponse{Text: &TextResponse{Response: "Account"}})
	c.AddAttribute("id: int")
	c.Initialize(NullCanvas{})

	el := NewElement(c)
	data, err := json.Marshal(el)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"attributes"`)

	var decoded Element
	require.NoError(t, json.Unmarshal(data, &decoded))

	got, ok := decoded.Shape.(*Class)
	require.True(t, ok)
	require.Len(t, got.Attributes, 1)
	assert.Equal(t, "id: int", got.Attributes[0].Text)

	// A freshly decoded class restores its margin and measures cleanly.
	got.Initialize(NullCanvas{})
	_, ok = got.width()
	assert.True(t, ok)
}

func TestClassWithNoAttributesOmitsField(t *testing.T) {
	c := NewClass(0, 0, nil)
	c.RespondPrompt(PromptResponse{Text: &TextResponse{Response: "Empty"}})

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"attributes"`)
}
