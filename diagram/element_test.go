package diagram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementRoundTripRectangle(t *testing.T) {
	el := NewElement(NewRectangle(10, 20, 30, 40, NewColor(1, 2, 3)))

	data, err := json.Marshal(el)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"inner"`)
	assert.Contains(t, string(data), `"Rectangle"`)

	var decoded Element
	require.NoError(t, json.Unmarshal(data, &decoded))

	rect, ok := decoded.Shape.(*Rectangle)
	require.True(t, ok)
	assert.Equal(t, int32(10), rect.X())
	assert.Equal(t, int32(20), rect.Y())
	assert.NotEqual(t, el.Id, decoded.Id, "ids are process-local, never round-tripped")
}

func TestElementRoundTripClass(t *testing.T) {
	class := NewClass(0, 0, nil)
	class.RespondPrompt(PromptResponse{Text: &TextResponse{Response: "Account"}})
	class.Initialize(NullCanvas{})

	el := NewElement(class)
	data, err := json.Marshal(el)
	require.NoError(t, err)

	var decoded Element
	require.NoError(t, json.Unmarshal(data, &decoded))

	got, ok := decoded.Shape.(*Class)
	require.True(t, ok)
	require.NotNil(t, got.Title)
	assert.Equal(t, "Account", got.Title.Text)
}

func TestUnmarshalUnknownKind(t *testing.T) {
	var el Element
	err := json.Unmarshal([]byte(`{"inner":{"Circle":{}}}`), &el)
	assert.Error(t, err)
}

func TestUnmarshalMultipleTags(t *testing.T) {
	var el Element
	err := json.Unmarshal([]byte(`{"inner":{"Rectangle":{},"Label":{}}}`), &el)
	assert.Error(t, err)
}
