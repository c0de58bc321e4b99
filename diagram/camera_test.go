package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridOffsetWrapsNegative(t *testing.T) {
	cam := Camera{X: -10, Y: 0}
	offX, offY := cam.GridOffset()
	assert.Equal(t, 10.0, offX)
	assert.Equal(t, GridSpacing, offY)
}

func TestGridOffsetAtOrigin(t *testing.T) {
	cam := Camera{}
	offX, offY := cam.GridOffset()
	assert.Equal(t, GridSpacing, offX)
	assert.Equal(t, GridSpacing, offY)
}

func TestIdsAreUnique(t *testing.T) {
	seen := make(map[Id]bool)
	for i := 0; i < 1000; i++ {
		id := NewId()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
