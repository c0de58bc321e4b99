package diagram

import "fmt"

// Color is a tagged RGB triple. The tag is part of the wire format so
// future variants (e.g. named palette colours) can be added without
// breaking existing peers.
type Color struct {
	Rgb RgbColor `json:"Rgb"`
}

// RgbColor holds 8-bit channels.
type RgbColor struct {
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
}

// NewColor builds a tagged Color from 8-bit channels.
func NewColor(red, green, blue uint8) Color {
	return Color{Rgb: RgbColor{Red: red, Green: green, Blue: blue}}
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d %d %d)", c.Rgb.Red, c.Rgb.Green, c.Rgb.Blue)
}

var (
	Black = NewColor(0, 0, 0)
	White = NewColor(255, 255, 255)

	// DefaultBackground is the document background used when none is set.
	DefaultBackground = NewColor(240, 240, 240)

	// GridDotColor is the fixed dot-grid overlay colour.
	GridDotColor = NewColor(170, 170, 170)
)
