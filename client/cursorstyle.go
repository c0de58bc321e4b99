package client

// CursorStyle is the host-facing cursor presentation. The host maps
// these to CSS cursor values (default/grab/grabbing).
type CursorStyle int

const (
	CursorDefault CursorStyle = iota
	CursorGrab
	CursorGrabbing
)

func (c CursorStyle) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	default:
		return "default"
	}
}
