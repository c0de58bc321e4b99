package diagram

// InteractionState is transient, never serialised: the only thing it
// tracks today is whether the cursor is currently hovering the element.
type InteractionState struct {
	hover bool
}

func (s *InteractionState) SetHover(v bool) {
	s.hover = v
}

func (s InteractionState) IsHovered() bool {
	return s.hover
}
