package client

import "github.com/sofush/uml-go/diagram"

// OutcomeKind tags the variant carried by an Outcome.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeUpdateDocument
	OutcomeTranslate
	OutcomeMoveElement
	OutcomeClickElement
	OutcomeHoverElement
	OutcomeCursorStyle
	OutcomeUpdateInfo
	OutcomeAddElement
)

// Outcome is a pure value describing one desired state mutation.
// Handlers emit these; State is the only thing that applies them.
type Outcome struct {
	Kind OutcomeKind

	Document *diagram.Document // OutcomeUpdateDocument

	DX, DY float64 // OutcomeTranslate (screen-space delta)

	ElementID diagram.Id // MoveElement / ClickElement / HoverElement
	MoveDX    int32      // OutcomeMoveElement (world-space delta)
	MoveDY    int32
	ClickX    int32 // OutcomeClickElement (world-space absolute)
	ClickY    int32
	Hovered   bool // OutcomeHoverElement

	Cursor CursorStyle // OutcomeCursorStyle

	InfoVisible bool // OutcomeUpdateInfo

	NewElement diagram.Shape // OutcomeAddElement
}

func NoneOutcome() Outcome { return Outcome{Kind: OutcomeNone} }

func UpdateDocumentOutcome(doc *diagram.Document) Outcome {
	return Outcome{Kind: OutcomeUpdateDocument, Document: doc}
}

func TranslateOutcome(dx, dy float64) Outcome {
	return Outcome{Kind: OutcomeTranslate, DX: dx, DY: dy}
}

func MoveElementOutcome(id diagram.Id, dx, dy int32) Outcome {
	return Outcome{Kind: OutcomeMoveElement, ElementID: id, MoveDX: dx, MoveDY: dy}
}

func ClickElementOutcome(id diagram.Id, x, y int32) Outcome {
	return Outcome{Kind: OutcomeClickElement, ElementID: id, ClickX: x, ClickY: y}
}

func HoverElementOutcome(id diagram.Id, hovered bool) Outcome {
	return Outcome{Kind: OutcomeHoverElement, ElementID: id, Hovered: hovered}
}

func CursorStyleOutcome(style CursorStyle) Outcome {
	return Outcome{Kind: OutcomeCursorStyle, Cursor: style}
}

func UpdateInfoOutcome(visible bool) Outcome {
	return Outcome{Kind: OutcomeUpdateInfo, InfoVisible: visible}
}

func AddElementOutcome(shape diagram.Shape) Outcome {
	return Outcome{Kind: OutcomeAddElement, NewElement: shape}
}
