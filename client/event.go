// Package client implements the browser-side event/state core: a
// closed event taxonomy, independent handlers that translate events
// into declarative outcomes, and a State that applies them.
package client

import "github.com/sofush/uml-go/diagram"

// MouseButton identifies a physical pointer button. Only Left is ever
// produced by the handlers here, but the type leaves room for others.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
)

// MouseEventKind tags the variant carried by a MouseEvent.
type MouseEventKind int

const (
	MouseDown MouseEventKind = iota
	MouseUp
	MouseMove
	MouseOut
	MouseEnter
)

// MouseEvent is a pointer event in screen-space pixels.
type MouseEvent struct {
	Kind   MouseEventKind
	X, Y   int32
	Button MouseButton
}

// KeyboardEventKind tags the variant carried by a KeyboardEvent.
type KeyboardEventKind int

const (
	KeyDown KeyboardEventKind = iota
	KeyUp
)

// KeyboardEvent names the key involved, using the same string space as
// the host's key-name convention (e.g. "a", "Escape", " ").
type KeyboardEvent struct {
	Kind KeyboardEventKind
	Key  string
}

// WsEventKind tags the variant carried by a WsEvent.
type WsEventKind int

const (
	WsReceived WsEventKind = iota
	WsReceiveError
	WsSendError
)

// WsEvent carries a WebSocket occurrence up into the event core.
// Text holds the frame body when Kind is WsReceived; Err holds the
// failure when Kind is WsReceiveError or WsSendError.
type WsEvent struct {
	Kind WsEventKind
	Text string
	Err  error
}

// EventKind tags the variant carried by an Event.
type EventKind int

const (
	EventResize EventKind = iota
	EventInitialize
	EventRedraw
	EventMouse
	EventKeyboard
	EventWebSocket
	EventPromptResponse
)

// Event is the single input type accepted by State.Dispatch. Exactly
// one of the payload fields is meaningful, selected by Kind.
type Event struct {
	Kind EventKind

	Mouse    MouseEvent
	Keyboard KeyboardEvent
	WebSock  WsEvent

	PromptElementID diagram.Id
	PromptResponse  diagram.PromptResponse
}

func ResizeEvent() Event     { return Event{Kind: EventResize} }
func InitializeEvent() Event { return Event{Kind: EventInitialize} }
func RedrawEvent() Event     { return Event{Kind: EventRedraw} }

func MouseEv(ev MouseEvent) Event       { return Event{Kind: EventMouse, Mouse: ev} }
func KeyboardEv(ev KeyboardEvent) Event { return Event{Kind: EventKeyboard, Keyboard: ev} }
func WebSocketEv(ev WsEvent) Event      { return Event{Kind: EventWebSocket, WebSock: ev} }

func PromptResponseEv(id diagram.Id, resp diagram.PromptResponse) Event {
	return Event{Kind: EventPromptResponse, PromptElementID: id, PromptResponse: resp}
}
