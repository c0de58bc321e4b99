package client

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/sofush/uml-go/diagram"
)

const reconnectDelay = 500 * time.Millisecond

// handler is implemented by each of the four independent event
// handlers: drag, hover, keypress, websocket.
type handler interface {
	Handle(ev Event, doc *diagram.Document, camera diagram.Camera) []Outcome
}

// State is the single process-wide entry point for the client event
// core. It is guarded by a mutex rather than true thread-local storage
// (see DESIGN.md): the assumption is a single OS thread driving the
// host's event loop, so contention is never expected in practice.
type State struct {
	mu sync.Mutex

	doc    *diagram.Document
	camera diagram.Camera
	canvas diagram.Canvas

	drag     *DragHandler
	hover    *HoverHandler
	keypress *KeypressHandler
	ws       *WebSocketHandler
	handlers []handler

	prompts  *PromptRegistry
	wsClient *WsClient
	addr     string

	viewportW, viewportH float64

	cursor CursorStyle
	info   bool
}

// NewState builds a State ready to receive events. addr is the relay's
// host:port; canvas is the host-supplied drawing surface.
func NewState(addr string, canvas diagram.Canvas) *State {
	prompts := &PromptRegistry{}
	s := &State{
		doc:      diagram.NewDocument(),
		canvas:   canvas,
		addr:     addr,
		prompts:  prompts,
		drag:     &DragHandler{},
		hover:    &HoverHandler{},
		keypress: NewKeypressHandler(prompts),
		ws:       &WebSocketHandler{},
	}
	s.handlers = []handler{s.drag, s.hover, s.keypress, s.ws}
	return s
}

// SetViewport records the canvas's current backing-store size. The host
// calls this in response to its own resize handling, before dispatching
// a Resize event.
func (s *State) SetViewport(w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewportW, s.viewportH = w, h
}

// Document returns a snapshot pointer to the current document. Callers
// must not mutate it; it is owned by State.
func (s *State) Document() *diagram.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

func (s *State) CursorStyle() CursorStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Dispatch is the single entry point for every event, from the host's
// input plumbing and from the WebSocket reader goroutine alike — both
// post here, giving total ordering with no data races.
func (s *State) Dispatch(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case EventResize:
		s.redrawLocked()
		return
	case EventInitialize:
		s.connectLocked()
		return
	case EventRedraw:
		s.redrawLocked()
		return
	case EventPromptResponse:
		s.respondPromptLocked(ev)
		return
	}

	var applied []Outcome
	for _, h := range s.handlers {
		for _, o := range h.Handle(ev, s.doc, s.camera) {
			s.applyLocked(o)
			applied = append(applied, o)
		}
	}

	if needsSync(applied) {
		s.syncDocumentLocked()
	}
}

func needsSync(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Kind == OutcomeAddElement || o.Kind == OutcomeMoveElement {
			return true
		}
	}
	return false
}

func (s *State) applyLocked(o Outcome) {
	switch o.Kind {
	case OutcomeNone:
	case OutcomeUpdateDocument:
		s.doc = o.Document
		// Measurement only; remote-origin elements do not raise local
		// prompts, so their PendingPrompt results are discarded here.
		s.doc.Initialize(s.canvas)
	case OutcomeTranslate:
		s.camera.Translate(o.DX, o.DY)
	case OutcomeMoveElement:
		if el, ok := s.doc.ElementByID(o.ElementID); ok {
			el.Shape.AdjustPosition(o.MoveDX, o.MoveDY)
			s.doc.MarkDirty()
		}
	case OutcomeClickElement:
		if el, ok := s.doc.ElementByID(o.ElementID); ok {
			if prompt := el.Shape.Click(o.ClickX, o.ClickY); prompt != nil {
				s.prompts.Open(el.Id, *prompt)
			}
		}
	case OutcomeHoverElement:
		if el, ok := s.doc.ElementByID(o.ElementID); ok {
			if o.Hovered {
				el.Shape.HoverEnter()
			} else {
				el.Shape.HoverLeave()
			}
		}
	case OutcomeCursorStyle:
		s.cursor = o.Cursor
	case OutcomeUpdateInfo:
		s.info = o.InfoVisible
	case OutcomeAddElement:
		el := s.doc.AddElement(o.NewElement)
		if prompt := el.InitializeAndPrompt(s.canvas); prompt != nil {
			s.prompts.Open(el.Id, *prompt)
		}
	}
}

func (s *State) respondPromptLocked(ev Event) {
	el, ok := s.doc.ElementByID(ev.PromptElementID)
	if !ok {
		return
	}
	el.Shape.RespondPrompt(ev.PromptResponse)
	s.doc.MarkDirty()
	s.prompts.Respond()
}

func (s *State) redrawLocked() {
	s.doc.Initialize(s.canvas)
	s.doc.Draw(s.canvas, s.camera, diagram.Size{Width: s.viewportW, Height: s.viewportH})
}

func (s *State) syncDocumentLocked() {
	if s.wsClient == nil {
		log.Printf("client: sync requested with no connection, deferring")
		return
	}
	data, err := json.Marshal(s.doc)
	if err != nil {
		log.Printf("client: failed to serialise document: %v", err)
		return
	}
	s.wsClient.Send(string(data))
	s.doc.AssumeSynchronized()
}

func (s *State) connectLocked() {
	dispatch := func(ev Event) { s.Dispatch(ev) }
	client, err := DialWsClient(context.Background(), s.addr, dispatch)
	if err != nil {
		log.Printf("client: connect failed, retrying in %s: %v", reconnectDelay, err)
		time.AfterFunc(reconnectDelay, func() { s.Dispatch(InitializeEvent()) })
		return
	}
	s.wsClient = client
}
