// Package relay implements the central event loop: a single task owns
// the authoritative Document and the live client handlers, fanning out
// updates to every peer except the sender.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"reflect"
	"sync"

	"github.com/sofush/uml-go/diagram"
)

// State is the relay's single-writer event loop. No mutex guards doc or
// handlers: only the goroutine running Run ever touches them, per
// spec.md §4.9 ("no locking is needed because only that task mutates
// either").
type State struct {
	doc      *diagram.Document
	handlers []*ClientHandler

	newConn chan *ClientHandler
}

// NewState returns a State with an empty authoritative document.
func NewState() *State {
	return &State{
		doc:     diagram.NewDocument(),
		newConn: make(chan *ClientHandler, 16),
	}
}

// Connect hands a freshly accepted connection to the relay loop. The
// transport layer calls this once per successful WebSocket upgrade.
func (s *State) Connect(conn *ClientHandler) {
	s.newConn <- conn
}

// Run drives the event loop until ctx is cancelled, then closes every
// live connection (bounded by each handler's own close timeout) before
// returning.
//
// The select over a dynamic, heterogeneous set of channels (new
// connections, N live handlers' inbound queues, the stop signal) has no
// static-arity equivalent in Go; reflect.Select is the stdlib's own
// answer to exactly this shape of problem — see DESIGN.md.
func (s *State) Run(ctx context.Context) {
	for {
		cases := make([]reflect.SelectCase, 0, len(s.handlers)+2)
		cases = append(cases,
			reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(s.newConn)},
			reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())},
		)
		for _, h := range s.handlers {
			cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(h.Inbound())})
		}

		chosen, recv, recvOK := reflect.Select(cases)

		switch chosen {
		case 0:
			s.handleConnect(recv.Interface().(*ClientHandler))
		case 1:
			s.shutdown()
			return
		default:
			h := s.handlers[chosen-2]
			if !recvOK {
				s.removeHandler(h)
				continue
			}
			s.handleMessage(h, recv.Interface().(Received))
		}
	}
}

func (s *State) handleConnect(h *ClientHandler) {
	data, err := json.Marshal(s.doc)
	if err != nil {
		log.Printf("relay: failed to serialise document for new client %s: %v", h.ID(), err)
		return
	}
	if err := h.SendInitial(data); err != nil {
		log.Printf("relay: dropping client %s, initial send failed: %v", h.ID(), err)
		return
	}
	s.handlers = append(s.handlers, h)
	log.Printf("relay: client %s (token %s) connected (%d total)", h.ID(), h.token, len(s.handlers))
}

func (s *State) handleMessage(sender *ClientHandler, msg Received) {
	switch msg.Kind {
	case ReceivedDocument:
		s.doc = &msg.Doc
		s.broadcastExcept(sender, msg.Raw)
	case ReceivedDeserializeError:
		log.Printf("relay: dropping client %s, undeserialisable frame: %v", sender.ID(), msg.Err)
		s.removeHandler(sender)
		s.closeAsync(sender, "bad frame")
	case ReceivedClosed:
		log.Printf("relay: client %s disconnected: %v", sender.ID(), msg.Err)
		s.removeHandler(sender)
		s.closeAsync(sender, "disconnect")
	}
}

// closeAsync releases a removed handler's writePump goroutine and
// underlying connection. Run off the event-loop goroutine since Close
// can block up to its own close timeout.
func (s *State) closeAsync(h *ClientHandler, reason string) {
	go func() {
		if err := h.Close(); err != nil {
			log.Printf("relay: closing client %s after %s: %v", h.ID(), reason, err)
		}
	}()
}

// broadcastExcept forwards raw byte-for-byte to every handler but
// sender, sequentially from this task so observers see a globally
// consistent order (spec.md §4.9). Each handler's own write-pump and
// outbound queue absorb a slow peer; a peer whose connection actually
// dies surfaces through its own Inbound() as ReceivedClosed.
func (s *State) broadcastExcept(sender *ClientHandler, raw []byte) {
	for _, h := range s.handlers {
		if h == sender {
			continue
		}
		h.Send(raw)
	}
}

func (s *State) removeHandler(h *ClientHandler) {
	for i, cur := range s.handlers {
		if cur == h {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return
		}
	}
}

func (s *State) shutdown() {
	var wg sync.WaitGroup
	for _, h := range s.handlers {
		wg.Add(1)
		go func(h *ClientHandler) {
			defer wg.Done()
			if err := h.Close(); err != nil {
				log.Printf("relay: %s", fmt.Errorf("closing client %s: %w", h.ID(), err))
			}
		}(h)
	}
	wg.Wait()
	s.handlers = nil
}
