package relay

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sofush/uml-go/diagram"
)

const closeTimeout = 1 * time.Second

// ReceivedKind tags what a ClientHandler's read-pump observed.
type ReceivedKind int

const (
	ReceivedDocument ReceivedKind = iota
	ReceivedDeserializeError
	ReceivedClosed
)

// Received is one message read from a client connection.
type Received struct {
	Kind ReceivedKind
	Raw  []byte // the exact bytes received, for echo-without-reparse
	Doc  diagram.Document
	Err  error
}

// ClientHandler is a per-connection duplex wrapper: a unique Id, an
// inbound queue fed by a read-pump goroutine, and an outbound queue fed
// by Send and drained by a write-pump goroutine.
//
// Grounded on original_source/uml-server/src/client_handler.rs's
// read/send/close trio for the shape of the operations, and on the
// teacher's client{conn,send chan []byte} pattern (server/handlers.go)
// for the outbound queue + non-blocking drop-newest send.
type ClientHandler struct {
	id    diagram.Id
	token diagram.ClientToken
	conn  *websocket.Conn

	inbound  chan Received
	outbound chan []byte
	done     chan struct{}
}

// NewClientHandler starts a read-pump and write-pump over conn.
// inboundBuf bounds the inbound channel (spec.md §5: 1000).
// outboundBuf bounds the per-client outbound queue
// (SPEC_FULL.md §4.9.1; the teacher's own client send buffer).
func NewClientHandler(conn *websocket.Conn, inboundBuf, outboundBuf int) *ClientHandler {
	h := &ClientHandler{
		id:       diagram.NewId(),
		token:    diagram.NewClientToken(),
		conn:     conn,
		inbound:  make(chan Received, inboundBuf),
		outbound: make(chan []byte, outboundBuf),
		done:     make(chan struct{}),
	}
	go h.readPump()
	go h.writePump()
	return h
}

func (h *ClientHandler) ID() diagram.Id { return h.id }

// Inbound is the channel the relay State selects over to read this
// handler's next message.
func (h *ClientHandler) Inbound() <-chan Received { return h.inbound }

func (h *ClientHandler) readPump() {
	defer close(h.inbound)
	for {
		kind, data, err := h.conn.ReadMessage()
		if err != nil {
			h.inbound <- Received{Kind: ReceivedClosed, Err: err}
			return
		}
		if kind != websocket.TextMessage {
			// Non-text frames are a protocol violation but not fatal on
			// their own; the relay logs and ignores (spec.md §4.10).
			log.Printf("relay: ignoring non-text frame (type %d) from client %s", kind, h.id)
			continue
		}

		var doc diagram.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			h.inbound <- Received{Kind: ReceivedDeserializeError, Raw: data, Err: err}
			return
		}
		h.inbound <- Received{Kind: ReceivedDocument, Raw: data, Doc: doc}
	}
}

// writePump is the only goroutine that calls conn.WriteMessage for
// outgoing broadcasts, draining the outbound queue until the
// connection closes. A write failure here surfaces to the relay State
// indirectly: it closes the connection, which unblocks readPump with
// an error and reports ReceivedClosed on the usual path.
func (h *ClientHandler) writePump() {
	for {
		select {
		case raw, ok := <-h.outbound:
			if !ok {
				return
			}
			if err := h.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				log.Printf("relay: write to client %s failed, closing: %v", h.id, err)
				h.conn.Close()
				return
			}
		case <-h.done:
			return
		}
	}
}

// Send enqueues raw JSON text for broadcast to this client. If the
// outbound queue is full the message is dropped (drop-newest policy,
// SPEC_FULL.md §4.9.1) rather than blocking the relay's single-writer
// event loop on one slow peer.
func (h *ClientHandler) Send(raw []byte) {
	select {
	case h.outbound <- raw:
	default:
		log.Printf("relay: dropping broadcast to client %s, outbound queue full", h.id)
	}
}

// SendInitial synchronously sends the initial document snapshot to a
// newly connected client, per spec.md §4.9 ("if the send fails, drop").
func (h *ClientHandler) SendInitial(raw []byte) error {
	if err := h.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		return fmt.Errorf("send initial document to client %s: %w", h.id, err)
	}
	return nil
}

// Close sends a close frame with reason "Restart", bounded by a
// 1-second timeout.
func (h *ClientHandler) Close() error {
	close(h.done)
	msg := websocket.FormatCloseMessage(websocket.CloseServiceRestart, "Restart")
	deadline := time.Now().Add(closeTimeout)
	if err := h.conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
		return fmt.Errorf("close client %s: %w", h.id, err)
	}
	return h.conn.Close()
}
