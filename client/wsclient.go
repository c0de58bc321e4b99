package client

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
)

// WsClient owns a single WebSocket connection to the relay. A reader
// goroutine forwards every frame into the dispatch function supplied at
// construction as WebSocket events; the writer is shared behind a mutex
// so concurrent Send calls serialise cleanly.
type WsClient struct {
	conn     *websocket.Conn
	writeMu  sync.Mutex
	dispatch func(Event)
}

// DialWsClient opens a WebSocket to addr's "/websocket" path and starts
// its reader goroutine. dispatch is called (from the reader goroutine)
// for every frame, error, and send failure.
func DialWsClient(ctx context.Context, addr string, dispatch func(Event)) (*WsClient, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/websocket"}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u.String(), err)
	}

	c := &WsClient{conn: conn, dispatch: dispatch}
	go c.readLoop()
	return c, nil
}

func (c *WsClient) readLoop() {
	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			c.dispatch(WebSocketEv(WsEvent{Kind: WsReceiveError, Err: err}))
			return
		}
		if kind != websocket.TextMessage {
			log.Printf("client: ignoring non-text frame (type %d)", kind)
			continue
		}
		c.dispatch(WebSocketEv(WsEvent{Kind: WsReceived, Text: string(data)}))
	}
}

// Send feeds every item to the connection under the write lock and
// reports a WebSocket(SendError) event on the first failure. There is
// no queue bound; callers must not send faster than they can tolerate
// the resulting buffering on the underlying connection.
func (c *WsClient) Send(items ...string) {
	go func() {
		c.writeMu.Lock()
		defer c.writeMu.Unlock()
		for _, item := range items {
			if err := c.conn.WriteMessage(websocket.TextMessage, []byte(item)); err != nil {
				c.dispatch(WebSocketEv(WsEvent{Kind: WsSendError, Err: err}))
				return
			}
		}
	}()
}

// Close closes the underlying connection.
func (c *WsClient) Close() error {
	return c.conn.Close()
}
