package relay

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func newTestHandler(t *testing.T) (*ClientHandler, *websocket.Conn, func()) {
	t.Helper()
	var handler *ClientHandler
	ready := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		handler = NewClientHandler(conn, 1000, 32)
		close(ready)
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	<-ready
	return handler, clientConn, srv.Close
}

func TestClientHandlersHaveUniqueIDs(t *testing.T) {
	h1, c1, stop1 := newTestHandler(t)
	defer stop1()
	defer c1.Close()
	h2, c2, stop2 := newTestHandler(t)
	defer stop2()
	defer c2.Close()

	assert.NotEqual(t, h1.ID(), h2.ID())
}

func TestSendDropsWhenOutboundFull(t *testing.T) {
	h, conn, stop := newTestHandler(t)
	defer stop()
	defer conn.Close()

	// Fill the outbound buffer without anyone draining the client side.
	for i := 0; i < 40; i++ {
		h.Send([]byte("x"))
	}
	// Should not block or panic even once the buffer (depth 32) is full.
}

func TestReadPumpReportsClosed(t *testing.T) {
	h, conn, stop := newTestHandler(t)
	defer stop()

	require.NoError(t, conn.Close())

	select {
	case msg := <-h.Inbound():
		assert.Equal(t, ReceivedClosed, msg.Kind)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ReceivedClosed")
	}
}
