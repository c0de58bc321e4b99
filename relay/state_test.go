package relay_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofush/uml-go/relay"
	"github.com/sofush/uml-go/relay/config"
	"github.com/sofush/uml-go/relay/transport"
)

func startRelay(t *testing.T) (wsURL string, stop func()) {
	t.Helper()
	cfg := &config.Config{ClientSendBuffer: 32, InboundBuffer: 1000}
	state := relay.NewState()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		state.Run(ctx)
		close(done)
	}()

	srv := httptest.NewServer(transport.NewRouter(state, cfg))
	wsURL = "ws" + strings.TrimPrefix(srv.URL, "http") + "/websocket"

	return wsURL, func() {
		cancel()
		<-done
		srv.Close()
	}
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestNewClientReceivesInitialDocument(t *testing.T) {
	url, stop := startRelay(t)
	defer stop()

	conn := dial(t, url)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, kind)
	assert.Contains(t, string(data), `"elements"`)
}

func TestBroadcastReachesOtherClientsOnly(t *testing.T) {
	url, stop := startRelay(t)
	defer stop()

	a := dial(t, url)
	defer a.Close()
	b := dial(t, url)
	defer b.Close()

	// Drain each connection's initial document snapshot.
	a.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := a.ReadMessage()
	require.NoError(t, err)
	b.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = b.ReadMessage()
	require.NoError(t, err)

	payload := `{"elements":[{"inner":{"Rectangle":{"x":0,"y":0,"width":10,"height":10,"color":{"Rgb":{"red":0,"green":0,"blue":0}}}}}],"color":{"Rgb":{"red":240,"green":240,"blue":240}}}`
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(payload)))

	b.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := b.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(data))

	// Sender must not receive its own echo.
	a.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err = a.ReadMessage()
	assert.Error(t, err)
}

func TestRelayDropsClientOnBadFrame(t *testing.T) {
	url, stop := startRelay(t)
	defer stop()

	bad := dial(t, url)
	defer bad.Close()
	good := dial(t, url)
	defer good.Close()

	bad.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := bad.ReadMessage()
	require.NoError(t, err)
	good.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = good.ReadMessage()
	require.NoError(t, err)

	require.NoError(t, bad.WriteMessage(websocket.TextMessage, []byte("not-json")))

	good.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err = good.ReadMessage()
	assert.Error(t, err, "the remaining client should see nothing from the dropped peer")
}
