package client

import (
	"encoding/json"
	"log"

	"github.com/sofush/uml-go/diagram"
)

// WebSocketHandler translates relay traffic into document updates. It
// never initiates reconnection — State handles that on Initialize.
type WebSocketHandler struct{}

func (h *WebSocketHandler) Handle(ev Event, doc *diagram.Document, camera diagram.Camera) []Outcome {
	if ev.Kind != EventWebSocket {
		return nil
	}

	switch ev.WebSock.Kind {
	case WsReceived:
		return h.handleMessage(ev.WebSock.Text)
	case WsReceiveError:
		log.Printf("client: websocket receive error: %v", ev.WebSock.Err)
		return []Outcome{NoneOutcome()}
	case WsSendError:
		log.Printf("client: websocket send error: %v", ev.WebSock.Err)
		return []Outcome{NoneOutcome()}
	default:
		return nil
	}
}

func (h *WebSocketHandler) handleMessage(text string) []Outcome {
	var doc diagram.Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		log.Printf("client: dropping undeserialisable frame: %v", err)
		return []Outcome{NoneOutcome()}
	}
	return []Outcome{UpdateDocumentOutcome(&doc)}
}
