// Package transport wires the relay's HTTP surface: the /websocket
// upgrade that hands connections to relay.State, plus thin placeholders
// for the two contract endpoints spec.md keeps out of scope.
package transport

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/sofush/uml-go/relay"
	"github.com/sofush/uml-go/relay/config"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewRouter builds the relay's HTTP mux: GET / and GET /static/* as
// out-of-scope placeholders (spec.md §6 — "not part of the core"), and
// the /websocket upgrade wired to state.
func NewRouter(state *relay.State, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", indexHandler).Methods(http.MethodGet)
	r.PathPrefix("/static/").HandlerFunc(staticHandler).Methods(http.MethodGet)
	r.HandleFunc("/websocket", websocketHandler(state, cfg)).Methods(http.MethodGet)

	return r
}

// indexHandler is a placeholder: serving the actual index document is
// an external collaborator's responsibility (spec.md §1).
func indexHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// staticHandler is a placeholder for the same reason.
func staticHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

func websocketHandler(state *relay.State, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("transport: websocket upgrade failed: %v", err)
			return
		}

		handler := relay.NewClientHandler(conn, cfg.InboundBuffer, cfg.ClientSendBuffer)
		state.Connect(handler)
	}
}
