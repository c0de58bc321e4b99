// clientsim connects a headless client core to a running relay and
// exercises it with a scripted sequence of events: resize, a keypress
// that adds a class, and a short idle period with the connection open
// before exiting (the relay does not send a client's own update back to
// it). It uses a NullCanvas, so nothing is actually drawn — this is a
// smoke test for the event/outcome wiring against a real connection,
// not a UI.
//
// Usage:
//
//	clientsim [--addr <host:port>] [--timeout <seconds>]
//
// Defaults: addr="127.0.0.1:8080", timeout=5.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/sofush/uml-go/client"
	"github.com/sofush/uml-go/diagram"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "relay host:port")
	timeout := flag.Int("timeout", 5, "seconds to run before exiting")
	flag.Parse()

	run(*addr, time.Duration(*timeout)*time.Second)
}

func run(addr string, timeout time.Duration) {
	state := client.NewState(addr, diagram.NullCanvas{})
	state.SetViewport(1280, 720)

	state.Dispatch(client.InitializeEvent())
	state.Dispatch(client.ResizeEvent())

	state.Dispatch(client.MouseEv(client.MouseEvent{Kind: client.MouseMove, X: 100, Y: 100}))
	state.Dispatch(client.KeyboardEv(client.KeyboardEvent{Kind: client.KeyDown, Key: "a"}))
	state.Dispatch(client.KeyboardEv(client.KeyboardEvent{Kind: client.KeyUp, Key: "a"}))

	doc := state.Document()
	log.Printf("clientsim: document now has %d element(s), synchronized=%v", len(doc.Elements), doc.Synchronized())

	time.Sleep(timeout)
	log.Printf("clientsim: exiting after %s", timeout)
}
