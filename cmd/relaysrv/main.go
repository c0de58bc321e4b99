// Command relaysrv runs the collaborative diagram editor's relay: it
// owns the authoritative document and fans out updates to every
// connected client.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sofush/uml-go/relay"
	"github.com/sofush/uml-go/relay/config"
	"github.com/sofush/uml-go/relay/transport"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("relaysrv: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := relay.NewState()
	router := transport.NewRouter(state, cfg)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Printf("relaysrv: listening on %s (debug=%v)", cfg.Addr, cfg.Debug)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("relaysrv: http server error: %v", err)
		}
	}()

	stateDone := make(chan struct{})
	go func() {
		state.Run(ctx)
		close(stateDone)
	}()

	<-ctx.Done()
	log.Printf("relaysrv: shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("relaysrv: http shutdown error: %v", err)
	}

	<-stateDone
	return nil
}
