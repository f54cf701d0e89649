package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/pixelrun/relay"
)

func main() {
	port := flag.Uint("port", 7373, "HTTP listen port")
	static := flag.String("static", "", "Directory of static files to serve (empty = none)")
	chatTTL := flag.Duration("chat-ttl", relay.DefaultOptions().ChatTTL, "How long a chat line stays visible")
	flag.Parse()

	opts := relay.DefaultOptions()
	opts.ChatTTL = *chatTTL

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := relay.NewHub(opts)
	go hub.Run(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           relay.SetupRoutes(hub, *static),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Println("[relay] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[relay] shutdown: %v", err)
		}
	}()

	log.Printf("[relay] starting on %s (chat TTL=%s)", srv.Addr, opts.ChatTTL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("[relay] fatal: %v", err)
	}
	<-hub.Done()
}
