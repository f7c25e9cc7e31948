// Command log-service serves the event API: it records structured events
// in the append-only store and answers filtered queries over them.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/postlog-io/postlog-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunLogService(ctx); err != nil {
		log.Fatalf("log-service: %v", err)
	}
}
