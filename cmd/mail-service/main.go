// Command mail-service serves the mail API: it delivers submitted messages
// through the configured backend and records them in the append-only store.
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

	if err := app.RunMailService(ctx); err != nil {
		log.Fatalf("mail-service: %v", err)
	}
}
