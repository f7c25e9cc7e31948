// Package stdout implements the dry-run delivery backend: the outbound
// message is written to the local log sink and no network action happens.
package stdout

import (
	"context"
	"log/slog"
)

// Sender logs outbound mail instead of delivering it. It never fails.
type Sender struct {
	log *slog.Logger
}

// New creates a dry-run sender.
func New(logger *slog.Logger) *Sender {
	return &Sender{log: logger.With("sender", "dryrun")}
}

// Send writes the would-be message to the log and reports success.
func (s *Sender) Send(ctx context.Context, from, to, subject, htmlBody string) error {
	s.log.InfoContext(ctx, "dry-run mail delivery",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_bytes", len(htmlBody)),
	)
	return nil
}
