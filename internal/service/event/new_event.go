package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

// NewEvent records an event and returns it with the assigned ID and
// server timestamp.
func (s *Service) NewEvent(ctx context.Context, input NewEventInput) (domain.Event, error) {
	if err := input.Validate(); err != nil {
		return domain.Event{}, err
	}

	e, err := s.events.Create(ctx, domain.NewEvent{
		Source:    strings.TrimSpace(input.Source),
		Severity:  input.Severity,
		Msg:       input.Msg,
		EventHash: strings.TrimSpace(input.EventHash),
		Duration:  input.Duration,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("record event: %w", err)
	}

	s.log.InfoContext(ctx, "event recorded",
		slog.Int64("event_id", e.EventID),
		slog.String("source", e.Source),
		slog.String("severity", e.Severity.String()),
	)

	return e, nil
}
