package event

import (
	"context"
	"fmt"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

// ViewEvent returns the stored events matching the given filters, ordered
// by event_id. With OnlyRecent set, only the newest event per hash group
// is considered.
func (s *Service) ViewEvent(ctx context.Context, input ViewEventInput) ([]domain.Event, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	events, err := s.events.List(ctx, domain.EventFilter{
		EventID:         input.EventID,
		Source:          input.Source,
		Severity:        input.Severity,
		EventHash:       input.EventHash,
		CreationTime:    input.CreationTime,
		MinCreationTime: input.MinCreationTime,
		MaxCreationTime: input.MaxCreationTime,
		Duration:        input.Duration,
		MinDuration:     input.MinDuration,
		MaxDuration:     input.MaxDuration,
		OnlyRecent:      input.OnlyRecent,
		Offset:          input.Offset,
		Count:           input.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

// GetEvent returns a single event by its ID.
func (s *Service) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	if id <= 0 {
		return domain.Event{}, domain.NewValidationError("event_id", "must be positive")
	}

	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event %d: %w", id, err)
	}

	return e, nil
}

// LatestEvent returns the newest event carrying the given hash.
func (s *Service) LatestEvent(ctx context.Context, hash string) (domain.Event, error) {
	if hash == "" {
		return domain.Event{}, domain.NewValidationError("event_hash", "required")
	}

	e, err := s.events.GetByHash(ctx, hash)
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event by hash: %w", err)
	}

	return e, nil
}
