package event

import (
	"context"
	"log/slog"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

type eventRepo interface {
	Create(ctx context.Context, in domain.NewEvent) (domain.Event, error)
	GetByID(ctx context.Context, id int64) (domain.Event, error)
	GetByHash(ctx context.Context, hash string) (domain.Event, error)
	List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error)
}

// Service provides event submission and query operations.
type Service struct {
	events eventRepo
	log    *slog.Logger
}

// NewService creates a new Event service.
func NewService(log *slog.Logger, events eventRepo) *Service {
	return &Service{
		events: events,
		log:    log.With("service", "event"),
	}
}
