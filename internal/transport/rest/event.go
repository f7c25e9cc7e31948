package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/postlog-io/postlog-backend/internal/domain"
	"github.com/postlog-io/postlog-backend/internal/service/event"
)

// eventService defines the minimal interface needed by EventHandler.
type eventService interface {
	NewEvent(ctx context.Context, input event.NewEventInput) (domain.Event, error)
	ViewEvent(ctx context.Context, input event.ViewEventInput) ([]domain.Event, error)
}

// EventHandler serves the event endpoints.
type EventHandler struct {
	svc eventService
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "event")}
}

type newEventRequest struct {
	Source    string `json:"source"`
	Severity  int16  `json:"severity"`
	Msg       string `json:"msg"`
	EventHash string `json:"event_hash"`
	Duration  *int64 `json:"duration"`
}

type viewEventRequest struct {
	EventID         *int64  `json:"event_id"`
	Source          *string `json:"source"`
	Severity        *int16  `json:"severity"`
	EventHash       *string `json:"event_hash"`
	CreationTime    *int64  `json:"creation_time"`
	MinCreationTime *int64  `json:"min_creation_time"`
	MaxCreationTime *int64  `json:"max_creation_time"`
	Duration        *int64  `json:"duration"`
	MinDuration     *int64  `json:"min_duration"`
	MaxDuration     *int64  `json:"max_duration"`
	OnlyRecent      bool    `json:"only_recent"`
	Offset          int64   `json:"offset"`
	Count           int64   `json:"count"`
}

type eventResponse struct {
	EventID      int64  `json:"event_id"`
	CreationTime int64  `json:"creation_time"`
	Source       string `json:"source"`
	Severity     int16  `json:"severity"`
	Msg          string `json:"msg"`
	EventHash    string `json:"event_hash"`
	Duration     *int64 `json:"duration,omitempty"`
}

// New handles POST /event/new.
func (h *EventHandler) New(w http.ResponseWriter, r *http.Request) {
	var req newEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, CodeBadRequest)
		return
	}

	e, err := h.svc.NewEvent(r.Context(), event.NewEventInput{
		Source:    req.Source,
		Severity:  domain.Severity(req.Severity),
		Msg:       req.Msg,
		EventHash: req.EventHash,
		Duration:  req.Duration,
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeOk(w, toEventResponse(e))
}

// View handles POST /event/view.
func (h *EventHandler) View(w http.ResponseWriter, r *http.Request) {
	var req viewEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, CodeBadRequest)
		return
	}

	var sev *domain.Severity
	if req.Severity != nil {
		s := domain.Severity(*req.Severity)
		sev = &s
	}

	events, err := h.svc.ViewEvent(r.Context(), event.ViewEventInput{
		EventID:         req.EventID,
		Source:          req.Source,
		Severity:        sev,
		EventHash:       req.EventHash,
		CreationTime:    req.CreationTime,
		MinCreationTime: req.MinCreationTime,
		MaxCreationTime: req.MaxCreationTime,
		Duration:        req.Duration,
		MinDuration:     req.MinDuration,
		MaxDuration:     req.MaxDuration,
		OnlyRecent:      req.OnlyRecent,
		Offset:          req.Offset,
		Count:           req.Count,
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	writeOk(w, out)
}

func toEventResponse(e domain.Event) eventResponse {
	return eventResponse{
		EventID:      e.EventID,
		CreationTime: e.CreationTime,
		Source:       e.Source,
		Severity:     int16(e.Severity),
		Msg:          e.Msg,
		EventHash:    e.EventHash,
		Duration:     e.Duration,
	}
}
