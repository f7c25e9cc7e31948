package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/postlog-io/postlog-backend/internal/domain"
	"github.com/postlog-io/postlog-backend/internal/service/mail"
)

// mailService defines the minimal interface needed by MailHandler.
type mailService interface {
	NewMail(ctx context.Context, input mail.NewMailInput) (domain.Mail, error)
	ViewMail(ctx context.Context, input mail.ViewMailInput) ([]domain.Mail, error)
}

// MailHandler serves the mail endpoints.
type MailHandler struct {
	svc mailService
	log *slog.Logger
}

// NewMailHandler creates a MailHandler.
func NewMailHandler(svc mailService, logger *slog.Logger) *MailHandler {
	return &MailHandler{svc: svc, log: logger.With("handler", "mail")}
}

type newMailRequest struct {
	RequestID   string `json:"request_id"`
	Topic       string `json:"topic"`
	Destination string `json:"destination"`
	Title       string `json:"title"`
	Content     string `json:"content"`
}

type viewMailRequest struct {
	MailID          *int64  `json:"mail_id"`
	RequestID       *string `json:"request_id"`
	Topic           *string `json:"topic"`
	Destination     *string `json:"destination"`
	CreationTime    *int64  `json:"creation_time"`
	MinCreationTime *int64  `json:"min_creation_time"`
	MaxCreationTime *int64  `json:"max_creation_time"`
	Offset          int64   `json:"offset"`
	Count           int64   `json:"count"`
}

type mailResponse struct {
	MailID       int64  `json:"mail_id"`
	RequestID    string `json:"request_id"`
	CreationTime int64  `json:"creation_time"`
	Topic        string `json:"topic"`
	Destination  string `json:"destination"`
	Title        string `json:"title"`
	Content      string `json:"content"`
}

// New handles POST /mail/new.
func (h *MailHandler) New(w http.ResponseWriter, r *http.Request) {
	var req newMailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, CodeBadRequest)
		return
	}

	m, err := h.svc.NewMail(r.Context(), mail.NewMailInput{
		RequestID:   req.RequestID,
		Topic:       req.Topic,
		Destination: req.Destination,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	writeOk(w, toMailResponse(m))
}

// View handles POST /mail/view.
func (h *MailHandler) View(w http.ResponseWriter, r *http.Request) {
	var req viewMailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, CodeBadRequest)
		return
	}

	mails, err := h.svc.ViewMail(r.Context(), mail.ViewMailInput{
		MailID:          req.MailID,
		RequestID:       req.RequestID,
		Topic:           req.Topic,
		Destination:     req.Destination,
		CreationTime:    req.CreationTime,
		MinCreationTime: req.MinCreationTime,
		MaxCreationTime: req.MaxCreationTime,
		Offset:          req.Offset,
		Count:           req.Count,
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	out := make([]mailResponse, 0, len(mails))
	for _, m := range mails {
		out = append(out, toMailResponse(m))
	}
	writeOk(w, out)
}

func toMailResponse(m domain.Mail) mailResponse {
	return mailResponse{
		MailID:       m.MailID,
		RequestID:    m.RequestID,
		CreationTime: m.CreationTime,
		Topic:        m.Topic,
		Destination:  m.Destination,
		Title:        m.Title,
		Content:      m.Content,
	}
}
