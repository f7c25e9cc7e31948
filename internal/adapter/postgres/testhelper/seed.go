package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedMail inserts a mail row directly (bypassing the repository) with the
// given id and returns it. Useful for preparing query fixtures.
func SeedMail(t *testing.T, pool *pgxpool.Pool, id int64) domain.Mail {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	m := domain.Mail{
		MailID:       id,
		RequestID:    "req-" + suffix,
		CreationTime: time.Now().UnixMilli(),
		Topic:        "topic-" + suffix,
		Destination:  "dest-" + suffix + "@example.com",
		Title:        "title " + suffix,
		Content:      "content " + suffix,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO mail (mail_id, request_id, creation_time, topic, destination, title, content)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.MailID, m.RequestID, m.CreationTime, m.Topic, m.Destination, m.Title, m.Content)
	if err != nil {
		t.Fatalf("testhelper: seed mail %d: %v", id, err)
	}

	return m
}

// SeedEvent inserts an event row directly with the given id and severity
// code. The code is written raw, so out-of-range values can be seeded to
// exercise corruption handling.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, id int64, code int16, hash string) domain.Event {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	ev := domain.Event{
		EventID:      id,
		CreationTime: time.Now().UnixMilli(),
		Source:       "source-" + suffix,
		Severity:     domain.Severity(code),
		Msg:          "msg " + suffix,
		EventHash:    hash,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO event (event_id, creation_time, source, severity, msg, event_hash, duration)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ev.EventID, ev.CreationTime, ev.Source, code, ev.Msg, ev.EventHash, ev.Duration)
	if err != nil {
		t.Fatalf("testhelper: seed event %d: %v", id, err)
	}

	return ev
}
