//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/postlog-io/postlog-backend/internal/adapter/postgres/eventrepo"
	"github.com/postlog-io/postlog-backend/internal/adapter/postgres/mailrepo"
	"github.com/postlog-io/postlog-backend/internal/adapter/postgres/testhelper"
	"github.com/postlog-io/postlog-backend/internal/adapter/provider/stdout"
	"github.com/postlog-io/postlog-backend/internal/service/event"
	"github.com/postlog-io/postlog-backend/internal/service/mail"
	"github.com/postlog-io/postlog-backend/internal/transport/middleware"
	"github.com/postlog-io/postlog-backend/internal/transport/rest"
)

// newMailServer wires the full mail service over a fresh mail table with
// the dry-run delivery backend and returns a running test server.
func newMailServer(t *testing.T) *httptest.Server {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, "mail")

	logger := slog.Default()
	repo := mailrepo.New(pool, logger)
	svc := mail.NewService(logger, repo, stdout.New(logger), "noreply@postlog.io")

	router := rest.NewMailRouter(
		rest.NewInfoHandler("mail-service", 0, 1, 0),
		rest.NewHealthHandler(pool, "e2e"),
		rest.NewMailHandler(svc, logger),
	)

	mw := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	srv := httptest.NewServer(mw(router))
	t.Cleanup(srv.Close)
	return srv
}

// newLogServer wires the full log service over a fresh event table.
func newLogServer(t *testing.T) *httptest.Server {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, "event")

	logger := slog.Default()
	repo := eventrepo.New(pool, logger)
	svc := event.NewService(logger, repo)

	router := rest.NewEventRouter(
		rest.NewInfoHandler("log-service", 0, 1, 0),
		rest.NewHealthHandler(pool, "e2e"),
		rest.NewEventHandler(svc, logger),
	)

	mw := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	srv := httptest.NewServer(mw(router))
	t.Cleanup(srv.Close)
	return srv
}

// postJSON posts a JSON body and decodes the response envelope.
func postJSON(t *testing.T, srv *httptest.Server, path, body string) (int, map[string]json.RawMessage) {
	t.Helper()

	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func getJSON(t *testing.T, srv *httptest.Server, path string) (int, map[string]json.RawMessage) {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

// okPayload asserts the Ok side of the envelope and unmarshals it into out.
func okPayload(t *testing.T, envelope map[string]json.RawMessage, out any) {
	t.Helper()

	_, hasErr := envelope["Err"]
	require.False(t, hasErr, "expected Ok envelope, got %s", envelope["Err"])
	payload, hasOk := envelope["Ok"]
	require.True(t, hasOk, "envelope missing Ok")
	require.NoError(t, json.Unmarshal(payload, out))
}

// errCode asserts the Err side of the envelope and returns the code.
func errCode(t *testing.T, envelope map[string]json.RawMessage) string {
	t.Helper()

	_, hasOk := envelope["Ok"]
	require.False(t, hasOk, "expected Err envelope, got %s", envelope["Ok"])
	var code string
	require.NoError(t, json.Unmarshal(envelope["Err"], &code))
	return code
}

type mailRecord struct {
	MailID       int64  `json:"mail_id"`
	RequestID    string `json:"request_id"`
	CreationTime int64  `json:"creation_time"`
	Topic        string `json:"topic"`
	Destination  string `json:"destination"`
	Title        string `json:"title"`
	Content      string `json:"content"`
}

type eventRecord struct {
	EventID      int64  `json:"event_id"`
	CreationTime int64  `json:"creation_time"`
	Source       string `json:"source"`
	Severity     int16  `json:"severity"`
	Msg          string `json:"msg"`
	EventHash    string `json:"event_hash"`
	Duration     *int64 `json:"duration"`
}

func newMailBody(requestID, topic, destination string) string {
	return fmt.Sprintf(`{"request_id":%q,"topic":%q,"destination":%q,"title":"hi","content":"body"}`,
		requestID, topic, destination)
}
