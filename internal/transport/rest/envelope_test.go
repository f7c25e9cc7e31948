package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestWriteOk_EnvelopeShape(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeOk(rec, map[string]int{"n": 1})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := decodeEnvelope(t, rec)
	if _, ok := body["Ok"]; !ok {
		t.Error("envelope missing Ok")
	}
	if _, ok := body["Err"]; ok {
		t.Error("Ok envelope also carries Err")
	}
}

func TestWriteErr_EnvelopeShape(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeErr(rec, CodeNotFound)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	if _, ok := body["Ok"]; ok {
		t.Error("Err envelope also carries Ok")
	}
	var code string
	if err := json.Unmarshal(body["Err"], &code); err != nil {
		t.Fatalf("decode Err: %v", err)
	}
	if code != "NOT_FOUND" {
		t.Errorf("Err = %q, want NOT_FOUND", code)
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code ErrorCode
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeBadRequest, http.StatusBadRequest},
		{CodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{CodeUnknown, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusOf(tc.code); got != tc.want {
			t.Errorf("statusOf(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWriteFailure_Classification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      error
		wantCode string
		wantHTTP int
	}{
		{"validation", domain.NewValidationError("topic", "required"), "BAD_REQUEST", http.StatusBadRequest},
		{"not found", domain.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
		{"corrupted collapses to unknown", domain.ErrCorrupted, "UNKNOWN", http.StatusInternalServerError},
		{"delivery collapses to unknown", domain.ErrDelivery, "UNKNOWN", http.StatusInternalServerError},
		{"anything else", errors.New("pq: deadlock detected"), "UNKNOWN", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/mail/new", nil)
			rec := httptest.NewRecorder()

			writeFailure(rec, req, slog.Default(), tc.err)

			if rec.Code != tc.wantHTTP {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantHTTP)
			}
			body := decodeEnvelope(t, rec)
			var code string
			if err := json.Unmarshal(body["Err"], &code); err != nil {
				t.Fatalf("decode Err: %v", err)
			}
			if code != tc.wantCode {
				t.Errorf("Err = %q, want %q", code, tc.wantCode)
			}
		})
	}
}

func TestWriteFailure_NoInternalDetailLeaks(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/event/new", nil)
	rec := httptest.NewRecorder()

	writeFailure(rec, req, slog.Default(), errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	if got := rec.Body.String(); got != "{\"Err\":\"UNKNOWN\"}\n" {
		t.Errorf("body = %q", got)
	}
}
