// Package rest serves the HTTP API. Every response body is a JSON
// envelope holding either an Ok payload or an Err code; the HTTP status
// communicates the same category redundantly.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

// ErrorCode is the closed vocabulary of API error codes.
type ErrorCode string

const (
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	CodeUnknown          ErrorCode = "UNKNOWN"
)

type okEnvelope struct {
	Ok any `json:"Ok"`
}

type errEnvelope struct {
	Err ErrorCode `json:"Err"`
}

func statusOf(code ErrorCode) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeOk(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, okEnvelope{Ok: payload})
}

func writeErr(w http.ResponseWriter, code ErrorCode) {
	writeJSON(w, statusOf(code), errEnvelope{Err: code})
}

// writeFailure is the single point where internal errors become API error
// codes. Anything outside the known categories is logged with its cause
// and collapsed to UNKNOWN so no internal detail leaks to callers.
func writeFailure(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeErr(w, CodeBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		writeErr(w, CodeNotFound)
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeErr(w, CodeUnknown)
	}
}
