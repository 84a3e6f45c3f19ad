package handler

import (
	"encoding/json"
	"net/http"

	dErrors "railbook/pkg/domain-errors"
)

// errorEnvelope is the JSON error body every endpoint returns on failure.
// Message names the offending field or missing prerequisite; submitted
// values, payment tokens above all, never appear in it.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError centralizes domain error translation to HTTP responses so every
// endpoint returns the same JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	writeJSON(w, dErrors.ToHTTPStatus(code), errorEnvelope{
		Error:   string(code),
		Message: dErrors.MessageOf(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
