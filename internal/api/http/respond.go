package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"ngobooks-backend/internal/logger"
	"ngobooks-backend/internal/service"
)

// All responses use the {ok: ...} envelope. Success payloads merge their
// fields next to ok; failures carry a message.
func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeOK(w http.ResponseWriter, fields map[string]any) {
	body := map[string]any{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"ok": false, "message": message})
}

// writeError maps service sentinels onto the status convention: 403 wrong
// role, 404 unknown id, 400 bad input, 409 exhausted uniqueness retries,
// 500 everything unexpected.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		writeFail(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, service.ErrNotFound):
		writeFail(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrInvalidAmount):
		writeFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailExists):
		writeFail(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeFail(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrSequenceConflict):
		writeFail(w, http.StatusConflict, "Could not assign membership number, retry")
	default:
		logger.Error("request failed", "error", err)
		writeFail(w, http.StatusInternalServerError, "Server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// decodeOptionalBody decodes without failing the request; an empty or
// malformed body leaves dst untouched.
func decodeOptionalBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
