package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/greethub/greeter/internal/domain"
)

func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// mapError translates domain sentinel errors to HTTP status codes.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		w.Header().Set("Retry-After", "1")
		respondError(w, http.StatusTooManyRequests, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// TooManyRequests is the rejection handler used by the rate limit middleware.
func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	mapError(w, domain.ErrRateLimited)
}
