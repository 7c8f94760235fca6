package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderCorrelationID is both read from requests and echoed on responses.
const HeaderCorrelationID = "X-Correlation-ID"

// maxCorrelationIDLen bounds what a client can push into our log lines.
const maxCorrelationIDLen = 128

type ctxKey struct{}

// CorrelationID propagates the caller's X-Correlation-ID, or mints a UUID
// when the header is missing or unusable, and echoes it on the response.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderCorrelationID)
		if !validCorrelationID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderCorrelationID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// GetCorrelationID returns "" if CorrelationID was not applied.
func GetCorrelationID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}

func validCorrelationID(id string) bool {
	if id == "" || len(id) > maxCorrelationIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		// printable ASCII only
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
