package middleware

import "net/http"

// RateLimit short-circuits with reject whenever allow returns false.
// onRejected may be nil.
func RateLimit(allow func() bool, onRejected func(), reject http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allow() {
				if onRejected != nil {
					onRejected()
				}
				reject(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
