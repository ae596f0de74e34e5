package middleware

import (
	"net/http"

	"github.com/recollect/recollect/internal/response"
)

// WithCORS stamps the fixed cross-origin headers on every response
// and short-circuits OPTIONS preflight requests with 204.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.SetCORS(w.Header())

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
