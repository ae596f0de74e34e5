// Package middleware provides the HTTP middleware chain: request
// logging, response compression, CORS headers and shared-secret
// authentication.
package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/recollect/recollect/internal/response"
)

// APIKeyHeader is the shared-secret header every API call must carry.
const APIKeyHeader = "X-API-Key"

// WithAPIKey authenticates requests against the configured secret.
// It fails closed: an empty configured secret is a server
// misconfiguration and answers 500 for every request rather than
// letting anything through.
func WithAPIKey(secret string, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				logger.Error("API key is not configured")
				response.InternalServerError(w, "Server configuration error")
				return
			}

			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				response.Unauthorized(w, "Missing API key. Include X-API-Key header in your request.")
				return
			}

			if key != secret {
				response.Unauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
