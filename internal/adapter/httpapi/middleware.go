package httpapi

import (
	"net/http"
	"strings"
)

// AuthMiddleware validates the Authorization header against the configured
// API token. A missing or invalid token stops the request with 401; a valid
// one passes it through untouched. Both a bare token and the "Bearer <token>"
// form are accepted.
func AuthMiddleware(validToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondWithError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token != validToken {
				respondWithError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
