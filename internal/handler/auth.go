package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// bearerAuth returns middleware that gates every request behind a
// static bearer token. The Authorization header must be exactly
// "Bearer <token>"; any absence or mismatch short-circuits with 401
// before the handler runs, so unauthorized requests never reach state.
func bearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !authorized(header, token) {
				WriteError(w, http.StatusUnauthorized, "Unauthorized",
					"Unauthorized. Please provide valid authorization token.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// authorized reports whether the Authorization header carries the
// expected bearer token. Constant-time comparison on the token itself.
func authorized(header, token string) bool {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return false
	}
	supplied := header[len(prefix):]
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) == 1
}
