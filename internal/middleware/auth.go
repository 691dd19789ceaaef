package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shivamkr082003/Brainly/internal/api"
	"github.com/shivamkr082003/Brainly/internal/auth"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// UserID returns the authenticated user id injected by RequireAuth, or ""
// when the request did not pass through it.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// RequireAuth validates the bearer token in the Authorization header and
// injects the resolved user id into the request context. The downstream
// handler is never invoked for a missing, malformed, or expired token.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				api.Message(w, http.StatusUnauthorized, "Authorization token is missing")
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")

			userID, err := auth.UserIDFromToken(token, secret)
			if err != nil {
				api.Message(w, http.StatusUnauthorized, "Invalid authorization token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
