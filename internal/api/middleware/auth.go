package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/easylog/internal/api/apierr"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/session"
)

type contextKey string

const userContextKey contextKey = "user"

// RequireSession rejects requests unless the store holds a valid session.
// A corrupt session is cleared before the 401 is written.
func RequireSession(guard *session.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := guard.Check(r.Context())
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser returns the session user from the request context
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}
