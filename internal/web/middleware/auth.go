package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/session"
)

type contextKey string

const (
	userContextKey contextKey = "user"
)

// LoginPath is where unauthenticated browsers are sent
const LoginPath = "/auth/login"

// GetUser retrieves the session user from the request context
// Returns nil if nobody is signed in
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// Auth returns middleware that requires a stored session.
// Missing sessions redirect to the login page; corrupt ones are cleared
// first and the user is told to sign in again.
func Auth(guard *session.Guard, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := guard.Check(r.Context())
			if err != nil {
				switch {
				case errors.Is(err, model.ErrCorruptSession):
					SetFlash(w, FlashError, "Your session could not be read. Please sign in again.")
				case errors.Is(err, model.ErrNoSession):
				default:
					logger.Error().Err(err).Msg("session check failed")
				}
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth sets the session user in context when there is one
func OptionalAuth(guard *session.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := guard.CurrentUser(r.Context())
			if err != nil {
				user = nil
			}
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
