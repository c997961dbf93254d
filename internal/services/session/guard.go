// Package session gates access to the journal on the presence of a stored
// user and token.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/storage"
)

// Authenticator exchanges credentials for a session
type Authenticator interface {
	Authenticate(email, password string) (*model.Session, error)
}

// Guard reads and writes the session keys of one store
type Guard struct {
	store  storage.Storage
	auth   Authenticator
	logger zerolog.Logger
}

// New creates a new Guard
func New(store storage.Storage, auth Authenticator, logger zerolog.Logger) *Guard {
	return &Guard{
		store:  store,
		auth:   auth,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// IsAuthenticated reports whether both keys are present and the user parses
func (g *Guard) IsAuthenticated(ctx context.Context) bool {
	_, err := g.CurrentUser(ctx)
	return err == nil
}

// CurrentUser returns the stored user without modifying anything
func (g *Guard) CurrentUser(ctx context.Context) (*model.User, error) {
	if _, err := g.Token(ctx); err != nil {
		return nil, err
	}

	raw, err := g.store.Get(ctx, storage.UserKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, model.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}

	var user *model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user == nil {
		return nil, model.ErrCorruptSession
	}
	return user, nil
}

// Token returns the stored token
func (g *Guard) Token(ctx context.Context) (string, error) {
	token, err := g.store.Get(ctx, storage.TokenKey)
	if errors.Is(err, storage.ErrNotFound) {
		return "", model.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return token, nil
}

// Check is the page-entry gate. A corrupt user record clears both keys so
// the caller can send the user back to login.
func (g *Guard) Check(ctx context.Context) (*model.User, error) {
	user, err := g.CurrentUser(ctx)
	if errors.Is(err, model.ErrCorruptSession) {
		g.logger.Error().Msg("stored user record is corrupt, clearing session")
		if clearErr := g.Logout(ctx); clearErr != nil {
			return nil, errors.Join(err, clearErr)
		}
	}
	return user, err
}

// Login authenticates and persists the resulting session
func (g *Guard) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, model.ErrEmptyCredentials
	}

	sess, err := g.auth.Authenticate(email, password)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(sess.User)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	if err := g.store.Set(ctx, storage.TokenKey, sess.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	if err := g.store.Set(ctx, storage.UserKey, string(data)); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}

	g.logger.Info().Str("user", sess.User.Email).Str("role", string(sess.User.Role)).Msg("logged in")
	return sess, nil
}

// Logout removes both session keys, present or not
func (g *Guard) Logout(ctx context.Context) error {
	if err := g.store.Remove(ctx, storage.TokenKey); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	if err := g.store.Remove(ctx, storage.UserKey); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}
