package auth

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/metrics"
	"github.com/mcoot/easylog/internal/model"
)

const (
	// MockUserID is the fixed id of every authenticated user
	MockUserID = "dummy-user-123"
	// FallbackName is used when the email has no local part
	FallbackName = "Test User"
)

// Service is the mock authenticator: any non-empty credentials succeed
type Service struct {
	issuer TokenIssuer
	logger zerolog.Logger
}

// New creates a new auth Service
func New(issuer TokenIssuer, logger zerolog.Logger) *Service {
	return &Service{
		issuer: issuer,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// Authenticate fabricates a session for the given credentials. Only empty
// fields are rejected; whitespace counts as a value.
func (s *Service) Authenticate(email, password string) (*model.Session, error) {
	if email == "" || password == "" {
		return nil, model.ErrEmptyCredentials
	}

	user := NewUser(email)
	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues(string(user.Role)).Inc()
	s.logger.Debug().Str("email", email).Str("role", string(user.Role)).Msg("mock login")

	return &model.Session{User: user, Token: token}, nil
}

// NewUser derives the mock identity for an email address
func NewUser(email string) model.User {
	name, _, _ := strings.Cut(email, "@")
	if name == "" {
		name = FallbackName
	}

	role := model.RoleStaff
	if strings.Contains(email, "admin") {
		role = model.RoleAdmin
	}

	return model.User{
		ID:    MockUserID,
		Email: email,
		Name:  name,
		Role:  role,
	}
}
