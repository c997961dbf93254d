package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/easylog/internal/dependencies/mocks"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/auth"
	"github.com/mcoot/easylog/internal/storage"
	"github.com/mcoot/easylog/internal/storage/memory"
	"github.com/mcoot/easylog/internal/testutil"
)

type GuardSuite struct {
	suite.Suite
	store *memory.Storage
	guard *Guard
	ctx   context.Context
}

func TestGuardSuite(t *testing.T) {
	suite.Run(t, new(GuardSuite))
}

func (s *GuardSuite) SetupTest() {
	s.store = memory.New()
	clk := mocks.NewMockClock(time.UnixMilli(1700000000000))
	authService := auth.New(auth.NewMockIssuer(clk), testutil.NopLogger())
	s.guard = New(s.store, authService, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *GuardSuite) TestFreshStoreIsUnauthenticated() {
	s.False(s.guard.IsAuthenticated(s.ctx))

	_, err := s.guard.CurrentUser(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)
}

func (s *GuardSuite) TestLoginPersistsSession() {
	sess, err := s.guard.Login(s.ctx, "a@b.de", "x")
	s.Require().NoError(err)

	token, err := s.store.Get(s.ctx, storage.TokenKey)
	s.Require().NoError(err)
	s.Equal(sess.Token, token)

	raw, err := s.store.Get(s.ctx, storage.UserKey)
	s.Require().NoError(err)
	s.JSONEq(`{"id":"dummy-user-123","email":"a@b.de","name":"a","role":"staff"}`, raw)

	s.True(s.guard.IsAuthenticated(s.ctx))
	user, err := s.guard.CurrentUser(s.ctx)
	s.Require().NoError(err)
	s.Equal("a", user.Name)
}

func (s *GuardSuite) TestLoginRejectsEmptyCredentials() {
	for _, c := range []struct{ email, password string }{
		{"", "x"},
		{"   ", "x"},
		{"a@b", "\t"},
	} {
		_, err := s.guard.Login(s.ctx, c.email, c.password)
		s.ErrorIs(err, model.ErrEmptyCredentials)
		s.False(s.guard.IsAuthenticated(s.ctx))
	}
	s.Empty(s.store.Keys())
}

func (s *GuardSuite) TestTokenWithoutUserIsUnauthenticated() {
	s.Require().NoError(s.store.Set(s.ctx, storage.TokenKey, "t"))

	s.False(s.guard.IsAuthenticated(s.ctx))
	_, err := s.guard.Check(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)
}

func (s *GuardSuite) TestUserWithoutTokenIsUnauthenticated() {
	s.Require().NoError(s.store.Set(s.ctx, storage.UserKey, `{"name":"a"}`))
	s.False(s.guard.IsAuthenticated(s.ctx))
}

func (s *GuardSuite) TestCorruptUserIsNotCleared() {
	s.Require().NoError(s.store.Set(s.ctx, storage.TokenKey, "t"))
	s.Require().NoError(s.store.Set(s.ctx, storage.UserKey, "{not json"))

	_, err := s.guard.CurrentUser(s.ctx)
	s.ErrorIs(err, model.ErrCorruptSession)
	s.ErrorIs(err, model.ErrCorruptState)

	_, err = s.store.Get(s.ctx, storage.UserKey)
	s.NoError(err)
}

func (s *GuardSuite) TestCheckClearsCorruptSession() {
	s.Require().NoError(s.store.Set(s.ctx, storage.TokenKey, "t"))
	s.Require().NoError(s.store.Set(s.ctx, storage.UserKey, "{not json"))

	_, err := s.guard.Check(s.ctx)
	s.ErrorIs(err, model.ErrCorruptSession)

	_, err = s.store.Get(s.ctx, storage.TokenKey)
	s.ErrorIs(err, storage.ErrNotFound)
	_, err = s.store.Get(s.ctx, storage.UserKey)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *GuardSuite) TestNullUserIsCorrupt() {
	s.Require().NoError(s.store.Set(s.ctx, storage.TokenKey, "t"))
	s.Require().NoError(s.store.Set(s.ctx, storage.UserKey, "null"))

	_, err := s.guard.Check(s.ctx)
	s.ErrorIs(err, model.ErrCorruptSession)
}

func (s *GuardSuite) TestLogoutRemovesKeys() {
	_, err := s.guard.Login(s.ctx, "a@b.de", "x")
	s.Require().NoError(err)

	s.Require().NoError(s.guard.Logout(s.ctx))
	s.False(s.guard.IsAuthenticated(s.ctx))
	s.Empty(s.store.Keys())
}

func (s *GuardSuite) TestLogoutWithoutSession() {
	s.NoError(s.guard.Logout(s.ctx))
}
