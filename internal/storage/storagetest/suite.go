// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"
	"strings"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/easylog/internal/storage"
)

// Suite runs the storage contract against a backend. Embed it in a backend
// test suite and assign Store in SetupTest.
type Suite struct {
	suite.Suite
	Store storage.Storage
	Ctx   context.Context
}

func (s *Suite) TestGetMissingKey() {
	_, err := s.Store.Get(s.Ctx, "missing")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *Suite) TestSetAndGet() {
	s.Require().NoError(s.Store.Set(s.Ctx, "journalClients", `["Default"]`))

	value, err := s.Store.Get(s.Ctx, "journalClients")
	s.Require().NoError(err)
	s.Equal(`["Default"]`, value)
}

func (s *Suite) TestSetOverwrites() {
	s.Require().NoError(s.Store.Set(s.Ctx, "token", "first"))
	s.Require().NoError(s.Store.Set(s.Ctx, "token", "second"))

	value, err := s.Store.Get(s.Ctx, "token")
	s.Require().NoError(err)
	s.Equal("second", value)
}

func (s *Suite) TestRemove() {
	s.Require().NoError(s.Store.Set(s.Ctx, "user", `{"id":"u"}`))
	s.Require().NoError(s.Store.Remove(s.Ctx, "user"))

	_, err := s.Store.Get(s.Ctx, "user")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *Suite) TestRemoveMissingKey() {
	s.NoError(s.Store.Remove(s.Ctx, "never-set"))
}

func (s *Suite) TestKeysWithSeparators() {
	keys := []string{
		"journalEntries_Acme Corp",
		"journalEntries_customer_a/b",
		"journalEntries_Müller & Söhne",
		"journalEntries_x:y",
	}
	for i, key := range keys {
		s.Require().NoError(s.Store.Set(s.Ctx, key, string(rune('a'+i))))
	}
	for i, key := range keys {
		value, err := s.Store.Get(s.Ctx, key)
		s.Require().NoError(err, key)
		s.Equal(string(rune('a'+i)), value, key)
	}
}

func (s *Suite) TestLongKeys() {
	keys := []string{
		"journalEntries_" + strings.Repeat("Acme Corp ", 30),
		"journalEntries_customer_" + strings.Repeat("Müller ", 150),
	}
	for i, key := range keys {
		s.Require().NoError(s.Store.Set(s.Ctx, key, string(rune('a'+i))), len(key))
	}
	for i, key := range keys {
		value, err := s.Store.Get(s.Ctx, key)
		s.Require().NoError(err, len(key))
		s.Equal(string(rune('a'+i)), value)
	}

	s.Require().NoError(s.Store.Remove(s.Ctx, keys[0]))
	_, err := s.Store.Get(s.Ctx, keys[0])
	s.ErrorIs(err, storage.ErrNotFound)
	_, err = s.Store.Get(s.Ctx, keys[1])
	s.NoError(err)
}

func (s *Suite) TestEmptyValue() {
	s.Require().NoError(s.Store.Set(s.Ctx, "token", ""))

	value, err := s.Store.Get(s.Ctx, "token")
	s.Require().NoError(err)
	s.Equal("", value)
}
