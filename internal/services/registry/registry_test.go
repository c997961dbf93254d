package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/easylog/internal/dependencies/mocks"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/entrylog"
	"github.com/mcoot/easylog/internal/storage"
	"github.com/mcoot/easylog/internal/storage/memory"
	"github.com/mcoot/easylog/internal/testutil"
)

type RegistrySuite struct {
	suite.Suite
	store    *memory.Storage
	entries  *entrylog.Store
	registry *Registry
	logs     *testutil.LogBuffer
	ctx      context.Context
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.store = memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger, logs := testutil.CaptureLogger()
	s.logs = logs
	s.entries = entrylog.New(s.store, clk, entrylog.DefaultConfig(), logger)
	s.registry = New(s.store, s.entries, logger)
	s.ctx = context.Background()
}

// countingGate records how often it was asked
type countingGate struct {
	answer  bool
	asked   int
	prompts []string
}

func (g *countingGate) Confirm(prompt string) bool {
	g.asked++
	g.prompts = append(g.prompts, prompt)
	return g.answer
}

// List tests

func (s *RegistrySuite) TestListInitializesDefault() {
	names, err := s.registry.List(s.ctx, model.CategoryClient)
	s.Require().NoError(err)
	s.Equal([]string{"Default"}, names)

	raw, err := s.store.Get(s.ctx, "journalClients")
	s.Require().NoError(err)
	s.JSONEq(`["Default"]`, raw)
}

func (s *RegistrySuite) TestListCustomerDefault() {
	names, err := s.registry.List(s.ctx, model.CategoryCustomer)
	s.Require().NoError(err)
	s.Equal([]string{"DefaultCustomer"}, names)

	_, err = s.store.Get(s.ctx, "journalCustomers")
	s.NoError(err)
}

func (s *RegistrySuite) TestListMalformedFallsBackToDefault() {
	s.Require().NoError(s.store.Set(s.ctx, "journalClients", "{broken"))

	names, err := s.registry.List(s.ctx, model.CategoryClient)
	s.Require().NoError(err)
	s.Equal([]string{"Default"}, names)
	s.True(s.logs.Contains("malformed registry"))

	_, err = s.registry.Add(s.ctx, model.CategoryClient, "Acme")
	s.Require().NoError(err)
	raw, _ := s.store.Get(s.ctx, "journalClients")
	s.JSONEq(`["Default","Acme"]`, raw)
}

func (s *RegistrySuite) TestListRepairsMissingDefaultAndDuplicates() {
	s.Require().NoError(s.store.Set(s.ctx, "journalClients", `["Acme","Beta","Acme",""]`))

	names, err := s.registry.List(s.ctx, model.CategoryClient)
	s.Require().NoError(err)
	s.Equal([]string{"Default", "Acme", "Beta"}, names)
}

// Add tests

func (s *RegistrySuite) TestAddAppendsInOrder() {
	_, err := s.registry.Add(s.ctx, model.CategoryClient, "Acme")
	s.Require().NoError(err)
	names, err := s.registry.Add(s.ctx, model.CategoryClient, "Beta")
	s.Require().NoError(err)

	s.Equal([]string{"Default", "Acme", "Beta"}, names)
}

func (s *RegistrySuite) TestAddIsIdempotent() {
	_, _ = s.registry.Add(s.ctx, model.CategoryClient, "Acme")
	names, err := s.registry.Add(s.ctx, model.CategoryClient, "Acme")
	s.Require().NoError(err)

	s.Equal([]string{"Default", "Acme"}, names)
}

func (s *RegistrySuite) TestAddTrims() {
	names, err := s.registry.Add(s.ctx, model.CategoryCustomer, "  Big Co  ")
	s.Require().NoError(err)
	s.Equal([]string{"DefaultCustomer", "Big Co"}, names)
}

func (s *RegistrySuite) TestAddIsCaseSensitive() {
	_, _ = s.registry.Add(s.ctx, model.CategoryClient, "acme")
	names, _ := s.registry.Add(s.ctx, model.CategoryClient, "Acme")
	s.Equal([]string{"Default", "acme", "Acme"}, names)
}

func (s *RegistrySuite) TestAddRejectsBlank() {
	_, err := s.registry.Add(s.ctx, model.CategoryClient, "   ")
	s.ErrorIs(err, model.ErrEmptyEntityName)
	s.ErrorIs(err, model.ErrValidation)

	_, err = s.store.Get(s.ctx, "journalClients")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *RegistrySuite) TestAddRejectsInvalidUTF8() {
	_, err := s.registry.Add(s.ctx, model.CategoryClient, "Acme\xff")
	s.ErrorIs(err, model.ErrInvalidEntityName)
	s.ErrorIs(err, model.ErrValidation)

	_, err = s.store.Get(s.ctx, "journalClients")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *RegistrySuite) TestAddedNameSurvivesReload() {
	for _, name := range []string{"Acme \uFFFD", "Kunde Müller", "a/b"} {
		_, err := s.registry.Add(s.ctx, model.CategoryClient, name)
		s.Require().NoError(err)
		_, err = s.registry.Add(s.ctx, model.CategoryClient, name)
		s.Require().NoError(err)
	}

	names, err := s.registry.List(s.ctx, model.CategoryClient)
	s.Require().NoError(err)
	s.Equal([]string{"Default", "Acme \uFFFD", "Kunde Müller", "a/b"}, names)

	removal, err := s.registry.Remove(s.ctx, model.CategoryClient, "Kunde Müller", Confirmed(true))
	s.Require().NoError(err)
	s.NotContains(removal.Names, "Kunde Müller")
}

func (s *RegistrySuite) TestCategoriesAreIndependent() {
	_, _ = s.registry.Add(s.ctx, model.CategoryClient, "Acme")

	ok, err := s.registry.Contains(s.ctx, model.CategoryCustomer, "Acme")
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.registry.Contains(s.ctx, model.CategoryClient, "Acme")
	s.Require().NoError(err)
	s.True(ok)
}

// Remove tests

func (s *RegistrySuite) TestRemoveDefaultNeverAsks() {
	gate := &countingGate{answer: true}

	_, err := s.registry.Remove(s.ctx, model.CategoryClient, "Default", gate)
	s.ErrorIs(err, model.ErrDefaultEntityProtected)
	s.Zero(gate.asked)

	names, _ := s.registry.List(s.ctx, model.CategoryClient)
	s.Equal([]string{"Default"}, names)
}

func (s *RegistrySuite) TestRemoveCancelled() {
	_, _ = s.registry.Add(s.ctx, model.CategoryClient, "Acme")
	_, _ = s.entries.Append(s.ctx, model.CategoryClient, "Acme", "keep me", "u")
	gate := &countingGate{answer: false}

	_, err := s.registry.Remove(s.ctx, model.CategoryClient, "Acme", gate)
	s.ErrorIs(err, model.ErrRemovalCancelled)
	s.Equal(1, gate.asked)

	names, _ := s.registry.List(s.ctx, model.CategoryClient)
	s.Equal([]string{"Default", "Acme"}, names)
	entries, _ := s.entries.Load(s.ctx, model.CategoryClient, "Acme")
	s.Len(entries, 1)
}

func (s *RegistrySuite) TestRemoveNilGateCancels() {
	_, _ = s.registry.Add(s.ctx, model.CategoryClient, "Acme")

	_, err := s.registry.Remove(s.ctx, model.CategoryClient, "Acme", nil)
	s.ErrorIs(err, model.ErrRemovalCancelled)
}

func (s *RegistrySuite) TestRemoveCascadesEntries() {
	_, _ = s.registry.Add(s.ctx, model.CategoryCustomer, "Big Co")
	_, _ = s.entries.Append(s.ctx, model.CategoryCustomer, "Big Co", "note", "u")
	gate := &countingGate{answer: true}

	removal, err := s.registry.Remove(s.ctx, model.CategoryCustomer, "Big Co", gate)
	s.Require().NoError(err)
	s.Equal("Big Co", removal.Removed)
	s.Equal([]string{"DefaultCustomer"}, removal.Names)
	s.Contains(gate.prompts[0], `"Big Co"`)
	s.Contains(gate.prompts[0], "customer")

	entries, err := s.entries.Load(s.ctx, model.CategoryCustomer, "Big Co")
	s.Require().NoError(err)
	s.Empty(entries)
	_, err = s.store.Get(s.ctx, "journalEntries_customer_Big Co")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *RegistrySuite) TestRemoveUnknown() {
	gate := &countingGate{answer: true}

	_, err := s.registry.Remove(s.ctx, model.CategoryClient, "Ghost", gate)
	s.ErrorIs(err, model.ErrEntityNotFound)
	s.ErrorIs(err, model.ErrNotFound)
	s.Zero(gate.asked)
}

func (s *RegistrySuite) TestReAddAfterRemoveStartsEmpty() {
	_, _ = s.registry.Add(s.ctx, model.CategoryClient, "Acme")
	_, _ = s.entries.Append(s.ctx, model.CategoryClient, "Acme", "old", "u")
	_, err := s.registry.Remove(s.ctx, model.CategoryClient, "Acme", Confirmed(true))
	s.Require().NoError(err)

	names, _ := s.registry.Add(s.ctx, model.CategoryClient, "Acme")
	s.Equal([]string{"Default", "Acme"}, names)
	entries, _ := s.entries.Load(s.ctx, model.CategoryClient, "Acme")
	s.Empty(entries)
}

func (s *RegistrySuite) TestConfirmFunc() {
	_, _ = s.registry.Add(s.ctx, model.CategoryClient, "Acme")
	var seen string

	_, err := s.registry.Remove(s.ctx, model.CategoryClient, "Acme", ConfirmFunc(func(p string) bool {
		seen = p
		return true
	}))
	s.Require().NoError(err)
	s.Equal(RemovalPrompt(model.CategoryClient, "Acme"), seen)
}
