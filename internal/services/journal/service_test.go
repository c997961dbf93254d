package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/easylog/internal/dependencies/mocks"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/auth"
	"github.com/mcoot/easylog/internal/services/entrylog"
	"github.com/mcoot/easylog/internal/services/registry"
	"github.com/mcoot/easylog/internal/services/route"
	"github.com/mcoot/easylog/internal/services/session"
	"github.com/mcoot/easylog/internal/services/suggest"
	"github.com/mcoot/easylog/internal/storage"
	"github.com/mcoot/easylog/internal/storage/memory"
	"github.com/mcoot/easylog/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store   *memory.Storage
	clock   *mocks.MockClock
	guard   *session.Guard
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 11, 20, 8, 0, 0, 0, time.UTC))

	entries := entrylog.New(s.store, s.clock, entrylog.DefaultConfig(), logger)
	reg := registry.New(s.store, entries, logger)
	s.guard = session.New(s.store, auth.New(auth.NewMockIssuer(s.clock), logger), logger)
	s.service = New(s.guard, reg, entries, route.NewResolver(reg, logger), logger)
	s.ctx = context.Background()

	_, err := s.guard.Login(s.ctx, "anna@example.com", "pw")
	s.Require().NoError(err)
}

func (s *ServiceSuite) sidebar(page *Page, c model.Category) Sidebar {
	for _, sb := range page.Sidebars {
		if sb.Category == c {
			return sb
		}
	}
	s.FailNow("sidebar missing", string(c))
	return Sidebar{}
}

// Page tests

func (s *ServiceSuite) TestPageRequiresSession() {
	s.Require().NoError(s.guard.Logout(s.ctx))

	_, err := s.service.Page(s.ctx, model.CategoryClient, "Default")
	s.ErrorIs(err, model.ErrNoSession)
}

func (s *ServiceSuite) TestPageClearsCorruptSession() {
	s.Require().NoError(s.store.Set(s.ctx, storage.UserKey, "garbage"))

	_, err := s.service.Page(s.ctx, model.CategoryClient, "Default")
	s.ErrorIs(err, model.ErrCorruptSession)
	_, err = s.store.Get(s.ctx, storage.TokenKey)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *ServiceSuite) TestDefaultPage() {
	page, err := s.service.Page(s.ctx, model.CategoryClient, "Default")
	s.Require().NoError(err)

	s.True(page.CanCompose())
	s.Equal("Default", page.Entity())
	s.Equal("anna", page.User.Name)
	s.Empty(page.Entries)
	s.Len(page.Sidebars, 2)

	clients := s.sidebar(page, model.CategoryClient)
	s.True(clients.Active)
	s.Equal([]SidebarItem{{Name: "Default", Path: "/journal/Default", Active: true, Deletable: false}}, clients.Items)

	customers := s.sidebar(page, model.CategoryCustomer)
	s.False(customers.Active)
	s.Equal([]SidebarItem{{
		Name: "DefaultCustomer", Path: "/journal/customer/DefaultCustomer", Active: false, Deletable: false,
	}}, customers.Items)
}

func (s *ServiceSuite) TestPageAbsentNameIsIdle() {
	page, err := s.service.Page(s.ctx, model.CategoryClient, "")
	s.Require().NoError(err)
	s.Equal(route.StateIdle, page.Resolution.State)
	s.False(page.CanCompose())
	s.Empty(page.Entries)
}

func (s *ServiceSuite) TestUnknownEntityRedirectsWithoutEntries() {
	// entries stored for a name that is not registered must never show
	s.Require().NoError(s.store.Set(s.ctx, "journalEntries_Foo", `[{"id":1,"date":"1.1.2024","author":"x","content":"secret"}]`))

	page, err := s.service.Page(s.ctx, model.CategoryClient, "Foo")
	s.Require().NoError(err)
	s.Equal(route.StateRedirecting, page.Resolution.State)
	s.Equal("/journal/Default", page.Resolution.RedirectTo)
	s.Empty(page.Entries)
	s.Empty(page.Entity())
	for _, item := range s.sidebar(page, model.CategoryClient).Items {
		s.False(item.Active)
	}
}

func (s *ServiceSuite) TestFollowPageLandsOnDefault() {
	_, err := s.service.AddEntry(s.ctx, model.CategoryClient, "Default", "on the default")
	s.Require().NoError(err)

	page, err := s.service.FollowPage(s.ctx, model.CategoryClient, "Foo")
	s.Require().NoError(err)
	s.Equal(route.StateReady, page.Resolution.State)
	s.Equal("Foo", page.Resolution.Requested)
	s.Equal("Default", page.Entity())
	s.Equal("/journal/Default", page.Resolution.RedirectTo)
	s.True(page.CanCompose())
	s.Require().Len(page.Entries, 1)
	s.Equal("on the default", page.Entries[0].Content)
	s.True(s.sidebar(page, model.CategoryClient).Items[0].Active)
}

func (s *ServiceSuite) TestFollowPageKnownEntity() {
	_, err := s.service.AddEntity(s.ctx, model.CategoryCustomer, "Acme")
	s.Require().NoError(err)

	page, err := s.service.FollowPage(s.ctx, model.CategoryCustomer, "Acme")
	s.Require().NoError(err)
	s.Equal(route.StateReady, page.Resolution.State)
	s.Equal("Acme", page.Entity())
	s.Empty(page.Resolution.RedirectTo)
}

func (s *ServiceSuite) TestFollowPageEmptyNameIsIdle() {
	page, err := s.service.FollowPage(s.ctx, model.CategoryClient, "")
	s.Require().NoError(err)
	s.Equal(route.StateIdle, page.Resolution.State)
	s.Empty(page.Entries)
}

func (s *ServiceSuite) TestFollowPageUnknownCategory() {
	_, err := s.service.FollowPage(s.ctx, model.Category("vendor"), "x")
	s.ErrorIs(err, model.ErrUnknownCategory)
}

func (s *ServiceSuite) TestSameNameAcrossCategoriesOnlyActiveInOwnList() {
	_, _ = s.service.AddEntity(s.ctx, model.CategoryClient, "Acme")
	_, _ = s.service.AddEntity(s.ctx, model.CategoryCustomer, "Acme")

	page, err := s.service.Page(s.ctx, model.CategoryCustomer, "Acme")
	s.Require().NoError(err)

	for _, item := range s.sidebar(page, model.CategoryClient).Items {
		s.False(item.Active, item.Name)
	}
	customers := s.sidebar(page, model.CategoryCustomer)
	s.Equal("Acme", customers.Items[1].Name)
	s.True(customers.Items[1].Active)
	s.True(customers.Items[1].Deletable)
	s.Equal("/journal/customer/Acme", customers.Items[1].Path)
}

// Entry tests

func (s *ServiceSuite) TestAddEntryUsesSessionAuthor() {
	entry, err := s.service.AddEntry(s.ctx, model.CategoryClient, "Default", "Checked backups")
	s.Require().NoError(err)
	s.Equal("anna", entry.Author)
	s.Equal("20.11.2024", entry.Date)

	page, err := s.service.Page(s.ctx, model.CategoryClient, "Default")
	s.Require().NoError(err)
	s.Require().Len(page.Entries, 1)
	s.Equal(*entry, page.Entries[0])
}

func (s *ServiceSuite) TestAddEntryNewestFirst() {
	for _, content := range []string{"one", "two", "three"} {
		_, err := s.service.AddEntry(s.ctx, model.CategoryClient, "Default", content)
		s.Require().NoError(err)
	}

	entries, err := s.service.Entries(s.ctx, model.CategoryClient, "Default")
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal("three", entries[0].Content)
	s.Equal("one", entries[2].Content)
}

func (s *ServiceSuite) TestAddEntryRejectsUnknownEntity() {
	_, err := s.service.AddEntry(s.ctx, model.CategoryClient, "Ghost", "note")
	s.ErrorIs(err, model.ErrEntityNotFound)
}

func (s *ServiceSuite) TestAddEntryRejectsBlank() {
	_, err := s.service.AddEntry(s.ctx, model.CategoryClient, "Default", "  ")
	s.ErrorIs(err, model.ErrEmptyContent)
}

func (s *ServiceSuite) TestAddEntryRequiresSession() {
	s.Require().NoError(s.guard.Logout(s.ctx))
	_, err := s.service.AddEntry(s.ctx, model.CategoryClient, "Default", "note")
	s.ErrorIs(err, model.ErrNoSession)
}

// Delete tests

func (s *ServiceSuite) TestDeleteCurrentRedirectsToDefault() {
	_, _ = s.service.AddEntity(s.ctx, model.CategoryCustomer, "Big Co")
	current := route.Route{Category: model.CategoryCustomer, Name: "Big Co"}

	redirect, err := s.service.DeleteEntity(s.ctx, model.CategoryCustomer, "Big Co", current, registry.Confirmed(true))
	s.Require().NoError(err)
	s.Equal("/journal/customer/DefaultCustomer", redirect)
}

func (s *ServiceSuite) TestDeleteOtherCategoryDoesNotRedirect() {
	_, _ = s.service.AddEntity(s.ctx, model.CategoryClient, "Acme")
	_, _ = s.service.AddEntity(s.ctx, model.CategoryCustomer, "Acme")
	current := route.Route{Category: model.CategoryCustomer, Name: "Acme"}

	redirect, err := s.service.DeleteEntity(s.ctx, model.CategoryClient, "Acme", current, registry.Confirmed(true))
	s.Require().NoError(err)
	s.Empty(redirect)

	names, _ := s.service.Entities(s.ctx, model.CategoryCustomer)
	s.Contains(names, "Acme")
}

func (s *ServiceSuite) TestDeleteCascades() {
	_, _ = s.service.AddEntity(s.ctx, model.CategoryClient, "Acme")
	_, _ = s.service.AddEntry(s.ctx, model.CategoryClient, "Acme", "gone soon")

	_, err := s.service.DeleteEntity(s.ctx, model.CategoryClient, "Acme", route.Route{}, registry.Confirmed(true))
	s.Require().NoError(err)

	_, err = s.store.Get(s.ctx, "journalEntries_Acme")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *ServiceSuite) TestDeleteDefaultRejected() {
	_, err := s.service.DeleteEntity(s.ctx, model.CategoryClient, "Default", route.Route{}, registry.Confirmed(true))
	s.ErrorIs(err, model.ErrDefaultEntityProtected)

	names, _ := s.service.Entities(s.ctx, model.CategoryClient)
	s.Equal([]string{"Default"}, names)
}

func (s *ServiceSuite) TestDeleteCancelled() {
	_, _ = s.service.AddEntity(s.ctx, model.CategoryClient, "Acme")

	_, err := s.service.DeleteEntity(s.ctx, model.CategoryClient, "Acme", route.Route{}, registry.Confirmed(false))
	s.ErrorIs(err, model.ErrRemovalCancelled)
}

func (s *ServiceSuite) TestSuggest() {
	hint, ok := s.service.Suggest("Server neu gestartet")
	s.True(ok)
	s.Equal(suggest.ServerHint, hint)
}
