package route

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/easylog/internal/dependencies/mocks"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/entrylog"
	"github.com/mcoot/easylog/internal/services/registry"
	"github.com/mcoot/easylog/internal/storage/memory"
	"github.com/mcoot/easylog/internal/testutil"
)

type RouteSuite struct {
	suite.Suite
	registry *registry.Registry
	resolver *Resolver
	logs     *testutil.LogBuffer
	ctx      context.Context
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}

func (s *RouteSuite) SetupTest() {
	store := memory.New()
	logger, logs := testutil.CaptureLogger()
	s.logs = logs
	entries := entrylog.New(store, mocks.NewMockClock(time.Now()), entrylog.DefaultConfig(), logger)
	s.registry = registry.New(store, entries, logger)
	s.resolver = NewResolver(s.registry, logger)
	s.ctx = context.Background()

	_, err := s.registry.Add(s.ctx, model.CategoryClient, "Acme")
	s.Require().NoError(err)
	_, err = s.registry.Add(s.ctx, model.CategoryCustomer, "Big Co")
	s.Require().NoError(err)
}

func (s *RouteSuite) TestResolveAbsentIsIdle() {
	res, err := s.resolver.Resolve(s.ctx, model.CategoryClient, "", false)
	s.Require().NoError(err)
	s.Equal(StateIdle, res.State)
	s.False(res.Ready())
	s.Empty(res.Entity)
}

func (s *RouteSuite) TestResolveKnownIsReady() {
	res, err := s.resolver.Resolve(s.ctx, model.CategoryClient, "Acme", true)
	s.Require().NoError(err)
	s.Equal(StateReady, res.State)
	s.Equal("Acme", res.Entity)
	s.Empty(res.RedirectTo)
}

func (s *RouteSuite) TestResolveUnknownRedirects() {
	res, err := s.resolver.Resolve(s.ctx, model.CategoryClient, "Ghost", true)
	s.Require().NoError(err)
	s.Equal(StateRedirecting, res.State)
	s.Equal("Default", res.Entity)
	s.Equal("/journal/Default", res.RedirectTo)
	s.True(s.logs.Contains("entity not found"))
}

func (s *RouteSuite) TestResolveChecksOwnCategoryOnly() {
	res, err := s.resolver.Resolve(s.ctx, model.CategoryCustomer, "Acme", true)
	s.Require().NoError(err)
	s.Equal(StateRedirecting, res.State)
	s.Equal("/journal/customer/DefaultCustomer", res.RedirectTo)
}

func (s *RouteSuite) TestBindingStartsIdle() {
	b := s.resolver.Bind(model.CategoryClient)
	s.Equal(StateIdle, b.State())
	s.False(b.CanCompose())
	s.Empty(b.Entity())
}

func (s *RouteSuite) TestBindingReady() {
	b := s.resolver.Bind(model.CategoryClient)

	res, err := b.Request(s.ctx, "Acme")
	s.Require().NoError(err)
	s.True(res.Ready())
	s.True(b.CanCompose())
	s.Equal("Acme", b.Entity())
	s.Equal([]State{StateIdle, StateLoading, StateReady}, b.History())
}

func (s *RouteSuite) TestBindingRedirectReloadsDefault() {
	b := s.resolver.Bind(model.CategoryCustomer)

	res, err := b.Request(s.ctx, "Ghost")
	s.Require().NoError(err)
	s.Equal(StateReady, res.State)
	s.Equal("DefaultCustomer", res.Entity)
	s.Equal("Ghost", res.Requested)
	s.Equal("/journal/customer/DefaultCustomer", res.RedirectTo)
	s.Equal([]State{StateIdle, StateLoading, StateRedirecting, StateLoading, StateReady}, b.History())
}

func (s *RouteSuite) TestBindingReResolvesOnChange() {
	b := s.resolver.Bind(model.CategoryClient)
	_, _ = b.Request(s.ctx, "Acme")
	_, _ = b.Request(s.ctx, "Acme")
	s.Len(b.History(), 3)

	_, err := b.Request(s.ctx, "Default")
	s.Require().NoError(err)
	s.Equal("Default", b.Entity())
	s.Len(b.History(), 5)
}

func (s *RouteSuite) TestBindingNoticesRemoval() {
	b := s.resolver.Bind(model.CategoryClient)
	_, _ = b.Request(s.ctx, "Acme")
	_, err := s.registry.Remove(s.ctx, model.CategoryClient, "Acme", registry.Confirmed(true))
	s.Require().NoError(err)

	_, _ = b.Request(s.ctx, "")
	s.Equal(StateIdle, b.State())
	res, err := b.Request(s.ctx, "Acme")
	s.Require().NoError(err)
	s.Equal("Default", res.Entity)
}

func (s *RouteSuite) TestPathEscapes() {
	s.Equal("/journal/Big%20Co", Path(model.CategoryClient, "Big Co"))
	s.Equal("/journal/customer/Big%20Co", Route{Category: model.CategoryCustomer, Name: "Big Co"}.Path())
}

func (s *RouteSuite) TestUnknownCategory() {
	_, err := s.resolver.Resolve(s.ctx, model.Category("x"), "a", true)
	s.ErrorIs(err, model.ErrUnknownCategory)
}
