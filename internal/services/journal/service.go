// Package journal composes the registries, entry logs and session into the
// journal page and its actions.
package journal

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/metrics"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/entrylog"
	"github.com/mcoot/easylog/internal/services/registry"
	"github.com/mcoot/easylog/internal/services/route"
	"github.com/mcoot/easylog/internal/services/session"
	"github.com/mcoot/easylog/internal/services/suggest"
)

// Service implements the journal page operations
type Service struct {
	guard    *session.Guard
	registry *registry.Registry
	entries  *entrylog.Store
	resolver *route.Resolver
	logger   zerolog.Logger
}

// New creates a new journal Service
func New(
	guard *session.Guard,
	reg *registry.Registry,
	entries *entrylog.Store,
	resolver *route.Resolver,
	logger zerolog.Logger,
) *Service {
	return &Service{
		guard:    guard,
		registry: reg,
		entries:  entries,
		resolver: resolver,
		logger:   logger.With().Str("component", "journal").Logger(),
	}
}

// Page builds the page for a requested entity. Entries are only loaded when
// the request resolves to Ready; a Redirecting resolution carries the path
// the caller should navigate to.
func (s *Service) Page(ctx context.Context, category model.Category, name string) (*Page, error) {
	user, err := s.guard.Check(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.resolver.Resolve(ctx, category, name, name != "")
	if err != nil {
		return nil, err
	}
	return s.buildPage(ctx, user, res)
}

// FollowPage builds the page through a route Binding, so an unknown name
// lands on the category default in one call. The resolution keeps the
// requested name and the redirect path.
func (s *Service) FollowPage(ctx context.Context, category model.Category, name string) (*Page, error) {
	user, err := s.guard.Check(ctx)
	if err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, model.ErrUnknownCategory
	}

	binding := s.resolver.Bind(category)
	res, err := binding.Request(ctx, name)
	if err != nil {
		return nil, err
	}

	states := make([]string, 0, len(binding.History()))
	for _, st := range binding.History() {
		states = append(states, st.String())
	}
	s.logger.Debug().
		Str("category", string(category)).
		Str("requested", name).
		Strs("states", states).
		Msg("followed journal route")

	return s.buildPage(ctx, user, res)
}

func (s *Service) buildPage(ctx context.Context, user *model.User, res *route.Resolution) (*Page, error) {
	page := &Page{
		User:       user,
		Resolution: res,
		Entries:    []model.JournalEntry{},
	}

	active := route.Route{Category: res.Category, Name: res.Entity}
	for _, c := range model.Categories {
		names, err := s.registry.List(ctx, c)
		if err != nil {
			return nil, err
		}
		page.Sidebars = append(page.Sidebars, buildSidebar(c, names, active, res.Ready()))
	}

	if res.Ready() {
		entries, err := s.entries.Load(ctx, res.Category, res.Entity)
		if err != nil {
			return nil, err
		}
		page.Entries = entries
	}
	return page, nil
}

// Entities returns the names of a category
func (s *Service) Entities(ctx context.Context, category model.Category) ([]string, error) {
	if _, err := s.guard.Check(ctx); err != nil {
		return nil, err
	}
	return s.registry.List(ctx, category)
}

// AddEntity registers a new entity
func (s *Service) AddEntity(ctx context.Context, category model.Category, name string) ([]string, error) {
	if _, err := s.guard.Check(ctx); err != nil {
		return nil, err
	}

	before, err := s.registry.List(ctx, category)
	if err != nil {
		return nil, err
	}
	names, err := s.registry.Add(ctx, category, name)
	if err != nil {
		return nil, err
	}
	if len(names) > len(before) {
		metrics.EntityOperationsTotal.WithLabelValues(string(category), metrics.OpAdd).Inc()
	}
	return names, nil
}

// DeleteEntity removes an entity and its entries. The returned redirect is
// the category default's path when the removed entity is the one current
// routes to, otherwise "".
func (s *Service) DeleteEntity(
	ctx context.Context,
	category model.Category,
	name string,
	current route.Route,
	gate registry.Confirmer,
) (string, error) {
	if _, err := s.guard.Check(ctx); err != nil {
		return "", err
	}

	if _, err := s.registry.Remove(ctx, category, name, gate); err != nil {
		return "", err
	}
	metrics.EntityOperationsTotal.WithLabelValues(string(category), metrics.OpRemove).Inc()

	if current.Category == category && current.Name == name {
		redirect := route.Path(category, category.DefaultEntity())
		s.logger.Debug().Str("entity", name).Str("redirect", redirect).Msg("current entity removed")
		return redirect, nil
	}
	return "", nil
}

// Entries returns the log of a registered entity
func (s *Service) Entries(ctx context.Context, category model.Category, entity string) ([]model.JournalEntry, error) {
	if _, err := s.guard.Check(ctx); err != nil {
		return nil, err
	}
	if err := s.requireEntity(ctx, category, entity); err != nil {
		return nil, err
	}
	return s.entries.Load(ctx, category, entity)
}

// AddEntry appends an entry authored by the session user
func (s *Service) AddEntry(ctx context.Context, category model.Category, entity, content string) (*model.JournalEntry, error) {
	user, err := s.guard.Check(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.requireEntity(ctx, category, entity); err != nil {
		return nil, err
	}

	entry, err := s.entries.Append(ctx, category, entity, content, user.Name)
	if err != nil {
		return nil, err
	}
	metrics.EntriesCreatedTotal.WithLabelValues(string(category)).Inc()
	return entry, nil
}

// Suggest returns the composer hint for draft text
func (s *Service) Suggest(text string) (string, bool) {
	return suggest.Suggest(text)
}

func (s *Service) requireEntity(ctx context.Context, category model.Category, entity string) error {
	ok, err := s.registry.Contains(ctx, category, entity)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrEntityNotFound, entity)
	}
	return nil
}
