// Package route resolves a requested entity name to the entity a journal
// page actually shows.
package route

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/model"
)

// State of a Binding
type State int

const (
	StateIdle State = iota
	StateLoading
	StateRedirecting
	StateReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRedirecting:
		return "redirecting"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// MarshalText renders the state name in JSON
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Registry is what resolution needs from the entity registry
type Registry interface {
	Contains(ctx context.Context, category model.Category, name string) (bool, error)
}

// Route identifies one journal page
type Route struct {
	Category model.Category `json:"category"`
	Name     string         `json:"name"`
}

// Path returns the escaped navigation path of the route
func (r Route) Path() string {
	return Path(r.Category, r.Name)
}

// Path builds the navigation path for an entity
func Path(category model.Category, name string) string {
	return category.JournalPath(name)
}

// Resolution is the outcome of resolving one request
type Resolution struct {
	State     State          `json:"state"`
	Category  model.Category `json:"category"`
	Requested string         `json:"requested,omitempty"`
	// Entity is the entity to show; set when Ready, or the default when Redirecting
	Entity     string `json:"entity,omitempty"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// Ready reports whether entries may be listed and composed
func (r *Resolution) Ready() bool {
	return r.State == StateReady
}

// Resolver checks requested names against the registry
type Resolver struct {
	registry Registry
	logger   zerolog.Logger
}

// NewResolver creates a Resolver
func NewResolver(registry Registry, logger zerolog.Logger) *Resolver {
	return &Resolver{
		registry: registry,
		logger:   logger.With().Str("component", "route").Logger(),
	}
}

// Resolve maps a request to Idle, Redirecting or Ready
func (r *Resolver) Resolve(ctx context.Context, category model.Category, name string, present bool) (*Resolution, error) {
	if !category.Valid() {
		return nil, model.ErrUnknownCategory
	}
	res := &Resolution{Category: category, Requested: name}
	if !present {
		res.State = StateIdle
		return res, nil
	}

	ok, err := r.registry.Contains(ctx, category, name)
	if err != nil {
		return nil, err
	}
	if ok {
		res.State = StateReady
		res.Entity = name
		return res, nil
	}

	def := category.DefaultEntity()
	r.logger.Warn().
		Str("category", string(category)).
		Str("requested", name).
		Str("default", def).
		Msg("entity not found, redirecting to default")

	res.State = StateRedirecting
	res.Entity = def
	res.RedirectTo = Path(category, def)
	return res, nil
}
