package route

import (
	"context"

	"github.com/mcoot/easylog/internal/model"
)

// Binding tracks the current entity of one category page across requests
type Binding struct {
	resolver *Resolver
	category model.Category

	state     State
	requested string
	current   *Resolution
	history   []State
}

// Bind starts an Idle binding for a category
func (r *Resolver) Bind(category model.Category) *Binding {
	return &Binding{
		resolver: r,
		category: category,
		state:    StateIdle,
		history:  []State{StateIdle},
	}
}

// Request resolves name, following a redirect to the default. An empty name
// returns the binding to Idle. Repeating the current request is a no-op.
func (b *Binding) Request(ctx context.Context, name string) (*Resolution, error) {
	if name == "" {
		b.requested = ""
		b.current = nil
		b.transition(StateIdle)
		return &Resolution{State: StateIdle, Category: b.category}, nil
	}
	if b.current != nil && name == b.requested {
		return b.current, nil
	}

	b.requested = name
	b.transition(StateLoading)
	res, err := b.resolver.Resolve(ctx, b.category, name, true)
	if err != nil {
		b.current = nil
		b.transition(StateIdle)
		return nil, err
	}

	if res.State == StateRedirecting {
		b.transition(StateRedirecting)
		b.transition(StateLoading)
		def, err := b.resolver.Resolve(ctx, b.category, res.Entity, true)
		if err != nil {
			b.current = nil
			b.transition(StateIdle)
			return nil, err
		}
		def.Requested = name
		def.RedirectTo = res.RedirectTo
		res = def
	}

	b.current = res
	b.transition(res.State)
	return res, nil
}

func (b *Binding) transition(s State) {
	b.state = s
	b.history = append(b.history, s)
}

// State returns the current state
func (b *Binding) State() State { return b.state }

// Entity returns the resolved entity, or "" unless Ready
func (b *Binding) Entity() string {
	if b.state != StateReady || b.current == nil {
		return ""
	}
	return b.current.Entity
}

// CanCompose reports whether the composer and list are enabled
func (b *Binding) CanCompose() bool { return b.state == StateReady }

// History returns every state entered, oldest first
func (b *Binding) History() []State {
	out := make([]State, len(b.history))
	copy(out, b.history)
	return out
}
