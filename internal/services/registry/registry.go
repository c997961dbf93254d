// Package registry keeps the ordered entity names of each category.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/storage"
)

// EntryLog is the part of the entry log store a removal cascades into
type EntryLog interface {
	DeleteAll(ctx context.Context, category model.Category, entity string) error
}

// Removal describes a completed removal
type Removal struct {
	Removed string
	Names   []string
}

// Registry reads and writes the category name lists
type Registry struct {
	store  storage.Storage
	logs   EntryLog
	logger zerolog.Logger
}

// New creates a new Registry
func New(store storage.Storage, logs EntryLog, logger zerolog.Logger) *Registry {
	return &Registry{
		store:  store,
		logs:   logs,
		logger: logger.With().Str("component", "registry").Logger(),
	}
}

// Default returns the protected name of a category
func (r *Registry) Default(category model.Category) string {
	return category.DefaultEntity()
}

// List returns the names in display order, creating the registry on first
// access. Unreadable data is treated as absent.
func (r *Registry) List(ctx context.Context, category model.Category) ([]string, error) {
	if !category.Valid() {
		return nil, model.ErrUnknownCategory
	}
	key := storage.RegistryKey(category)

	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		names := []string{category.DefaultEntity()}
		if err := r.save(ctx, category, names); err != nil {
			return nil, err
		}
		return names, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("malformed registry, treating as absent")
		return []string{category.DefaultEntity()}, nil
	}
	return normalize(category, stored), nil
}

// Contains reports whether name is registered
func (r *Registry) Contains(ctx context.Context, category model.Category, name string) (bool, error) {
	names, err := r.List(ctx, category)
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// Add appends a trimmed name unless it is already present
func (r *Registry) Add(ctx context.Context, category model.Category, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyEntityName
	}
	if !utf8.ValidString(name) {
		return nil, model.ErrInvalidEntityName
	}

	names, err := r.List(ctx, category)
	if err != nil {
		return nil, err
	}
	if slices.Contains(names, name) {
		return names, nil
	}

	names = append(names, name)
	if err := r.save(ctx, category, names); err != nil {
		return nil, err
	}

	r.logger.Info().Str("category", string(category)).Str("entity", name).Msg("entity added")
	return names, nil
}

// Remove deletes a name and its entries once gate agrees. The default name
// is refused before gate is consulted.
func (r *Registry) Remove(ctx context.Context, category model.Category, name string, gate Confirmer) (*Removal, error) {
	if !category.Valid() {
		return nil, model.ErrUnknownCategory
	}
	if name == category.DefaultEntity() {
		return nil, model.ErrDefaultEntityProtected
	}

	names, err := r.List(ctx, category)
	if err != nil {
		return nil, err
	}
	idx := slices.Index(names, name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", model.ErrEntityNotFound, name)
	}

	if gate == nil || !gate.Confirm(RemovalPrompt(category, name)) {
		return nil, model.ErrRemovalCancelled
	}

	names = slices.Delete(names, idx, idx+1)
	if err := r.save(ctx, category, names); err != nil {
		return nil, err
	}
	if err := r.logs.DeleteAll(ctx, category, name); err != nil {
		return nil, err
	}

	r.logger.Info().Str("category", string(category)).Str("entity", name).Msg("entity removed")
	return &Removal{Removed: name, Names: names}, nil
}

func (r *Registry) save(ctx context.Context, category model.Category, names []string) error {
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	key := storage.RegistryKey(category)
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// normalize drops duplicates and blanks and puts a missing default first
func normalize(category model.Category, stored []string) []string {
	def := category.DefaultEntity()
	names := make([]string, 0, len(stored)+1)
	if !slices.Contains(stored, def) {
		names = append(names, def)
	}
	for _, name := range stored {
		if name == "" || slices.Contains(names, name) {
			continue
		}
		names = append(names, name)
	}
	return names
}
