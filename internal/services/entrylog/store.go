// Package entrylog persists the newest-first journal entries of each entity.
package entrylog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/dependencies/clock"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/storage"
)

// DefaultDateLayout renders dates as day.month.year without padding
const DefaultDateLayout = "2.1.2006"

// Config holds configuration for the entry log store
type Config struct {
	DateLayout string
}

// DefaultConfig returns default entry log configuration
func DefaultConfig() Config {
	return Config{DateLayout: DefaultDateLayout}
}

// Store reads and writes entry logs
type Store struct {
	store  storage.Storage
	clock  clock.Clock
	layout string
	ids    idSequence
	logger zerolog.Logger
}

// New creates a new entry log Store
func New(store storage.Storage, clk clock.Clock, cfg Config, logger zerolog.Logger) *Store {
	if cfg.DateLayout == "" {
		cfg.DateLayout = DefaultDateLayout
	}
	return &Store{
		store:  store,
		clock:  clk,
		layout: cfg.DateLayout,
		logger: logger.With().Str("component", "entrylog").Logger(),
	}
}

// Load returns the entity's entries, newest first. Unreadable data is
// treated as an empty log.
func (s *Store) Load(ctx context.Context, category model.Category, entity string) ([]model.JournalEntry, error) {
	if !category.Valid() {
		return nil, model.ErrUnknownCategory
	}
	key := storage.EntriesKey(category, entity)

	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return []model.JournalEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	var entries []model.JournalEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("malformed entry log, treating as empty")
		return []model.JournalEntry{}, nil
	}
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	return entries, nil
}

// Append creates an entry and prepends it to the entity's log
func (s *Store) Append(ctx context.Context, category model.Category, entity, content, author string) (*model.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.ErrEmptyContent
	}

	entries, err := s.Load(ctx, category, entity)
	if err != nil {
		return nil, err
	}

	if author == "" {
		author = model.DefaultAuthor
	}
	now := s.clock.Now()
	entry := model.JournalEntry{
		ID:      s.ids.next(now.UnixMilli()),
		Date:    now.Format(s.layout),
		Author:  author,
		Content: content,
	}

	updated := make([]model.JournalEntry, 0, len(entries)+1)
	updated = append(updated, entry)
	updated = append(updated, entries...)

	if err := s.save(ctx, category, entity, updated); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("category", string(category)).
		Str("entity", entity).
		Int64("id", entry.ID).
		Msg("entry appended")
	return &entry, nil
}

// DeleteAll drops the entity's log
func (s *Store) DeleteAll(ctx context.Context, category model.Category, entity string) error {
	if !category.Valid() {
		return model.ErrUnknownCategory
	}
	key := storage.EntriesKey(category, entity)
	if err := s.store.Remove(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, category model.Category, entity string, entries []model.JournalEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	key := storage.EntriesKey(category, entity)
	if err := s.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
