// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type quoteStore struct {
	repo store.KeyValueRepository

	mu     sync.RWMutex
	quotes []models.Quote
	loaded bool

	logger *logger.Logger
}

// NewQuoteStore returns a QuoteStore persisted under KeyQuotes in repo.
// Load must be called before the store is used.
func NewQuoteStore(repo store.KeyValueRepository, logger *logger.Logger) QuoteStore {
	return &quoteStore{
		repo:   repo,
		logger: logger,
	}
}

// Load implements QuoteStore. A missing key, a value that is not a JSON array
// of quotes, or a JSON null all yield the seed list. Storage read errors are
// returned as is.
func (s *quoteStore) Load(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, KeyQuotes)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		s.logger.Err(err).Str("func", "quoteStore.Load").Msg("error reading persisted quotes")
		return fmt.Errorf("load quotes: %w", err)
	}

	quotes := decodeQuotes(raw)
	if quotes == nil {
		s.logger.Debug().Str("func", "quoteStore.Load").Msg("no usable persisted quotes, using seed list")
		quotes = models.SeedQuotes()
	}

	s.mu.Lock()
	s.quotes = quotes
	s.loaded = true
	s.mu.Unlock()

	return nil
}

// decodeQuotes returns nil when raw does not hold a JSON array of quotes.
// An empty array decodes into an empty, non-nil slice.
func decodeQuotes(raw string) []models.Quote {
	if raw == "" {
		return nil
	}

	var quotes []models.Quote
	if err := json.Unmarshal([]byte(raw), &quotes); err != nil {
		return nil
	}
	if quotes == nil {
		return nil
	}
	return quotes
}

func (s *quoteStore) Snapshot() []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.CloneQuotes(s.quotes)
}

func (s *quoteStore) Append(ctx context.Context, quotes ...models.Quote) error {
	return s.Update(ctx, func(current []models.Quote) ([]models.Quote, error) {
		return append(current, quotes...), nil
	})
}

func (s *quoteStore) Replace(ctx context.Context, quotes []models.Quote) error {
	return s.Update(ctx, func([]models.Quote) ([]models.Quote, error) {
		return models.CloneQuotes(quotes), nil
	})
}

// Update implements QuoteStore. fn receives a copy, so it may modify and
// extend the slice freely. The new list only becomes visible after it was
// saved.
func (s *quoteStore) Update(ctx context.Context, fn func([]models.Quote) ([]models.Quote, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrStoreNotLoaded
	}

	next, err := fn(models.CloneQuotes(s.quotes))
	if err != nil {
		return err
	}
	if next == nil {
		next = []models.Quote{}
	}

	if err = s.save(ctx, next); err != nil {
		return err
	}

	s.quotes = next
	return nil
}

// save serializes the full ordered list under KeyQuotes. The caller holds mu.
func (s *quoteStore) save(ctx context.Context, quotes []models.Quote) error {
	raw, err := json.Marshal(quotes)
	if err != nil {
		return fmt.Errorf("encode quotes: %w", err)
	}

	if err = s.repo.Set(ctx, KeyQuotes, string(raw)); err != nil {
		s.logger.Err(err).Str("func", "quoteStore.save").Msg("error saving quotes")
		return fmt.Errorf("save quotes: %w", err)
	}

	return nil
}
