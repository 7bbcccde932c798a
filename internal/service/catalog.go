// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type catalog struct {
	quotes QuoteStore
	repo   store.KeyValueRepository

	logger *logger.Logger
}

// NewCatalog returns a Catalog over quotes that keeps the filter under
// KeyLastCategory in repo.
func NewCatalog(quotes QuoteStore, repo store.KeyValueRepository, logger *logger.Logger) Catalog {
	return &catalog{
		quotes: quotes,
		repo:   repo,
		logger: logger,
	}
}

// Categories implements Catalog. Each iteration takes a fresh snapshot, so
// the sequence can be ranged over again after the store changed.
func (c *catalog) Categories() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, q := range c.quotes.Snapshot() {
			if _, ok := seen[q.Category]; ok {
				continue
			}
			seen[q.Category] = struct{}{}
			if !yield(q.Category) {
				return
			}
		}
	}
}

func (c *catalog) CurrentFilter(ctx context.Context) (string, error) {
	value, err := c.repo.Get(ctx, KeyLastCategory)
	if errors.Is(err, store.ErrKeyNotFound) || (err == nil && value == "") {
		return models.FilterAll, nil
	}
	if err != nil {
		c.logger.Err(err).Str("func", "catalog.CurrentFilter").Msg("error reading category filter")
		return "", fmt.Errorf("read filter: %w", err)
	}

	return value, nil
}

// SetFilter implements Catalog. Any value is accepted; a category that no
// longer exists simply selects an empty pool.
func (c *catalog) SetFilter(ctx context.Context, value string) error {
	if value == "" {
		value = models.FilterAll
	}

	if err := c.repo.Set(ctx, KeyLastCategory, value); err != nil {
		c.logger.Err(err).Str("func", "catalog.SetFilter").Msg("error saving category filter")
		return fmt.Errorf("save filter: %w", err)
	}

	return nil
}

func (c *catalog) Pool(filter string) []models.Quote {
	all := c.quotes.Snapshot()
	if filter == models.FilterAll {
		return all
	}

	pool := make([]models.Quote, 0, len(all))
	for _, q := range all {
		if q.Category == filter {
			pool = append(pool, q)
		}
	}
	return pool
}

// CategoryOptions returns the values a category picker offers: FilterAll
// followed by every distinct category.
func CategoryOptions(c Catalog) []string {
	options := []string{models.FilterAll}
	for category := range c.Categories() {
		options = append(options, category)
	}
	return options
}
