// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/presenter"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type quoteService struct {
	quotes    QuoteStore
	catalog   Catalog
	session   store.SessionRepository
	remote    adapter.RemoteAdapter
	validator validators.Validator
	presenter *presenter.Presenter
	metrics   *Metrics

	// tracks fire-and-forget PostQuote calls
	wg sync.WaitGroup

	logger *logger.Logger
}

// QuoteServiceDeps lists the collaborators of NewQuoteService. Remote and
// Metrics may be nil.
type QuoteServiceDeps struct {
	Quotes    QuoteStore
	Catalog   Catalog
	Session   store.SessionRepository
	Remote    adapter.RemoteAdapter
	Validator validators.Validator
	Presenter *presenter.Presenter
	Metrics   *Metrics
}

func NewQuoteService(deps QuoteServiceDeps, logger *logger.Logger) QuoteService {
	p := deps.Presenter
	if p == nil {
		p = presenter.New(nil)
	}

	return &quoteService{
		quotes:    deps.Quotes,
		catalog:   deps.Catalog,
		session:   deps.Session,
		remote:    deps.Remote,
		validator: deps.Validator,
		presenter: p,
		metrics:   deps.Metrics,
		logger:    logger,
	}
}

// Add implements QuoteService. Text, category and author are trimmed before
// validation; the trimmed quote is returned. Announcing the quote to the
// remote collection happens on its own goroutine and its failure is only
// logged.
func (s *quoteService) Add(ctx context.Context, quote models.Quote) (models.Quote, error) {
	quote.Text = strings.TrimSpace(quote.Text)
	quote.Category = strings.TrimSpace(quote.Category)
	quote.Author = strings.TrimSpace(quote.Author)

	if err := s.validator.Validate(ctx, quote); err != nil {
		s.logger.Debug().Err(err).Str("func", "quoteService.Add").Msg("quote rejected")
		return models.Quote{}, err
	}

	if err := s.quotes.Append(ctx, quote); err != nil {
		s.logger.Err(err).Str("func", "quoteService.Add").Msg("error appending quote")
		return models.Quote{}, fmt.Errorf("add quote: %w", err)
	}
	s.metrics.quoteAdded()

	s.announce(ctx, quote)

	return quote, nil
}

// announce posts quote to the remote collection without blocking the caller.
// The request is detached from the caller's context so it survives the
// end of an HTTP request, but keeps its trace ID.
func (s *quoteService) announce(ctx context.Context, quote models.Quote) {
	if s.remote == nil {
		return
	}

	postCtx := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if err := s.remote.PostQuote(postCtx, quote); err != nil {
			s.logger.Warn().Err(err).Str("func", "quoteService.announce").Msg("error posting quote to remote")
		}
	}()
}

func (s *quoteService) Wait() {
	s.wg.Wait()
}

func (s *quoteService) List(_ context.Context) []models.Quote {
	return s.quotes.Snapshot()
}

// Random implements QuoteService. A failure to remember the shown quote is
// logged and does not fail the call.
func (s *quoteService) Random(ctx context.Context) (presenter.Display, error) {
	filter, err := s.catalog.CurrentFilter(ctx)
	if err != nil {
		return presenter.Display{}, err
	}

	display := s.presenter.ShowRandom(s.catalog.Pool(filter))
	if !display.Found {
		return display, nil
	}

	shown := models.ShownQuote{Text: display.Quote.Text, Category: display.Quote.Category}
	raw, err := json.Marshal(shown)
	if err == nil {
		err = s.session.Set(ctx, KeyLastQuote, string(raw))
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "quoteService.Random").Msg("error remembering last quote")
	}

	return display, nil
}

func (s *quoteService) LastShown(ctx context.Context) (models.ShownQuote, bool, error) {
	raw, err := s.session.Get(ctx, KeyLastQuote)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.ShownQuote{}, false, nil
	}
	if err != nil {
		return models.ShownQuote{}, false, fmt.Errorf("read last quote: %w", err)
	}

	var shown models.ShownQuote
	if err = json.Unmarshal([]byte(raw), &shown); err != nil {
		s.logger.Warn().Err(err).Str("func", "quoteService.LastShown").Msg("ignoring unreadable last quote")
		return models.ShownQuote{}, false, nil
	}

	return shown, true, nil
}
