// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"iter"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/presenter"
	"github.com/MKhiriev/go-quote-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// QuoteStore owns the ordered quote list and persists it after every
// mutation. Implementations are safe for concurrent use.
type QuoteStore interface {
	// Load reads the persisted list, falling back to the seed list when
	// nothing usable is stored.
	Load(ctx context.Context) error
	// Snapshot returns a copy of the current list.
	Snapshot() []models.Quote
	// Append adds quotes at the end of the list and saves it.
	Append(ctx context.Context, quotes ...models.Quote) error
	// Replace swaps the whole list and saves it.
	Replace(ctx context.Context, quotes []models.Quote) error
	// Update runs fn on the current list while holding the store lock and
	// saves whatever fn returns. The store is left untouched if fn or the
	// save fails.
	Update(ctx context.Context, fn func(current []models.Quote) ([]models.Quote, error)) error
}

// Catalog derives categories from the store and keeps the persisted filter.
type Catalog interface {
	// Categories yields distinct categories in first-seen order.
	Categories() iter.Seq[string]
	// CurrentFilter returns the persisted filter or models.FilterAll.
	CurrentFilter(ctx context.Context) (string, error)
	// SetFilter persists the filter value.
	SetFilter(ctx context.Context, value string) error
	// Pool returns the quotes selected by filter.
	Pool(filter string) []models.Quote
}

// QuoteService is the entry point front-ends use to add, list and show
// quotes.
type QuoteService interface {
	// Add trims and validates quote, appends it and announces it to the
	// remote collection in the background.
	Add(ctx context.Context, quote models.Quote) (models.Quote, error)
	List(ctx context.Context) []models.Quote
	// Random picks a quote from the pool of the current filter and
	// remembers it as the last shown quote.
	Random(ctx context.Context) (presenter.Display, error)
	// LastShown returns the last quote shown in this process.
	LastShown(ctx context.Context) (models.ShownQuote, bool, error)
	// Wait blocks until every background announcement has finished.
	Wait()
}

// SyncService reconciles the local list with the remote collection.
type SyncService interface {
	// Sync performs one fetch-and-reconcile run. Failures are reported
	// through SyncReport.Err; local state is unchanged on failure.
	Sync(ctx context.Context) models.SyncReport
}

// SyncJob runs SyncService on a schedule.
type SyncJob interface {
	// Start runs one sync immediately and then one every interval until ctx
	// is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the running job and waits for it to exit.
	Stop()
	// Subscribe returns a channel that receives every finished report.
	Subscribe() <-chan models.SyncReport
}

// TransferService exports and imports the whole quote list.
type TransferService interface {
	Export(ctx context.Context, w io.Writer, format string) error
	// Import appends the quotes read from r and returns how many were added.
	Import(ctx context.Context, r io.Reader) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
