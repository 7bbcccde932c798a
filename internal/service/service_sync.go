// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type syncService struct {
	remote  adapter.RemoteAdapter
	quotes  QuoteStore
	metrics *Metrics

	busy atomic.Bool
	now  func() time.Time

	logger *logger.Logger
}

// NewSyncService returns a SyncService that reconciles quotes with remote.
// metrics may be nil.
func NewSyncService(remote adapter.RemoteAdapter, quotes QuoteStore, metrics *Metrics, logger *logger.Logger) SyncService {
	return &syncService{
		remote:  remote,
		quotes:  quotes,
		metrics: metrics,
		now:     time.Now,
		logger:  logger,
	}
}

// Sync implements SyncService.
//
// A run is Fetching while the remote batch downloads and Reconciling while
// it merges under the store lock, so quotes added during the fetch are taken
// into account. The merged list is saved even when nothing changed. A run
// that starts while another one is active returns ErrSyncInProgress at once.
func (s *syncService) Sync(ctx context.Context) models.SyncReport {
	report := models.SyncReport{StartedAt: s.now()}

	if !s.busy.CompareAndSwap(false, true) {
		report.Err = ErrSyncInProgress
		s.metrics.observeSync(report, true)
		s.logger.Debug().Str("func", "syncService.Sync").Msg("sync skipped, another run is in progress")
		return report
	}
	defer s.busy.Store(false)

	defer func() {
		report.Duration = s.now().Sub(report.StartedAt)
	}()

	remote, err := s.remote.FetchQuotes(ctx)
	if err != nil {
		report.Err = fmt.Errorf("fetch remote quotes: %w", err)
		s.metrics.observeSync(report, false)
		s.logger.Err(err).Str("func", "syncService.Sync").Msg("error fetching remote quotes")
		return report
	}

	err = s.quotes.Update(ctx, func(local []models.Quote) ([]models.Quote, error) {
		merged, newCount, conflictCount := Reconcile(local, remote)
		report.New, report.Conflicts = newCount, conflictCount
		return merged, nil
	})
	if err != nil {
		report.New, report.Conflicts = 0, 0
		report.Err = fmt.Errorf("save reconciled quotes: %w", err)
		s.metrics.observeSync(report, false)
		s.logger.Err(err).Str("func", "syncService.Sync").Msg("error saving reconciled quotes")
		return report
	}

	s.metrics.observeSync(report, false)
	s.logger.Info().
		Str("func", "syncService.Sync").
		Int("fetched", len(remote)).
		Int("new", report.New).
		Int("conflicts", report.Conflicts).
		Msg("sync finished")

	return report
}
