// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// DefaultSyncInterval is used by Start when no positive interval is given.
const DefaultSyncInterval = 30 * time.Second

const subscriberBuffer = 4

type syncJob struct {
	syncService SyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	subsMu sync.Mutex
	subs   []chan models.SyncReport

	logger *logger.Logger
}

// NewSyncJob creates a syncJob that calls syncService.Sync on a ticker. The
// job is idle until Start is called.
func NewSyncJob(syncService SyncService, logger *logger.Logger) SyncJob {
	return &syncJob{
		syncService: syncService,
		logger:      logger,
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that syncs once right away and then every
// interval. If interval is zero or negative it defaults to
// DefaultSyncInterval.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.runOnce(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *syncJob) runOnce(ctx context.Context) {
	report := j.syncService.Sync(ctx)
	if errors.Is(report.Err, ErrSyncInProgress) || ctx.Err() != nil {
		return
	}
	j.publish(report)
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Subscribe implements SyncJob. The channel is buffered; a report is dropped
// for a subscriber whose buffer is full.
func (j *syncJob) Subscribe() <-chan models.SyncReport {
	ch := make(chan models.SyncReport, subscriberBuffer)

	j.subsMu.Lock()
	j.subs = append(j.subs, ch)
	j.subsMu.Unlock()

	return ch
}

func (j *syncJob) publish(report models.SyncReport) {
	j.subsMu.Lock()
	defer j.subsMu.Unlock()

	for _, ch := range j.subs {
		select {
		case ch <- report:
		default:
			j.logger.Warn().Str("func", "syncJob.publish").Msg("sync report dropped, subscriber is not reading")
		}
	}
}
