// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
)

// SyncWorker runs the scheduled sync job for headless binaries and logs every
// report the job publishes.
type SyncWorker struct {
	job      service.SyncJob
	interval time.Duration

	logger *logger.Logger
}

func NewSyncWorker(job service.SyncJob, interval time.Duration, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{
		job:      job,
		interval: interval,
		logger:   logger,
	}
}

// Run implements Worker.
func (w *SyncWorker) Run(ctx context.Context) {
	reports := w.job.Subscribe()
	w.job.Start(ctx, w.interval)
	defer w.job.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case report := <-reports:
			message, notify := report.Summary()
			switch {
			case report.Failed():
				w.logger.Warn().Err(report.Err).Str("func", "SyncWorker.Run").Msg(message)
			case notify:
				w.logger.Info().Str("func", "SyncWorker.Run").Int("new", report.New).Int("conflicts", report.Conflicts).Msg(message)
			default:
				w.logger.Debug().Str("func", "SyncWorker.Run").Msg("quotes are up to date")
			}
		}
	}
}
