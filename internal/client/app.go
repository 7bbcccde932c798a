// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// ErrNoUI is returned by NewApp when no user interface is given.
var ErrNoUI = errors.New("client: ui is not provided")

// UI is the interactive front-end driven by App.
type UI interface {
	// Run blocks until the user quits. Reports published by the sync job are
	// delivered on reports.
	Run(ctx context.Context, reports <-chan models.SyncReport) error
}

// App ties the sync job and the UI to one process lifecycle.
type App struct {
	services *service.Services
	ui       UI
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

// NewApp returns an App. The sync job runs every cfg.SyncInterval while the
// UI is open.
func NewApp(services *service.Services, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	if cfg.SyncInterval <= 0 {
		cfg.SyncInterval = service.DefaultSyncInterval
	}

	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run starts the sync job (one run right away, then on the interval), runs
// the UI and tears everything down when the UI returns. Pending remote posts
// are awaited before Run returns.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	job := a.services.SyncJob
	reports := job.Subscribe()

	a.logger.Info().Str("func", "App.Run").Dur("interval", a.cfg.SyncInterval).Msg("starting sync job")
	job.Start(ctx, a.cfg.SyncInterval)

	err := a.ui.Run(ctx, reports)

	job.Stop()
	a.services.QuoteService.Wait()
	a.logger.Info().Str("func", "App.Run").Msg("client stopped")

	return err
}
