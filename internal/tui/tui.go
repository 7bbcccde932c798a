// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal front-end of the quote
// keeper on top of bubbletea.
//
// The package only renders state and forwards key presses to the services;
// every mutation goes through [service.Services].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/presenter"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// TUI runs the bubbletea program.
type TUI struct {
	services  *service.Services
	board     *presenter.Board
	cfg       config.ClientWorkers
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI bound to services. cfg.NotifyDuration controls how long
// status messages stay visible.
func New(services *service.Services, cfg config.ClientWorkers, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if cfg.NotifyDuration <= 0 {
		cfg.NotifyDuration = config.DefaultNotifyDuration
	}

	return &TUI{
		services:  services,
		board:     presenter.NewBoard(),
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. Sync reports are read
// from reports for as long as the program runs.
func (t *TUI) Run(ctx context.Context, reports <-chan models.SyncReport) error {
	model := newMainModel(ctx, t.services, t.board, t.cfg.NotifyDuration, reports)
	model.buildInfo = t.buildInfo

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui program stopped with error")
		return err
	}
	return nil
}
