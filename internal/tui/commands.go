// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

func (m mainModel) cmdRandom() tea.Cmd {
	ctx := m.ctx
	svc := m.services.QuoteService

	return func() tea.Msg {
		display, err := svc.Random(ctx)
		return quoteShownMsg{display: display, err: err}
	}
}

func (m mainModel) cmdLastShown() tea.Cmd {
	ctx := m.ctx
	svc := m.services.QuoteService

	return func() tea.Msg {
		quote, found, err := svc.LastShown(ctx)
		if err != nil {
			return lastShownMsg{}
		}
		return lastShownMsg{quote: quote, found: found}
	}
}

func (m mainModel) cmdLoadFilter() tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog

	return func() tea.Msg {
		filter, err := catalog.CurrentFilter(ctx)
		return filterLoadedMsg{filter: filter, err: err}
	}
}

func (m mainModel) cmdSetFilter(filter string) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog

	return func() tea.Msg {
		err := catalog.SetFilter(ctx, filter)
		return filterSavedMsg{filter: filter, err: err}
	}
}

func (m mainModel) cmdAdd(quote models.Quote) tea.Cmd {
	ctx := m.ctx
	svc := m.services.QuoteService

	return func() tea.Msg {
		_, err := svc.Add(ctx, quote)
		return quoteAddedMsg{err: err}
	}
}

func (m mainModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService

	return func() tea.Msg {
		return syncDoneMsg{report: svc.Sync(ctx)}
	}
}

func (m mainModel) cmdImport(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TransferService

	return func() tea.Msg {
		if path == "" {
			return importDoneMsg{err: errEmptyPath}
		}
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: fmt.Errorf("open %s: %w", path, err)}
		}
		defer f.Close()

		n, err := svc.Import(ctx, f)
		return importDoneMsg{count: n, err: err}
	}
}

func (m mainModel) cmdExport(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TransferService

	return func() tea.Msg {
		if path == "" {
			return exportDoneMsg{err: errEmptyPath}
		}
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{path: path, err: fmt.Errorf("create %s: %w", path, err)}
		}

		err = svc.Export(ctx, f, formatForPath(path))
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(path)
		}
		return exportDoneMsg{path: path, err: err}
	}
}

// waitForReport blocks on the sync job subscription. It is re-armed after
// every delivered report.
func waitForReport(reports <-chan models.SyncReport) tea.Cmd {
	if reports == nil {
		return nil
	}
	return func() tea.Msg {
		report, ok := <-reports
		return syncReportMsg{report: report, ok: ok}
	}
}

func (m mainModel) notify(message string) tea.Cmd {
	n := m.board.Notify(message, m.notifyFor)
	return tea.Tick(m.notifyFor, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: n.ID}
	})
}

func formatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), "."+service.FormatXLSX) {
		return service.FormatXLSX
	}
	return service.FormatJSON
}

// manualSyncMessage is the status text for a sync started from the keyboard.
// Unlike scheduled runs, a run without changes is reported too.
func manualSyncMessage(report models.SyncReport) string {
	if errors.Is(report.Err, service.ErrSyncInProgress) {
		return userMessage(report.Err)
	}
	if msg, ok := report.Summary(); ok {
		return msg
	}
	return app.MsgSyncUpToDate
}
