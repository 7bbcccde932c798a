// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-quote-keeper/internal/presenter"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type quoteShownMsg struct {
	display presenter.Display
	err     error
}

type lastShownMsg struct {
	quote models.ShownQuote
	found bool
}

type filterLoadedMsg struct {
	filter string
	err    error
}

type filterSavedMsg struct {
	filter string
	err    error
}

type quoteAddedMsg struct {
	err error
}

// syncDoneMsg carries the report of a sync started from the keyboard.
type syncDoneMsg struct {
	report models.SyncReport
}

// syncReportMsg carries a report published by the background sync job.
type syncReportMsg struct {
	report models.SyncReport
	ok     bool
}

type importDoneMsg struct {
	count int
	err   error
}

type exportDoneMsg struct {
	path string
	err  error
}

type notificationExpiredMsg struct {
	id string
}
