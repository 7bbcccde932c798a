// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// quote keeper front-ends (TUI, CLI and HTTP API).
//
// All Msg* constants are human-readable message strings that are shown to the
// user, written into HTTP response bodies or logged to describe the outcome of
// an operation. Keeping them in one place ensures consistent wording across
// every front-end.
package app

const (
	// MsgFillBothFields is shown when a quote is submitted without text or
	// category.
	MsgFillBothFields = "Please fill in both fields."

	// MsgQuoteAdded is shown after a quote was appended and persisted.
	MsgQuoteAdded = "Quote added successfully!"

	// MsgNoQuotesAvailable is rendered instead of a quote when the pool for
	// the current filter is empty.
	MsgNoQuotesAvailable = "No quotes available in this category."

	// MsgInvalidJSONFormat is shown when an imported file is valid JSON but
	// its top-level value is not an array.
	MsgInvalidJSONFormat = "Invalid JSON format."

	// MsgErrorReadingJSON is shown when an imported file cannot be read or
	// parsed at all.
	MsgErrorReadingJSON = "Error reading JSON file."

	// MsgQuotesImported is shown after a successful import.
	MsgQuotesImported = "Quotes imported successfully!"

	// MsgQuotesExported is shown after the quote list was written to a file.
	MsgQuotesExported = "Quotes exported successfully!"

	// MsgSyncInProgress is shown when a manual sync is requested while a
	// scheduled one is still running.
	MsgSyncInProgress = "Sync already in progress"

	// MsgSyncFailed is shown when a sync run could not reach the remote
	// collection or save its result.
	MsgSyncFailed = "Error syncing with server"

	// MsgSyncUpToDate is shown for a manual sync that changed nothing.
	MsgSyncUpToDate = "Quotes are up to date"

	// MsgAllCategories labels the filter option that selects every quote.
	MsgAllCategories = "All Categories"

	// MsgCopied is shown after the current quote was copied to the clipboard.
	MsgCopied = "Copied to clipboard"

	// MsgInvalidDataProvided is returned by the HTTP API when the request
	// body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMethodNotAllowed is returned for a known path requested with an
	// unsupported method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnsupportedExportFormat is returned when an export is requested in a
	// format other than json or xlsx.
	MsgUnsupportedExportFormat = "unsupported export format"
)
