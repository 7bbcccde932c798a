// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
)

// ErrNoServices is returned by New when no services are given.
var ErrNoServices = errors.New("tui: services are not provided")

var errEmptyPath = errors.New("file path is empty")

// userMessage turns a service error into the text shown on the status board.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var formatErr *validators.FormatError
	switch {
	case errors.Is(err, validators.ErrValidation):
		return app.MsgFillBothFields
	case errors.As(err, &formatErr):
		if formatErr.Reason == validators.FormatNotArray {
			return app.MsgInvalidJSONFormat
		}
		return app.MsgErrorReadingJSON
	case errors.Is(err, service.ErrSyncInProgress):
		return app.MsgSyncInProgress
	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgSyncFailed
	case errors.Is(err, service.ErrUnsupportedExportFormat):
		return app.MsgUnsupportedExportFormat
	}

	return fmt.Sprintf("Error: %v", err)
}
