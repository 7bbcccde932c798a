// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody: http.StatusBadRequest,

	validators.ErrValidation: http.StatusBadRequest,
	validators.ErrFormat:     http.StatusBadRequest,

	service.ErrSyncInProgress:          http.StatusConflict,
	service.ErrUnsupportedExportFormat: http.StatusBadRequest,
	service.ErrStoreNotLoaded:          http.StatusServiceUnavailable,

	adapter.ErrNetwork: http.StatusBadGateway,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the user-facing text for err, matching the
// wording the interactive front-ends show.
func messageFromError(err error) string {
	var formatErr *validators.FormatError
	switch {
	case errors.Is(err, ErrInvalidRequestBody):
		return app.MsgInvalidDataProvided
	case errors.Is(err, validators.ErrValidation):
		return app.MsgFillBothFields
	case errors.As(err, &formatErr):
		if formatErr.Reason == validators.FormatNotArray {
			return app.MsgInvalidJSONFormat
		}
		return app.MsgErrorReadingJSON
	case errors.Is(err, service.ErrSyncInProgress):
		return app.MsgSyncInProgress
	case errors.Is(err, service.ErrUnsupportedExportFormat):
		return app.MsgUnsupportedExportFormat
	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgSyncFailed
	default:
		return app.MsgInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err), status)
}
