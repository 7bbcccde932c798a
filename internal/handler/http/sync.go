// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
)

type syncResponse struct {
	New       int    `json:"new"`
	Conflicts int    `json:"conflicts"`
	Message   string `json:"message"`
}

// syncQuotes runs one sync on demand. A run already in progress yields 409,
// a failed run 502.
func (h *Handler) syncQuotes(w http.ResponseWriter, r *http.Request) {
	report := h.services.SyncService.Sync(r.Context())
	if report.Failed() {
		h.writeError(w, r, report.Err)
		return
	}

	message, changed := report.Summary()
	if !changed {
		message = app.MsgSyncUpToDate
	}

	_, _ = utils.WriteJSON(w, syncResponse{
		New:       report.New,
		Conflicts: report.Conflicts,
		Message:   message,
	}, http.StatusOK)
}
