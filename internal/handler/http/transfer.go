// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
)

// maxImportBodySize bounds the body of POST /api/import.
const maxImportBodySize = 10 << 20

type importResponse struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// exportQuotes streams the quote list as an attachment. The export is
// rendered into a buffer first so a failure can still be reported with a
// proper status code.
func (h *Handler) exportQuotes(w http.ResponseWriter, r *http.Request) {
	format, err := service.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err = h.services.TransferService.Export(r.Context(), &buf, format); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", service.ExportContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ExportFileName(format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) importQuotes(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxImportBodySize)

	imported, err := h.services.TransferService.Import(r.Context(), body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, importResponse{Imported: imported, Message: app.MsgQuotesImported}, http.StatusOK)
}
