// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type addQuoteResponse struct {
	Quote   models.Quote `json:"quote"`
	Message string       `json:"message"`
}

func (h *Handler) listQuotes(w http.ResponseWriter, r *http.Request) {
	quotes := h.services.QuoteService.List(r.Context())
	_, _ = utils.WriteJSON(w, quotes, http.StatusOK)
}

func (h *Handler) addQuote(w http.ResponseWriter, r *http.Request) {
	var quote models.Quote
	if err := json.NewDecoder(r.Body).Decode(&quote); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	added, err := h.services.QuoteService.Add(r.Context(), quote)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, addQuoteResponse{Quote: added, Message: app.MsgQuoteAdded}, http.StatusCreated)
}

func (h *Handler) randomQuote(w http.ResponseWriter, r *http.Request) {
	display, err := h.services.QuoteService.Random(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, display, http.StatusOK)
}
