// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type categoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type categoriesResponse struct {
	Categories []string         `json:"categories"`
	Options    []categoryOption `json:"options"`
}

type filterBody struct {
	Filter string `json:"filter"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories := slices.Collect(h.services.Catalog.Categories())
	if categories == nil {
		categories = []string{}
	}

	options := make([]categoryOption, 0, len(categories)+1)
	options = append(options, categoryOption{Value: models.FilterAll, Label: app.MsgAllCategories})
	for _, c := range categories {
		options = append(options, categoryOption{Value: c, Label: c})
	}

	_, _ = utils.WriteJSON(w, categoriesResponse{Categories: categories, Options: options}, http.StatusOK)
}

func (h *Handler) getFilter(w http.ResponseWriter, r *http.Request) {
	filter, err := h.services.Catalog.CurrentFilter(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, filterBody{Filter: filter}, http.StatusOK)
}

func (h *Handler) setFilter(w http.ResponseWriter, r *http.Request) {
	var body filterBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}
	if body.Filter == "" {
		body.Filter = models.FilterAll
	}

	if err := h.services.Catalog.SetFilter(r.Context(), body.Filter); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, body, http.StatusOK)
}
