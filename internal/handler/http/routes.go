// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/quotes", h.listQuotes)
		r.Post("/api/quotes", h.addQuote)
		r.Get("/api/quotes/random", h.randomQuote)

		r.Get("/api/categories", h.listCategories)
		r.Get("/api/filter", h.getFilter)
		r.Put("/api/filter", h.setFilter)

		r.Get("/api/export", h.exportQuotes)
		r.Post("/api/import", h.importQuotes)

		r.Post("/api/sync", h.syncQuotes)

		r.Get("/api/version", h.getServerVersion)
	})

	// promhttp negotiates its own compression
	router.Get("/metrics", h.metrics.ServeHTTP)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
