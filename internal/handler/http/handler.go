// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	appInfo  service.AppInfoService
	metrics  http.Handler

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. gatherer backs GET /metrics; when it
// is nil the default prometheus registry is used.
func NewHandler(services *service.Services, appInfo service.AppInfoService, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		appInfo:  appInfo,
		metrics:  promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		logger:   logger,
	}
}
