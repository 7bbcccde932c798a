// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/presenter"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
)

// Services groups the quote services shared by every front-end.
type Services struct {
	Quotes          QuoteStore
	Catalog         Catalog
	QuoteService    QuoteService
	SyncService     SyncService
	SyncJob         SyncJob
	TransferService TransferService
	Metrics         *Metrics
}

// NewServices wires the services on top of storages and remote and loads the
// persisted quote list. reg may be nil when metrics are not exported.
func NewServices(ctx context.Context, storages *store.Storages, remote adapter.RemoteAdapter, reg prometheus.Registerer, logger *logger.Logger) (*Services, error) {
	var metrics *Metrics
	if reg != nil {
		metrics = NewMetrics(reg)
	}

	quotes := NewQuoteStore(storages.KeyValue, logger)
	if err := quotes.Load(ctx); err != nil {
		return nil, fmt.Errorf("init quote store: %w", err)
	}

	catalog := NewCatalog(quotes, storages.KeyValue, logger)
	syncService := NewSyncService(remote, quotes, metrics, logger)

	return &Services{
		Quotes:  quotes,
		Catalog: catalog,
		QuoteService: NewQuoteService(QuoteServiceDeps{
			Quotes:    quotes,
			Catalog:   catalog,
			Session:   storages.Session,
			Remote:    remote,
			Validator: validators.NewQuoteValidator(),
			Presenter: presenter.New(nil),
			Metrics:   metrics,
		}, logger),
		SyncService:     syncService,
		SyncJob:         NewSyncJob(syncService, logger),
		TransferService: NewTransferService(quotes, validators.NewImportValidator(), metrics, logger),
		Metrics:         metrics,
	}, nil
}
