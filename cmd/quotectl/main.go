// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command quotectl runs single quote keeper operations from the shell against
// the same storage the terminal client uses.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, openServices); err != nil {
		stop()
		os.Exit(1)
	}
}

// openServices loads the client configuration, opens storage and wires the
// services. The returned func releases the storage.
func openServices(ctx context.Context, opts rootOptions) (*service.Services, func(), error) {
	cfg, err := config.LoadClientConfig(opts.configArgs())
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewClientLogger("quotectl", cfg.Log.File, cfg.Log.Level)

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create storage: %w", err)
	}

	services, err := service.NewServices(ctx, storages, remote, nil, log)
	if err != nil {
		_ = storages.Close()
		return nil, nil, fmt.Errorf("create services: %w", err)
	}

	return services, func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "openServices").Msg("error closing storage")
		}
	}, nil
}
