// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds settings used by the remote quote adapter.
type ClientAdapter struct {
	// RemoteURL is the collection endpoint fetched during sync.
	RemoteURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// FetchLimit is the number of records requested per sync.
	FetchLimit int
	// MapAuthor enables mapping of the remote user id into the quote author.
	MapAuthor bool
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs.
	SyncInterval time.Duration
	// NotifyDuration defines how long a status message stays visible.
	NotifyDuration time.Duration
}

// ClientLog holds the log destination of interactive binaries.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig]. It is shared by the TUI and the quotectl CLI.
type ClientConfig struct {
	// Adapter contains remote collection settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Log contains log file settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration of the running process.
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig loads the base config via [LoadStructuredConfig], maps only
// the fields relevant to the client runtime, and validates the resulting
// [ClientConfig].
func LoadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := LoadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a structured config onto the client view without
// validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			RemoteURL:      cfg.Adapter.RemoteURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			FetchLimit:     cfg.Adapter.FetchLimit,
			MapAuthor:      cfg.Adapter.MapAuthor,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			NotifyDuration: cfg.Workers.NotifyDuration,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
