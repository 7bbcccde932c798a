// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults: five posts fetched from JSONPlaceholder every 30 seconds,
// status messages visible for five seconds. The app version has no default;
// it comes from APP_VERSION or the linker-injected build version.
const (
	DefaultRemoteURL      = "https://jsonplaceholder.typicode.com/posts"
	DefaultRequestTimeout = 15 * time.Second
	DefaultFetchLimit     = 5
	DefaultDSN            = "quotes.db"
	DefaultSyncInterval   = 30 * time.Second
	DefaultNotifyDuration = 5 * time.Second
	DefaultHTTPAddress    = "localhost:8080"
	DefaultServerTimeout  = 30 * time.Second
	DefaultLogFile        = "quotes.log"
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Adapter: Adapter{
			RemoteURL:      DefaultRemoteURL,
			RequestTimeout: DefaultRequestTimeout,
			FetchLimit:     DefaultFetchLimit,
		},
		Workers: Workers{
			SyncInterval:   DefaultSyncInterval,
			NotifyDuration: DefaultNotifyDuration,
		},
		Log: Log{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}
