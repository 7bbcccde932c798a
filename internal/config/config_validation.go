// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// validate checks the settings shared by every binary. Client-only groups are
// checked again by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := validateAdapter(cfg.Adapter.RemoteURL, cfg.Adapter.RequestTimeout, cfg.Adapter.FetchLimit); err != nil {
		return err
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.NotifyDuration <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return validateLogLevel(cfg.Log.Level)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if err := validateAdapter(cfg.Adapter.RemoteURL, cfg.Adapter.RequestTimeout, cfg.Adapter.FetchLimit); err != nil {
		return err
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.NotifyDuration <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Log.File == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalidLogConfigs)
	}

	return validateLogLevel(cfg.Log.Level)
}

func validateAdapter(url string, timeout time.Duration, limit int) error {
	if url == "" || timeout <= 0 || limit < 1 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func validateLogLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLogConfigs, err)
	}
	return nil
}
