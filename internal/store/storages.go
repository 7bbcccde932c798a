// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

// Storages groups every repository used by the service layer.
type Storages struct {
	// KeyValue is the persistent storage (quotes, lastCategory).
	KeyValue KeyValueRepository
	// Session is the process-scoped storage (lastQuote).
	Session SessionRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens a connection selected by the DSN (see [NewConnect]).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a fresh [KeyValueRepository] and an empty [SessionRepository].
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		KeyValue: NewKeyValueRepository(db, logger),
		Session:  NewSessionRepository(),
		db:       db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
