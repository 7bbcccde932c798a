// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

// maxWriteAttempts bounds how often a write classified as [Retryable] is
// executed. Attempts are spaced by retryDelay.
const maxWriteAttempts = 3

var retryDelay = 50 * time.Millisecond

// keyValueRepository is the SQL-backed implementation of
// [KeyValueRepository] over the kv_storage table.
type keyValueRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewKeyValueRepository constructs a [KeyValueRepository] backed by the
// provided database connection and logger.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	logger.Debug().Msg("creating key-value repository")
	return &keyValueRepository{
		db:     db,
		logger: logger,
	}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Get").Str("key", key).Msg("error building query")
		return "", err
	}

	var value string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		log.Err(err).Str("func", "*keyValueRepository.Get").Str("key", key).Msg("error reading value")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertValueQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Set").Str("key", key).Msg("error building query")
		return err
	}

	attempt := 0
	backoff := retry.WithMaxRetries(maxWriteAttempts-1, retry.NewConstant(retryDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if _, execErr := r.db.ExecContext(ctx, query, args...); execErr != nil {
			if r.classify(execErr) != Retryable {
				return execErr
			}
			log.Warn().Err(execErr).
				Str("func", "*keyValueRepository.Set").
				Str("key", key).
				Int("attempt", attempt).
				Msg("retryable error writing value")
			return retry.RetryableError(execErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *keyValueRepository) classify(err error) ErrorClassification {
	if r.db.errorClassificator == nil {
		return NonRetryable
	}
	return r.db.errorClassificator.Classify(err)
}
