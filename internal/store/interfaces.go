// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueRepository is the persistent string key-value storage the quote
// list and the category filter live in.
type KeyValueRepository interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set creates or overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error
}

// SessionRepository is a key-value storage that lives only as long as the
// process. It holds the last shown quote.
type SessionRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
