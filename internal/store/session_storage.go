// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memorySessionRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewSessionRepository returns an empty in-memory [SessionRepository].
func NewSessionRepository() SessionRepository {
	return &memorySessionRepository{values: make(map[string]string)}
}

func (m *memorySessionRepository) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *memorySessionRepository) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
