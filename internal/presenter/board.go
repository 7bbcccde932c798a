// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presenter

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/utils"
)

// Notification is one transient status message.
type Notification struct {
	ID        string
	Message   string
	ExpiresAt time.Time
}

// Board holds the status messages currently visible. Every notification has
// its own ID and expiry, so expiring one never affects another.
type Board struct {
	mu    sync.Mutex
	items []Notification

	ids *utils.UUIDGenerator
	now func() time.Time
}

// NewBoard returns an empty Board.
func NewBoard() *Board {
	return &Board{
		ids: utils.NewUUIDGenerator(),
		now: time.Now,
	}
}

// Notify posts message for duration and returns the stored notification.
// The caller schedules the matching Expire call.
func (b *Board) Notify(message string, duration time.Duration) Notification {
	n := Notification{
		ID:        b.ids.Generate(),
		Message:   message,
		ExpiresAt: b.now().Add(duration),
	}

	b.mu.Lock()
	b.items = append(b.items, n)
	b.mu.Unlock()

	return n
}

// Expire removes the notification with id. It reports whether it was still
// on the board.
func (b *Board) Expire(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.IndexFunc(b.items, func(n Notification) bool { return n.ID == id })
	if i < 0 {
		return false
	}
	b.items = slices.Delete(b.items, i, i+1)
	return true
}

// Active returns the notifications that have not expired yet, oldest first.
// Notifications past their expiry are dropped even if Expire was never
// called for them.
func (b *Board) Active() []Notification {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = slices.DeleteFunc(b.items, func(n Notification) bool {
		return !now.Before(n.ExpiresAt)
	})
	return slices.Clone(b.items)
}
