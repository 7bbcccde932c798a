// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(now *time.Time) *Board {
	b := NewBoard()
	b.now = func() time.Time { return *now }
	return b
}

func TestBoard_Notify_AssignsDistinctIDs(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBoard(&now)

	first := b.Notify("one", 5*time.Second)
	second := b.Notify("two", 5*time.Second)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, now.Add(5*time.Second), first.ExpiresAt)
	assert.Len(t, b.Active(), 2)
}

func TestBoard_Expire_OnlyRemovesItsOwnNotification(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBoard(&now)

	first := b.Notify("first", 5*time.Second)
	second := b.Notify("second", 5*time.Second)

	require.True(t, b.Expire(first.ID))

	active := b.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	// expiring again is a no-op
	assert.False(t, b.Expire(first.ID))
	assert.Len(t, b.Active(), 1)
}

func TestBoard_Expire_UnknownID(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.Expire("missing"))
}

func TestBoard_Active_DropsTimedOutNotifications(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBoard(&now)

	b.Notify("short", time.Second)
	long := b.Notify("long", 10*time.Second)

	now = now.Add(2 * time.Second)

	active := b.Active()
	require.Len(t, active, 1)
	assert.Equal(t, long.ID, active[0].ID)
}

func TestBoard_Active_ReturnsCopy(t *testing.T) {
	b := NewBoard()
	b.Notify("msg", time.Minute)

	active := b.Active()
	active[0].Message = "changed"

	assert.Equal(t, "msg", b.Active()[0].Message)
}
