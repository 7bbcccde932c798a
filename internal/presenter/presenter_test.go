// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presenter

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// ── ShowRandom ───────────────────────────────────────────────────────────────

func TestShowRandom_EmptyPool(t *testing.T) {
	p := New(nil)

	for _, pool := range [][]models.Quote{nil, {}} {
		var d Display
		require.NotPanics(t, func() { d = p.ShowRandom(pool) })
		assert.False(t, d.Found)
		assert.Equal(t, app.MsgNoQuotesAvailable, d.Text)
		assert.Equal(t, models.Quote{}, d.Quote)
	}
}

func TestShowRandom_ReturnsElementOfPool(t *testing.T) {
	p := New(rand.NewPCG(1, 2))
	pool := models.SeedQuotes()

	for range 200 {
		d := p.ShowRandom(pool)
		require.True(t, d.Found)
		assert.Contains(t, pool, d.Quote)
		assert.Equal(t, Render(d.Quote), d.Text)
	}
}

func TestShowRandom_CoversWholePool(t *testing.T) {
	p := New(rand.NewPCG(7, 7))
	pool := models.SeedQuotes()

	seen := make(map[string]bool)
	for range 300 {
		seen[p.ShowRandom(pool).Quote.Text] = true
	}
	assert.Len(t, seen, len(pool), "every quote should be picked at least once")
}

func TestShowRandom_SingleElement(t *testing.T) {
	p := New(nil)
	pool := []models.Quote{{Text: "only", Category: "One"}}

	d := p.ShowRandom(pool)
	assert.True(t, d.Found)
	assert.Equal(t, pool[0], d.Quote)
}

// ── Render ───────────────────────────────────────────────────────────────────

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		quote models.Quote
		want  string
	}{
		{
			name:  "text and category",
			quote: models.Quote{Text: "Stay hungry.", Category: "Life"},
			want:  "Stay hungry.\n— Life",
		},
		{
			name:  "with author",
			quote: models.Quote{Text: "qui est esse", Category: models.ServerCategory, Author: "User 1"},
			want:  "qui est esse\n— Server, User 1",
		},
		{
			name:  "empty fields",
			quote: models.Quote{},
			want:  "\n— ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.quote))
		})
	}
}
