// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package presenter turns quotes into user-facing text and keeps transient
// status notifications.
//
// It has no knowledge of terminals or HTTP: the TUI, the CLI and the API all
// render the same [Display] and drive the same [Board].
package presenter

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// Display is the result of picking a quote for the user.
type Display struct {
	// Quote is the chosen quote. Zero when Found is false.
	Quote models.Quote `json:"quote"`
	// Text is the rendered quote, or the fallback message for an empty pool.
	Text string `json:"text"`
	// Found reports whether the pool had anything to pick from.
	Found bool `json:"found"`
}

// Presenter picks random quotes. The zero value is not usable; use New.
type Presenter struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Presenter drawing from src. A nil src uses a randomly seeded
// PCG source.
func New(src rand.Source) *Presenter {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Presenter{rng: rand.New(src)}
}

// ShowRandom picks one quote uniformly from pool. An empty pool yields the
// fallback message and Found == false.
func (p *Presenter) ShowRandom(pool []models.Quote) Display {
	if len(pool) == 0 {
		return Display{Text: app.MsgNoQuotesAvailable}
	}

	p.mu.Lock()
	i := p.rng.IntN(len(pool))
	p.mu.Unlock()

	quote := pool[i]
	return Display{
		Quote: quote,
		Text:  Render(quote),
		Found: true,
	}
}

// Render formats a quote as its text followed by a dash line with the
// category and, when present, the author.
func Render(q models.Quote) string {
	var b strings.Builder
	b.WriteString(q.Text)
	b.WriteString("\n— ")
	b.WriteString(q.Category)
	if q.Author != "" {
		b.WriteString(", ")
		b.WriteString(q.Author)
	}
	return b.String()
}
