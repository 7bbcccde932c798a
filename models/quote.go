// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FilterAll is the catalog filter value that selects every quote regardless
// of its category.
const FilterAll = "all"

// ServerCategory is the category assigned to every quote mapped from the
// remote collection.
const ServerCategory = "Server"

// Quote is a single quotation kept by the application.
//
// Text is the identity key used when reconciling with the remote collection;
// two quotes with the same Text are considered the same record even though the
// local list does not enforce uniqueness.
type Quote struct {
	// Text is the quotation itself.
	Text string `json:"text" validate:"required"`

	// Category is a free-form label used for filtering.
	Category string `json:"category" validate:"required"`

	// Author is optional and only filled for quotes whose source provides it.
	Author string `json:"author,omitempty"`
}

// ShownQuote is the session-scoped snapshot of the last quote displayed to the
// user.
type ShownQuote struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// SeedQuotes returns the list used when nothing has been persisted yet or the
// persisted list cannot be parsed. Every call returns a fresh slice.
func SeedQuotes() []Quote {
	return []Quote{
		{Text: "The best way to predict the future is to create it.", Category: "Motivation"},
		{Text: "Life is 10% what happens to us and 90% how we react to it.", Category: "Life"},
		{Text: "Your time is limited, so don't waste it living someone else's life.", Category: "Inspiration"},
	}
}

// CloneQuotes returns a copy of quotes that shares no backing array with the
// input. A nil input yields an empty, non-nil slice.
func CloneQuotes(quotes []Quote) []Quote {
	out := make([]Quote, len(quotes))
	copy(out, quotes)
	return out
}
