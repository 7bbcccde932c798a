// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Storage keys.
const (
	// KeyQuotes holds the JSON array of quotes.
	KeyQuotes = "quotes"
	// KeyLastCategory holds the selected category filter.
	KeyLastCategory = "lastCategory"
	// KeyLastQuote holds the last shown quote in session storage.
	KeyLastQuote = "lastQuote"
)
