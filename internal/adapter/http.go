// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// remotePost is a record of the JSONPlaceholder /posts collection.
type remotePost struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// postQuoteRequest is the body announced for a newly added quote.
type postQuoteRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type httpRemoteAdapter struct {
	client *utils.HTTPClient

	path       string
	fetchLimit int
	mapAuthor  bool

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs an HTTP/REST implementation of
// [RemoteAdapter]. It splits cfg.RemoteURL into a base URL (scheme and host)
// and the collection path, and configures the underlying HTTP client with
// the request timeout.
//
// Returns an error if cfg.RemoteURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPRemoteAdapter(cfg config.ClientAdapter, logger *logger.Logger) (RemoteAdapter, error) {
	baseURL, path, err := normalizeRemoteURL(cfg.RemoteURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter remote url: %w", err)
	}

	fetchLimit := cfg.FetchLimit
	if fetchLimit < 1 {
		fetchLimit = config.DefaultFetchLimit
	}

	return &httpRemoteAdapter{
		client:     utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		path:       path,
		fetchLimit: fetchLimit,
		mapAuthor:  cfg.MapAuthor,
		logger:     logger,
	}, nil
}

func normalizeRemoteURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("address must include host and scheme")
	}

	path := strings.TrimRight(u.Path, "/")
	if path == "" {
		path = "/"
	}

	return u.Scheme + "://" + u.Host, path, nil
}

// FetchQuotes implements [RemoteAdapter]. It GETs <path>?_limit=<n> and maps
// every post title to a quote text. With author mapping enabled the post's
// userId becomes "User <id>".
func (h *httpRemoteAdapter) FetchQuotes(ctx context.Context) ([]models.Quote, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("_limit", strconv.Itoa(h.fetchLimit)).
		Get(h.path)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch quotes request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []remotePost
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("%w: decode fetch quotes response: %w", ErrNetwork, err)
	}

	quotes := make([]models.Quote, 0, len(posts))
	for _, post := range posts {
		quote := models.Quote{
			Text:     post.Title,
			Category: models.ServerCategory,
		}
		if h.mapAuthor && post.UserID != 0 {
			quote.Author = "User " + strconv.Itoa(post.UserID)
		}
		quotes = append(quotes, quote)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*httpRemoteAdapter.FetchQuotes").
		Int("count", len(quotes)).
		Msg("fetched remote quotes")

	return quotes, nil
}

// PostQuote implements [RemoteAdapter]. It POSTs {text, category} to the
// collection path.
func (h *httpRemoteAdapter) PostQuote(ctx context.Context, quote models.Quote) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(postQuoteRequest{Text: quote.Text, Category: quote.Category}).
		Post(h.path)
	if err != nil {
		return fmt.Errorf("%w: post quote request: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}
