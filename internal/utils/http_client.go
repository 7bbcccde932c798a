// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// TraceIDHeader carries the request trace identifier in both directions.
	TraceIDHeader = "X-Trace-ID"

	userAgent = "go-quote-keeper"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient for baseURL with the given request
// timeout. Every request sends a fixed User-Agent, accepts JSON and forwards
// the trace ID stored in its context (see [WithTraceID]).
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://jsonplaceholder.typicode.com", 15*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/posts")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(forwardTraceID)

	return &HTTPClient{Client: client}
}

func forwardTraceID(_ *resty.Client, req *resty.Request) error {
	if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
