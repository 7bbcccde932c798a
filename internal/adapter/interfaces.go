// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the remote quote
// collection used for synchronization.
//
// The primary abstraction is [RemoteAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteAdapter]) for JSONPlaceholder-style collections.
//
// Every failure (transport error, non-2xx status, undecodable body) wraps
// [ErrNetwork]; status specific sentinels from errors.go are wrapped as well
// so callers can use [errors.Is] for finer handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter defines communication with the remote quote collection.
type RemoteAdapter interface {
	// FetchQuotes downloads one batch of remote records and maps them to
	// quotes of category [models.ServerCategory].
	FetchQuotes(ctx context.Context) ([]models.Quote, error)

	// PostQuote announces a locally added quote to the collection. The
	// response body is ignored.
	PostQuote(ctx context.Context, quote models.Quote) error
}
