// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the API server.
type Server interface {
	// Run serves requests until ctx is cancelled or a stop signal arrives,
	// then shuts down gracefully. It returns the first fatal serve error.
	Run(ctx context.Context) error
}
