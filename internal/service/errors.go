// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSyncInProgress is reported by a sync run that started while another
	// run was still in flight. The skipped run does not touch the store.
	ErrSyncInProgress = errors.New("sync already in progress")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrUnsupportedExportFormat is returned by Export for formats other
	// than FormatJSON and FormatXLSX.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")

	// ErrStoreNotLoaded is returned when the quote store is used before Load.
	ErrStoreNotLoaded = errors.New("quote store is not loaded")
)
