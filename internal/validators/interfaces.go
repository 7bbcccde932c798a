// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for quotes and import
// payloads.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError and FormatError: typed errors that unwrap to
//     [ErrValidation] and [ErrFormat] so callers can match them with
//     [errors.Is] and still read the details with [errors.As].
//
// This package decouples validation logic from transport layers and storage,
// so the TUI, the CLI and the HTTP API reject the same input the same way.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
