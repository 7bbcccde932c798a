// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned when a validator receives a value it
	// does not know how to check.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is the sentinel every [ValidationError] unwraps to.
	ErrValidation = errors.New("validation failed")

	// ErrFormat is the sentinel every [FormatError] unwraps to.
	ErrFormat = errors.New("invalid format")
)

// ValidationError describes a rejected quote field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// FormatReason tells apart the two ways an import payload can be rejected.
type FormatReason int

const (
	// FormatMalformed means the payload is not JSON at all.
	FormatMalformed FormatReason = iota
	// FormatNotArray means the payload is JSON but not an array.
	FormatNotArray
)

// FormatError describes a rejected import payload.
type FormatError struct {
	Reason FormatReason
	Cause  error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	what := "payload is not valid JSON"
	if e.Reason == FormatNotArray {
		what = "payload is not a JSON array of quotes"
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid format: %s: %v", what, e.Cause)
	}
	return "invalid format: " + what
}

// Unwrap returns the sentinel error and, when set, the cause.
func (e *FormatError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrFormat}
	}
	return []error{ErrFormat, e.Cause}
}

// NewFormatError creates a format error with its cause.
func NewFormatError(reason FormatReason, cause error) error {
	return &FormatError{Reason: reason, Cause: cause}
}
