// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// ---------------------------------------------------------------------------
// QuoteValidator
// ---------------------------------------------------------------------------

func TestQuoteValidator_Validate(t *testing.T) {
	v := NewQuoteValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		input     any
		fields    []string
		wantField string
		wantErr   error
	}{
		{name: "valid value", input: models.Quote{Text: "t", Category: "c"}},
		{name: "valid pointer", input: &models.Quote{Text: "t", Category: "c", Author: "a"}},
		{name: "missing text", input: models.Quote{Category: "c"}, wantField: FieldText, wantErr: ErrValidation},
		{name: "missing category", input: models.Quote{Text: "t"}, wantField: FieldCategory, wantErr: ErrValidation},
		{name: "missing both reports text first", input: models.Quote{}, wantField: FieldText, wantErr: ErrValidation},
		{name: "author is optional", input: models.Quote{Text: "t", Category: "c", Author: ""}},
		{name: "partial text only", input: models.Quote{Text: "t"}, fields: []string{FieldText}},
		{name: "partial category", input: models.Quote{Text: "t"}, fields: []string{FieldCategory}, wantField: FieldCategory, wantErr: ErrValidation},
		{name: "unsupported type", input: "quote", wantErr: ErrUnsupportedType},
		{name: "nil pointer", input: (*models.Quote)(nil), wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantField != "" {
				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.wantField, vErr.Field)
				assert.Equal(t, "validation failed for "+tt.wantField+": is required", vErr.Error())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// ImportValidator
// ---------------------------------------------------------------------------

func TestImportValidator_Validate(t *testing.T) {
	v := NewImportValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		input      any
		wantReason FormatReason
		wantErr    error
	}{
		{name: "empty array", input: []byte(`[]`)},
		{name: "array of quotes", input: []byte(`[{"text":"a","category":"b"}]`)},
		{name: "array with malformed elements", input: []byte(`[{"text":1}, {}]`)},
		{name: "raw message", input: []byte(` [ ] `)},
		{name: "object", input: []byte(`{"text":"a"}`), wantReason: FormatNotArray, wantErr: ErrFormat},
		{name: "string", input: []byte(`"quotes"`), wantReason: FormatNotArray, wantErr: ErrFormat},
		{name: "null", input: []byte(`null`), wantReason: FormatNotArray, wantErr: ErrFormat},
		{name: "not json", input: []byte(`quotes!`), wantReason: FormatMalformed, wantErr: ErrFormat},
		{name: "empty", input: []byte(``), wantReason: FormatMalformed, wantErr: ErrFormat},
		{name: "trailing data", input: []byte(`[] []`), wantReason: FormatMalformed, wantErr: ErrFormat},
		{name: "unsupported type", input: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			var fErr *FormatError
			if errors.As(err, &fErr) {
				assert.Equal(t, tt.wantReason, fErr.Reason)
			}
		})
	}
}

func TestFormatError_Error(t *testing.T) {
	assert.Equal(t, "invalid format: payload is not valid JSON", (&FormatError{Reason: FormatMalformed}).Error())
	assert.Contains(t, NewFormatError(FormatNotArray, errors.New("boom")).Error(), "not a JSON array of quotes: boom")
}

func TestFormatError_UnwrapsCause(t *testing.T) {
	cause := errors.New("read limit")
	err := NewFormatError(FormatMalformed, cause)

	assert.ErrorIs(t, err, ErrFormat)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, &FormatError{Reason: FormatNotArray}, cause)
}
