// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	FieldText     = "text"
	FieldCategory = "category"
	FieldAuthor   = "author"
)

// QuoteValidator checks manually added quotes with go-playground/validator
// using the `validate` tags of [models.Quote].
type QuoteValidator struct {
	validate *validator.Validate
}

func NewQuoteValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &QuoteValidator{validate: v}
}

// Validate accepts models.Quote or *models.Quote. When fields are given
// (json names, e.g. "text"), only those fields are checked. The first
// failing field is reported as a [ValidationError].
func (v *QuoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Quote:
		return v.validateQuote(ctx, value, fields...)
	case *models.Quote:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateQuote(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *QuoteValidator) validateQuote(ctx context.Context, quote models.Quote, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, quote)
	} else {
		err = v.validate.StructPartialCtx(ctx, quote, structFieldNames(fields)...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	first := fieldErrs[0]
	switch first.Tag() {
	case "required":
		return NewValidationError(first.Field(), "is required")
	default:
		return NewValidationError(first.Field(), "failed validation: "+first.Tag())
	}
}

// structFieldNames maps json names to the Go field names StructPartial
// expects.
func structFieldNames(fields []string) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldText:
			names = append(names, "Text")
		case FieldCategory:
			names = append(names, "Category")
		case FieldAuthor:
			names = append(names, "Author")
		}
	}
	return names
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
