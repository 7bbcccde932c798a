// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// importSchema only constrains the top-level shape. Elements are not
// checked.
const importSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array"
}`

// ImportValidator checks raw import payloads against the import JSON schema.
type ImportValidator struct {
	schema *jsonschema.Schema
}

// NewImportValidator compiles the import schema. It panics only if the
// embedded schema is broken.
func NewImportValidator() Validator {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("import.json", strings.NewReader(importSchema)); err != nil {
		panic(fmt.Sprintf("add import schema: %v", err))
	}

	return &ImportValidator{schema: compiler.MustCompile("import.json")}
}

// Validate accepts []byte or json.RawMessage. Bytes that are not JSON yield a
// [FormatError] with [FormatMalformed]; JSON that does not match the schema
// yields [FormatNotArray].
func (v *ImportValidator) Validate(_ context.Context, obj any, _ ...string) error {
	var raw []byte
	switch value := obj.(type) {
	case []byte:
		raw = value
	case json.RawMessage:
		raw = value
	default:
		return ErrUnsupportedType
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return NewFormatError(FormatMalformed, err)
	}
	if decoder.More() {
		return NewFormatError(FormatMalformed, fmt.Errorf("trailing data after top-level value"))
	}

	if err := v.schema.Validate(doc); err != nil {
		return NewFormatError(FormatNotArray, err)
	}

	return nil
}
