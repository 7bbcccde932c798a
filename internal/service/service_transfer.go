// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// ExportSheet is the worksheet the xlsx export writes to.
const ExportSheet = "Quotes"

// ExportFileName returns the default file name for format.
func ExportFileName(format string) string {
	return "quotes." + format
}

// ExportContentType returns the MIME type of an export in format.
func ExportContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/json"
}

// ParseExportFormat normalizes a user supplied format. An empty value means
// FormatJSON.
func ParseExportFormat(value string) (string, error) {
	switch format := strings.ToLower(strings.TrimSpace(value)); format {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, value)
	}
}

type transferService struct {
	quotes    QuoteStore
	validator validators.Validator
	metrics   *Metrics

	logger *logger.Logger
}

// NewTransferService returns a TransferService over quotes. validator checks
// the raw import payload; metrics may be nil.
func NewTransferService(quotes QuoteStore, validator validators.Validator, metrics *Metrics, logger *logger.Logger) TransferService {
	return &transferService{
		quotes:    quotes,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
	}
}

// Export implements TransferService.
func (s *transferService) Export(_ context.Context, w io.Writer, format string) error {
	format, err := ParseExportFormat(format)
	if err != nil {
		return err
	}

	quotes := s.quotes.Snapshot()

	switch format {
	case FormatXLSX:
		err = writeXLSX(w, quotes)
	default:
		err = writeJSON(w, quotes)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "transferService.Export").Str("format", format).Msg("error exporting quotes")
		return fmt.Errorf("export quotes: %w", err)
	}

	s.logger.Debug().Str("func", "transferService.Export").Str("format", format).Int("count", len(quotes)).Msg("quotes exported")
	return nil
}

// writeJSON writes quotes as an array indented by two spaces.
func writeJSON(w io.Writer, quotes []models.Quote) error {
	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeXLSX(w io.Writer, quotes []models.Quote) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), ExportSheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	headers := []string{"Text", "Category", "Author"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ExportSheet, cell, h); err != nil {
			return fmt.Errorf("xlsx header: %w", err)
		}
	}

	for i, q := range quotes {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{q.Text, q.Category, q.Author}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(ExportSheet, "A", "A", 60); err != nil {
		return fmt.Errorf("xlsx column width: %w", err)
	}
	if err := f.SetColWidth(ExportSheet, "B", "C", 20); err != nil {
		return fmt.Errorf("xlsx column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// Import implements TransferService. The payload must be a JSON array;
// anything else yields a *validators.FormatError and leaves the store
// untouched. Every element is appended, see decodeLenient.
func (s *transferService) Import(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, validators.NewFormatError(validators.FormatMalformed, err)
	}

	if err = s.validator.Validate(ctx, data); err != nil {
		s.logger.Debug().Err(err).Str("func", "transferService.Import").Msg("import payload rejected")
		return 0, err
	}

	var elements []json.RawMessage
	if err = json.Unmarshal(data, &elements); err != nil {
		s.logger.Debug().Err(err).Str("func", "transferService.Import").Msg("import payload is not an array")
		return 0, validators.NewFormatError(validators.FormatNotArray, err)
	}

	quotes := make([]models.Quote, len(elements))
	for i, element := range elements {
		quotes[i] = decodeLenient(element)
	}

	if err = s.quotes.Append(ctx, quotes...); err != nil {
		s.logger.Err(err).Str("func", "transferService.Import").Msg("error appending imported quotes")
		return 0, fmt.Errorf("import quotes: %w", err)
	}
	s.metrics.quotesImportedAdd(len(quotes))

	return len(quotes), nil
}

// decodeLenient maps one imported element onto a quote. Fields that are
// missing or not strings stay empty, and a non-object element yields the
// zero quote.
func decodeLenient(element json.RawMessage) models.Quote {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(element, &fields); err != nil {
		return models.Quote{}
	}

	str := func(key string) string {
		var v string
		_ = json.Unmarshal(fields[key], &v)
		return v
	}

	return models.Quote{
		Text:     str("text"),
		Category: str("category"),
		Author:   str("author"),
	}
}
