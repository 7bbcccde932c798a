// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/presenter"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
	"github.com/MKhiriev/go-quote-keeper/models"
)

const stdioPath = "-"

func (c *cli) randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random quote from the current category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			display, err := c.services.QuoteService.Random(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			cmd.Println(display.Text)
			return nil
		},
	}
}

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text> <category> [author]",
		Short: "Add a quote and announce it to the remote collection",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quote := models.Quote{Text: args[0], Category: args[1]}
			if len(args) == 3 {
				quote.Author = args[2]
			}
			if _, err := c.services.QuoteService.Add(cmd.Context(), quote); err != nil {
				return friendly(err)
			}
			cmd.Println(app.MsgQuoteAdded)
			return nil
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored quote in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for i, quote := range c.services.QuoteService.List(cmd.Context()) {
				if i > 0 {
					cmd.Println()
				}
				cmd.Println(presenter.Render(quote))
			}
			return nil
		},
	}
}

func (c *cli) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category options; the active one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := c.services.Catalog.CurrentFilter(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			for _, option := range service.CategoryOptions(c.services.Catalog) {
				mark := " "
				if option == current {
					mark = "*"
				}
				label := option
				if option == models.FilterAll {
					label = app.MsgAllCategories
				}
				cmd.Printf("%s %s\n", mark, label)
			}
			return nil
		},
	}
}

func (c *cli) filterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter [category]",
		Short: "Show or set the category filter (\"all\" selects every quote)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := c.services.Catalog.SetFilter(cmd.Context(), args[0]); err != nil {
					return friendly(err)
				}
			}
			current, err := c.services.Catalog.CurrentFilter(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			cmd.Println(current)
			return nil
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every quote to a JSON or XLSX file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chosen, err := service.ParseExportFormat(format)
			if err != nil {
				return friendly(err)
			}
			if output == "" {
				output = service.ExportFileName(chosen)
			}

			var buf bytes.Buffer
			if err = c.services.TransferService.Export(cmd.Context(), &buf, chosen); err != nil {
				return friendly(err)
			}

			if output == stdioPath {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err = os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			cmd.Println(app.MsgQuotesExported)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", service.FormatJSON, "export format: json or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, \"-\" for stdout (default quotes.<format>)")
	return cmd
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append the quotes of a JSON array file (\"-\" reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != stdioPath {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("%s: %w", app.MsgErrorReadingJSON, err)
				}
				defer f.Close()
				r = f
			}

			n, err := c.services.TransferService.Import(cmd.Context(), r)
			if err != nil {
				return friendly(err)
			}
			cmd.Printf("%s (%d)\n", app.MsgQuotesImported, n)
			return nil
		},
	}
}

func (c *cli) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the local quotes with the remote collection once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := c.services.SyncService.Sync(cmd.Context())
			if report.Failed() {
				return friendly(report.Err)
			}
			if message, ok := report.Summary(); ok {
				cmd.Println(message)
				return nil
			}
			cmd.Println(app.MsgSyncUpToDate)
			return nil
		},
	}
}

// friendly prefixes err with the message a user of the other front-ends
// would see for it.
func friendly(err error) error {
	var formatErr *validators.FormatError
	switch {
	case errors.Is(err, validators.ErrValidation):
		return fmt.Errorf("%s: %w", app.MsgFillBothFields, err)
	case errors.As(err, &formatErr):
		if formatErr.Reason == validators.FormatNotArray {
			return fmt.Errorf("%s: %w", app.MsgInvalidJSONFormat, err)
		}
		return fmt.Errorf("%s: %w", app.MsgErrorReadingJSON, err)
	case errors.Is(err, service.ErrSyncInProgress):
		return fmt.Errorf("%s: %w", app.MsgSyncInProgress, err)
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%s: %w", app.MsgSyncFailed, err)
	case errors.Is(err, service.ErrUnsupportedExportFormat):
		return fmt.Errorf("%s: %w", app.MsgUnsupportedExportFormat, err)
	}
	return err
}
