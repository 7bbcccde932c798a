// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	dsn        string
}

// configArgs renders the options in the flag syntax understood by the config
// loader. Unset options are left to the environment and config file.
func (o rootOptions) configArgs() []string {
	var args []string
	if o.configPath != "" {
		args = append(args, "-c", o.configPath)
	}
	if o.dsn != "" {
		args = append(args, "-d", o.dsn)
	}
	return args
}

type opener func(ctx context.Context, opts rootOptions) (*service.Services, func(), error)

type cli struct {
	open     opener
	opts     rootOptions
	services *service.Services
	release  func()
}

// run executes one quotectl invocation. Remote posts started by the command
// are awaited and storage is released before it returns.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, open opener) error {
	c := &cli{open: open}
	defer c.shutdown()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "quotectl",
		Short:        "Manage the local quote collection",
		Version:      models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			services, release, err := c.open(cmd.Context(), c.opts)
			if err != nil {
				return err
			}
			c.services, c.release = services, release
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&c.opts.configPath, "config", "c", "", "config file path (JSON or YAML)")
	root.PersistentFlags().StringVarP(&c.opts.dsn, "db", "d", "", "database DSN (SQLite file or postgres:// URL)")

	root.AddCommand(
		c.randomCmd(),
		c.addCmd(),
		c.listCmd(),
		c.categoriesCmd(),
		c.filterCmd(),
		c.exportCmd(),
		c.importCmd(),
		c.syncCmd(),
	)
	return root
}

func (c *cli) shutdown() {
	if c.services != nil && c.services.QuoteService != nil {
		c.services.QuoteService.Wait()
	}
	if c.release != nil {
		c.release()
	}
}
