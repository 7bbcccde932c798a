// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (SQLite file or postgres:// URL)
//	-c/-config json or yaml file path with configs
//	-remote-url remote quote collection URL
//	-request-timeout outbound request timeout (e.g., "15s")
//	-fetch-limit number of remote records fetched per sync
//	-map-author map the remote user id into the quote author
//	-sync-interval period between sync runs (e.g., "30s")
//	-notify-duration how long status messages stay visible (e.g., "5s")
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//
// Unknown flags and trailing positional arguments are reported as errors.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var configPath string
	var remoteURL string
	var requestTimeout time.Duration
	var fetchLimit int
	var mapAuthor bool
	var syncInterval time.Duration
	var notifyDuration time.Duration
	var logFile string
	var logLevel string

	fs := flag.NewFlagSet("quotes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&remoteURL, "remote-url", "", "Remote quote collection URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	fs.IntVar(&fetchLimit, "fetch-limit", 0, "Remote records fetched per sync")
	fs.BoolVar(&mapAuthor, "map-author", false, "Map remote user id into the quote author")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Period between sync runs (e.g., 30s)")
	fs.DurationVar(&notifyDuration, "notify-duration", 0, "Status message lifetime (e.g., 5s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected arguments %v", fs.Args())
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			RemoteURL:      remoteURL,
			RequestTimeout: requestTimeout,
			FetchLimit:     fetchLimit,
			MapAuthor:      mapAuthor,
		},
		Workers: Workers{
			SyncInterval:   syncInterval,
			NotifyDuration: notifyDuration,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
