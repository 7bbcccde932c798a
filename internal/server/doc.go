// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the quote keeper API server.
//
// It runs the HTTP server and the background workers side by side, handles
// stop signals and shuts everything down gracefully.
package server
