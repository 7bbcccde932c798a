// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quote-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", "Quote Keeper"},
		{"Version", info.BuildVersion()},
		{"Date", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: %s\n", row[0], valueOrNA(row[1]))
	}

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
