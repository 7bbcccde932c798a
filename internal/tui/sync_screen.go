// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/spinner"

// syncModel shows a spinner while a sync started from the keyboard runs.
type syncModel struct {
	spinner spinner.Model
	running bool
}

func newSyncModel() syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{spinner: s}
}

func (m syncModel) View() string {
	if !m.running {
		return ""
	}
	return m.spinner.View() + " Syncing..."
}
