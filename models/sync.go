// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// SyncReport summarises one reconciliation run against the remote collection.
type SyncReport struct {
	// New is the number of remote quotes appended to the local list.
	New int `json:"new"`

	// Conflicts is the number of local quotes whose category was overwritten
	// by the remote value.
	Conflicts int `json:"conflicts"`

	// Err is set when the run failed. A failed run never changes local state.
	Err error `json:"-"`

	// StartedAt is the moment the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the run took, fetch included.
	Duration time.Duration `json:"duration"`
}

// Failed reports whether the run ended with an error.
func (r SyncReport) Failed() bool {
	return r.Err != nil
}

// Changed reports whether the run modified the local list.
func (r SyncReport) Changed() bool {
	return r.New > 0 || r.Conflicts > 0
}

// Summary returns the status line for the run and whether it should be shown
// to the user at all. A successful run that changed nothing is silent.
func (r SyncReport) Summary() (string, bool) {
	if r.Failed() {
		return "Error syncing with server", true
	}
	if !r.Changed() {
		return "", false
	}

	return fmt.Sprintf("Sync complete: %d new quotes, %d conflicts resolved.", r.New, r.Conflicts), true
}
