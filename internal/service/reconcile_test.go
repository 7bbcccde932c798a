// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-quote-keeper/models"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name          string
		local         []models.Quote
		remote        []models.Quote
		want          []models.Quote
		wantNew       int
		wantConflicts int
	}{
		{
			name:          "category mismatch takes remote category",
			local:         []models.Quote{q("A", "X")},
			remote:        []models.Quote{q("A", "Y")},
			want:          []models.Quote{q("A", "Y")},
			wantConflicts: 1,
		},
		{
			name:    "empty local gets remote record",
			local:   []models.Quote{},
			remote:  []models.Quote{q("B", "Server")},
			want:    []models.Quote{q("B", "Server")},
			wantNew: 1,
		},
		{
			name:   "equal record is left alone",
			local:  []models.Quote{q("A", "Server")},
			remote: []models.Quote{q("A", "Server")},
			want:   []models.Quote{q("A", "Server")},
		},
		{
			name:   "nothing remote",
			local:  []models.Quote{q("A", "X")},
			remote: nil,
			want:   []models.Quote{q("A", "X")},
		},
		{
			name:          "new records follow locals and keep batch order",
			local:         []models.Quote{q("L1", "X"), q("L2", "Y")},
			remote:        []models.Quote{q("R1", "Server"), q("L2", "Server"), q("R2", "Server")},
			want:          []models.Quote{q("L1", "X"), q("L2", "Server"), q("R1", "Server"), q("R2", "Server")},
			wantNew:       2,
			wantConflicts: 1,
		},
		{
			name:          "repeated text in batch: last record wins",
			local:         nil,
			remote:        []models.Quote{q("A", "X"), q("A", "Y")},
			want:          []models.Quote{q("A", "Y")},
			wantNew:       1,
			wantConflicts: 1,
		},
		{
			name:          "match is case sensitive",
			local:         []models.Quote{q("hello", "X")},
			remote:        []models.Quote{q("Hello", "Server")},
			want:          []models.Quote{q("hello", "X"), q("Hello", "Server")},
			wantNew:       1,
			wantConflicts: 0,
		},
		{
			name:          "only the first local duplicate is matched",
			local:         []models.Quote{q("A", "X"), q("A", "Z")},
			remote:        []models.Quote{q("A", "Y")},
			want:          []models.Quote{q("A", "Y"), q("A", "Z")},
			wantConflicts: 1,
		},
		{
			name:          "author is not part of the match",
			local:         []models.Quote{{Text: "A", Category: "Server", Author: "me"}},
			remote:        []models.Quote{{Text: "A", Category: "Server", Author: "User 1"}},
			want:          []models.Quote{{Text: "A", Category: "Server", Author: "me"}},
			wantNew:       0,
			wantConflicts: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, newCount, conflictCount := Reconcile(tt.local, tt.remote)

			assert.Equal(t, tt.want, merged)
			assert.Equal(t, tt.wantNew, newCount, "new")
			assert.Equal(t, tt.wantConflicts, conflictCount, "conflicts")
		})
	}
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	local := []models.Quote{q("A", "X"), q("B", "Y")}
	remote := []models.Quote{q("A", "Server"), q("C", "Server")}

	localCopy := models.CloneQuotes(local)
	remoteCopy := models.CloneQuotes(remote)

	_, _, _ = Reconcile(local, remote)

	assert.Equal(t, localCopy, local)
	assert.Equal(t, remoteCopy, remote)
}

func TestReconcile_Idempotent(t *testing.T) {
	local := models.SeedQuotes()
	remote := []models.Quote{q("A", "Server"), q(local[0].Text, "Server"), q("B", "Server")}

	once, _, _ := Reconcile(local, remote)
	twice, newCount, conflictCount := Reconcile(once, remote)

	assert.Equal(t, once, twice)
	assert.Zero(t, newCount)
	assert.Zero(t, conflictCount)
}

func TestReconcile_EveryRemoteTextOnce(t *testing.T) {
	local := []models.Quote{q("x", "Life")}
	remote := []models.Quote{q("a", "Server"), q("b", "Server"), q("a", "Other"), q("x", "Server")}

	merged, _, _ := Reconcile(local, remote)

	counts := make(map[string]int)
	for _, m := range merged {
		counts[m.Text]++
	}
	for _, r := range remote {
		assert.Equal(t, 1, counts[r.Text], "text %q", r.Text)
	}

	// last record for "a" wins
	for _, m := range merged {
		if m.Text == "a" {
			assert.Equal(t, "Other", m.Category)
		}
	}
}
