// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-quote-keeper/models"

// Reconcile merges a remote batch into the local list and returns the merged
// list with the number of appended and overwritten records. Neither input is
// modified.
//
// Each remote record is matched by exact Text against the merged list built
// so far, which includes remote records appended earlier in the same batch.
// A match with a different category takes the remote category. Unmatched
// records are appended after all local ones, in batch order.
func Reconcile(local, remote []models.Quote) ([]models.Quote, int, int) {
	merged := make([]models.Quote, len(local), len(local)+len(remote))
	copy(merged, local)

	// first index of every text seen in merged
	index := make(map[string]int, len(merged)+len(remote))
	for i, q := range merged {
		if _, ok := index[q.Text]; !ok {
			index[q.Text] = i
		}
	}

	var newCount, conflictCount int
	for _, r := range remote {
		i, ok := index[r.Text]
		if !ok {
			index[r.Text] = len(merged)
			merged = append(merged, r)
			newCount++
			continue
		}

		if merged[i].Category != r.Category {
			merged[i].Category = r.Category
			conflictCount++
		}
	}

	return merged, newCount, conflictCount
}
