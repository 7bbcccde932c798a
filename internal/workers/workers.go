// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker on its own goroutine and blocks until all of them
// have returned. Nil workers are skipped.
func (w *Workers) Run(ctx context.Context) {
	var g errgroup.Group
	for _, worker := range w.workers {
		if worker == nil {
			continue
		}
		g.Go(func() error {
			worker.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()
}
