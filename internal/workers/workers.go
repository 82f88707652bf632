// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	limit   int
}

// New returns a pool that runs at most limit workers at a time. A limit
// below one means no limit.
func New(limit int, workers ...Worker) *Workers {
	return &Workers{workers: workers, limit: limit}
}

func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker and waits for all of them. A failing worker does
// not stop the others; the errors are joined in the order the workers were
// added. Workers that have not started when ctx is canceled are skipped
// and report ctx.Err().
func (w *Workers) Run(ctx context.Context) error {
	g := new(errgroup.Group)
	if w.limit > 0 {
		g.SetLimit(w.limit)
	}

	errs := make([]error, len(w.workers))
	for i, worker := range w.workers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = worker.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
