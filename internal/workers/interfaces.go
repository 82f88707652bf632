// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs independent units of work with bounded concurrency.
// The uploader client uses it to send several data set files at once.
package workers

import "context"

// Worker is a single unit of work. Run blocks until the work is done or
// ctx is canceled.
//
//	type uploadWorker struct{ path string }
//
//	func (w *uploadWorker) Run(ctx context.Context) error {
//	    // upload w.path
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
