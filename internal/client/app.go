// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/gan-datasets/internal/adapter"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/workers"
	"github.com/MKhiriev/gan-datasets/models"
	"github.com/spf13/afero"
)

type App struct {
	adapter     adapter.ServerAdapter
	fs          afero.Fs
	concurrency int

	// outMu serializes writes of concurrent uploads to out.
	outMu sync.Mutex
	out   io.Writer

	logger *logger.Logger
}

// NewApp creates the uploader application. Files named on the command line
// are read from fs; results are printed to out.
func NewApp(serverAdapter adapter.ServerAdapter, fs afero.Fs, out io.Writer, concurrency int, logger *logger.Logger) *App {
	return &App{
		adapter:     serverAdapter,
		fs:          fs,
		concurrency: concurrency,
		out:         out,
		logger:      logger,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given\n%s", ErrUnknownCommand, usage)
	}

	command, args := args[0], args[1:]
	switch command {
	case "upload":
		return a.upload(ctx, args)
	case "generate":
		return a.generate(ctx, args)
	case "version":
		return a.version(ctx, args)
	case "uploads":
		return a.listUploads(ctx, args)
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, command, usage)
	}
}

func (a *App) upload(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: upload needs a data set kind and at least one file", ErrBadArguments)
	}
	kind, err := models.ParseDataSetKind(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadArguments, err)
	}

	pool := workers.New(a.concurrency)
	for _, path := range args[1:] {
		pool.Add(workers.WorkerFunc(func(ctx context.Context) error {
			return a.uploadFile(ctx, kind, path)
		}))
	}

	return pool.Run(ctx)
}

func (a *App) uploadFile(ctx context.Context, kind models.DataSetKind, path string) error {
	f, err := a.fs.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	msg, err := a.adapter.UploadDataSet(ctx, kind, filepath.Base(path), f)
	if err != nil {
		a.logger.Err(err).Str("path", path).Msg("upload failed")
		return fmt.Errorf("%s: %w", path, err)
	}

	a.println(path + ": " + msg)
	return nil
}

func (a *App) generate(ctx context.Context, args []string) error {
	var (
		msg string
		err error
	)

	switch {
	case len(args) == 0:
		msg, err = a.adapter.GenerateImage(ctx)
	case len(args) == 1 && args[0] == models.UserDataSet.String():
		msg, err = a.adapter.GenerateImageFromUserDataSets(ctx)
	default:
		return fmt.Errorf("%w: generate takes no argument or %q", ErrBadArguments, models.UserDataSet)
	}
	if err != nil {
		return err
	}

	a.println(msg)
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: version takes no arguments", ErrBadArguments)
	}

	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	a.println(v)
	return nil
}

func (a *App) listUploads(ctx context.Context, args []string) error {
	var kind *models.DataSetKind
	switch len(args) {
	case 0:
	case 1:
		parsed, err := models.ParseDataSetKind(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBadArguments, err)
		}
		kind = &parsed
	default:
		return fmt.Errorf("%w: uploads takes at most one data set kind", ErrBadArguments)
	}

	uploads, err := a.adapter.ListUploads(ctx, kind)
	if err != nil {
		return err
	}

	a.outMu.Lock()
	defer a.outMu.Unlock()

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tFILE\tSIZE\tSHA256\tCREATED")
	for _, u := range uploads {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", u.Kind, u.FileName, u.Size, u.SHA256, u.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func (a *App) println(line string) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, line)
}
