// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/gan-datasets/internal/config"
	"github.com/MKhiriev/gan-datasets/internal/handler"
	"github.com/MKhiriev/gan-datasets/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down
// gracefully.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx, s.httpServer.RunServer)
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		ctx := context.Background()
		if s.shutdownTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
			defer cancel()
		}

		s.httpServer.Shutdown(ctx)
	})
}

// run starts serve and blocks until it fails or ctx is done.
func (s *server) run(ctx context.Context, serve func() error) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	served := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		served <- serve()
	}()

	select {
	case err := <-served:
		// the listener failed before any shutdown was requested
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutdown requested, draining connections")
	s.Shutdown()

	if err := <-served; err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
