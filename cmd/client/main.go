// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/gan-datasets/internal/adapter"
	"github.com/MKhiriev/gan-datasets/internal/client"
	"github.com/MKhiriev/gan-datasets/internal/config"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/models"
	"github.com/spf13/afero"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	log := logger.NewClientLogger("gan-datasets-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app := client.NewApp(serverAdapter, afero.NewOsFs(), os.Stdout, cfg.Adapter.Concurrency, log)
	if err = app.Run(ctx, cfg.Command); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
