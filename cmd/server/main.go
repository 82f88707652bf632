// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/gan-datasets/internal/config"
	"github.com/MKhiriev/gan-datasets/internal/handler"
	"github.com/MKhiriev/gan-datasets/internal/logger"
	"github.com/MKhiriev/gan-datasets/internal/server"
	"github.com/MKhiriev/gan-datasets/internal/service"
	"github.com/MKhiriev/gan-datasets/internal/store"
	"github.com/MKhiriev/gan-datasets/models"
	"github.com/spf13/afero"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("gan-datasets-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	files := cfg.Storage.Files
	if files.DataSetDir(models.UserDataSet) == files.DataSetDir(models.ImageDataSet) {
		log.Warn().
			Str("dir", files.DataSetDir(models.UserDataSet)).
			Msg("user and image data sets share one directory; same-name uploads of both kinds overwrite each other")
	}

	fs := afero.NewOsFs()

	storages, err := store.NewStorages(context.Background(), cfg.Storage, fs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg, fs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}
}
