// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/handler"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/server"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/internal/store"
	"github.com/MKhiriev/go-time-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("time-keeper-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	admin := models.AdminBootstrap{
		Username: cfg.App.Admin.Username,
		Password: cfg.App.Admin.Password,
		Email:    cfg.App.Admin.Email,
	}
	if err = services.AuthService.EnsureAdmin(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("error ensuring admin account")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
