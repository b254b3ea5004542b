// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
	"github.com/MKhiriev/go-time-keeper/internal/client"
	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/tui"
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(1)
	}

	log := logger.NewFileLogger("time-keeper-client", filepath.Join(filepath.Dir(cfg.SessionFile), "client.log"))

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	app, err := client.NewApp(serverAdapter, cfg.SessionFile, tui.New(serverAdapter, log), os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
