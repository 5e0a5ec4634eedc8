// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-emp-docs/internal/adapter"
	"github.com/MKhiriev/go-emp-docs/internal/client"
	"github.com/MKhiriev/go-emp-docs/internal/config"
	"github.com/MKhiriev/go-emp-docs/internal/logger"
	"github.com/MKhiriev/go-emp-docs/internal/service"
	"github.com/MKhiriev/go-emp-docs/internal/store"
	"github.com/MKhiriev/go-emp-docs/internal/tui"
	"github.com/MKhiriev/go-emp-docs/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("emp-docs-client").Fatal().Err(err).Msg("error getting configs")
	}

	var (
		log      *logger.Logger
		notifier service.Notifier
	)
	if cfg.App.Headless {
		log = logger.NewLogger("emp-docs-client")
		notifier = tui.NewConsoleNotifier(os.Stdout)
	} else {
		log = logger.NewClientLogger("emp-docs-client", cfg.App.LogFile)
	}

	platformAdapter, err := adapter.NewHTTPPlatformAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create platform adapter")
	}

	documents := store.NewLocalDocumentSource(log)

	services, err := service.NewClientServices(platformAdapter, documents, notifier, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	var ui *tui.TUI
	if !cfg.App.Headless {
		ui, err = tui.New(services, cfg, buildInfo, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
	}

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		if errors.Is(err, client.ErrFlowFailed) {
			log.Error().Err(err).Msg("flow failed")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("client run error")
	}
}
