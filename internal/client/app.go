// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-emp-docs/internal/config"
	"github.com/MKhiriev/go-emp-docs/internal/logger"
	"github.com/MKhiriev/go-emp-docs/internal/service"
	"github.com/MKhiriev/go-emp-docs/internal/tui"
	"github.com/MKhiriev/go-emp-docs/models"
)

// ErrFlowFailed is returned by a headless run whose flow did not finish in
// the done state. The flow error is wrapped next to it.
var ErrFlowFailed = errors.New("employee flow failed")

var errNoUI = errors.New("interactive mode requires a ui")

type App struct {
	services *service.ClientServices
	ui       *tui.TUI

	headless bool
	form     models.EmployeeForm

	logger *logger.Logger
}

// NewApp wires the client runtime. ui may be nil for headless runs.
func NewApp(services *service.ClientServices, ui *tui.TUI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if !cfg.App.Headless && ui == nil {
		return nil, errNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		headless: cfg.App.Headless,
		form: models.EmployeeForm{
			Name:          cfg.Form.Name,
			HireDate:      cfg.Form.HireDate,
			Salary:        cfg.Form.Salary,
			ApplicationID: cfg.App.ApplicationID,
			SessionID:     cfg.App.SessionID,
			File:          cfg.Form.File,
		},
		logger: logger,
	}, nil
}

// Run starts the interactive form or, in headless mode, a single flow. It
// stops early on SIGINT, SIGTERM or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if a.headless {
		return a.runHeadless(ctx)
	}
	return a.runInteractive(ctx)
}

func (a *App) runHeadless(ctx context.Context) error {
	a.logger.Info().Str("file", a.form.File).Msg("headless run started")

	result := a.services.EmployeeService.Save(ctx, a.form)

	a.logger.Info().
		Str("state", result.State.String()).
		Str("doc_id", result.DocumentID.String()).
		Str("notice", result.Notice.Text).
		Msg("headless run finished")

	if !result.OK() {
		return fmt.Errorf("%w: %w", ErrFlowFailed, result.Err)
	}
	return nil
}

func (a *App) runInteractive(ctx context.Context) error {
	result, err := a.ui.EmployeeForm(ctx)
	if err != nil {
		return fmt.Errorf("employee form: %w", err)
	}

	a.logger.Info().Str("state", result.State.String()).Msg("interactive run finished")
	return nil
}
