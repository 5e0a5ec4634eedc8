// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui contains both front ends of the client: the interactive
// employee form built on Bubble Tea, and the console notifier used by
// headless runs.
package tui

import (
	"context"

	"github.com/MKhiriev/go-emp-docs/internal/config"
	"github.com/MKhiriev/go-emp-docs/internal/logger"
	"github.com/MKhiriev/go-emp-docs/internal/service"
	"github.com/MKhiriev/go-emp-docs/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	platform  config.ClientApp
	prefill   config.ClientForm
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		platform:  cfg.App,
		prefill:   cfg.Form,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// EmployeeForm runs the interactive form until the user quits and returns
// the result of the last finished flow.
func (t *TUI) EmployeeForm(ctx context.Context) (models.FlowResult, error) {
	model := NewFormModel(ctx, t.services.EmployeeService, t.platform, t.prefill, t.buildInfo)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.FlowResult{}, runErr
	}

	result, ok := finalModel.(*FormModel)
	if !ok {
		return models.FlowResult{}, tea.ErrProgramKilled
	}

	t.logger.Info().Str("state", result.Result().State.String()).Msg("employee form closed")
	return result.Result(), nil
}
