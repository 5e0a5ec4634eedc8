// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-emp-docs/internal/adapter"
	"github.com/MKhiriev/go-emp-docs/internal/config"
	"github.com/MKhiriev/go-emp-docs/internal/logger"
	"github.com/MKhiriev/go-emp-docs/internal/store"
)

type ClientServices struct {
	EmployeeService EmployeeService
}

func NewClientServices(platform adapter.PlatformAdapter, docs store.DocumentSource, notifier Notifier, cfg config.ClientAdapter, logger *logger.Logger) (*ClientServices, error) {
	employeeSvc, err := NewEmployeeService(platform, docs, notifier, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		EmployeeService: employeeSvc,
	}, nil
}
