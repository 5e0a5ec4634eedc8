// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds platform context and runtime switches.
type ClientApp struct {
	ApplicationID string
	SessionID     string
	PageID        string
	Headless      bool
	LogFile       string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	ProcessURL        string
	ProcessName       string
	UploadAddress     string
	UploadPath        string
	DocType           string
	AppIDHeaderSource string
	RequestTimeout    time.Duration
}

// ClientForm holds prefilled employee values.
type ClientForm struct {
	Name     string
	HireDate string
	Salary   string
	File     string
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Form    ClientForm
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			ApplicationID: cfg.App.ApplicationID,
			SessionID:     cfg.App.SessionID,
			PageID:        cfg.App.PageID,
			Headless:      cfg.App.Headless,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			ProcessURL:        cfg.Adapter.ProcessURL,
			ProcessName:       cfg.Adapter.ProcessName,
			UploadAddress:     cfg.Adapter.UploadAddress,
			UploadPath:        cfg.Adapter.UploadPath,
			DocType:           cfg.Adapter.DocType,
			AppIDHeaderSource: cfg.Adapter.AppIDHeaderSource,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
		},
		Form: ClientForm{
			Name:     cfg.Form.Name,
			HireDate: cfg.Form.HireDate,
			Salary:   cfg.Form.Salary,
			File:     cfg.Form.File,
		},
	}
}
