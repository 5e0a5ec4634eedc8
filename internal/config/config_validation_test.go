// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	cfg := newClientConfig(defaultConfig())
	cfg.Adapter.ProcessURL = "http://localhost:8080/ords/wwv_flow.ajax"
	cfg.Adapter.UploadAddress = "localhost:9001"
	cfg.App.ApplicationID = "100"
	cfg.App.SessionID = "1234"
	return cfg
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *ClientConfig) {}},
		{
			name:    "no process url",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.ProcessURL = " " },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "no upload address",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.UploadAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown app id source",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.AppIDHeaderSource = "flow" },
			wantErr: ErrInvalidAppIDHeaderSource,
		},
		{
			name:    "application source is valid",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.AppIDHeaderSource = AppIDFromApplication },
			wantErr: nil,
		},
		{
			name:    "no session",
			mutate:  func(cfg *ClientConfig) { cfg.App.SessionID = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "no application",
			mutate:  func(cfg *ClientConfig) { cfg.App.ApplicationID = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_MapsAllFields(t *testing.T) {
	src := &StructuredConfig{
		App:     App{ApplicationID: "1", SessionID: "2", PageID: "4", Headless: true, LogFile: "l"},
		Adapter: Adapter{ProcessURL: "p", UploadAddress: "u", DocType: "d"},
		Form:    Form{Name: "n", HireDate: "h", Salary: "s", File: "f"},
	}

	cfg := newClientConfig(src)

	assert.Equal(t, ClientApp{ApplicationID: "1", SessionID: "2", PageID: "4", Headless: true, LogFile: "l"}, cfg.App)
	assert.Equal(t, "p", cfg.Adapter.ProcessURL)
	assert.Equal(t, "u", cfg.Adapter.UploadAddress)
	assert.Equal(t, "d", cfg.Adapter.DocType)
	assert.Equal(t, ClientForm{Name: "n", HireDate: "h", Salary: "s", File: "f"}, cfg.Form)
}
