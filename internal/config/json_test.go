// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"application_id": "100",
			"session_id": "9876",
			"page_id": "4",
			"headless": true
		},
		"adapter": {
			"process_url": "https://apex.local/ords/wwv_flow.ajax",
			"upload_address": "http://docs.local:9001",
			"app_id_header_source": "token",
			"request_timeout": "45s"
		},
		"form": {
			"name": "ADAMS",
			"hire_date": "23-05-1987",
			"salary": "1100",
			"file": "/srv/adams.pdf"
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "100", cfg.App.ApplicationID)
	assert.Equal(t, "9876", cfg.App.SessionID)
	assert.Equal(t, "4", cfg.App.PageID)
	assert.True(t, cfg.App.Headless)

	assert.Equal(t, "https://apex.local/ords/wwv_flow.ajax", cfg.Adapter.ProcessURL)
	assert.Equal(t, "http://docs.local:9001", cfg.Adapter.UploadAddress)
	assert.Equal(t, AppIDFromToken, cfg.Adapter.AppIDHeaderSource)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Adapter.ProcessName)

	assert.Equal(t, "ADAMS", cfg.Form.Name)
	assert.Equal(t, "/srv/adams.pdf", cfg.Form.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": `), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(30 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"30s"`, string(b))
}
