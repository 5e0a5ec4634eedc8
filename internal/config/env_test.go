// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_APPLICATION_ID": "100",
		"APP_SESSION_ID":     "123456789",
		"APP_PAGE_ID":        "4",
		"APP_HEADLESS":       "true",
		"APP_LOG_FILE":       "/tmp/client.log",

		"ADAPTER_PROCESS_URL":          "https://apex.local/ords/wwv_flow.ajax",
		"ADAPTER_PROCESS_NAME":         "SAVE_DATA_V3",
		"ADAPTER_UPLOAD_ADDRESS":       "172.16.250.162:9001",
		"ADAPTER_UPLOAD_PATH":          "/rest/SaveDocument",
		"ADAPTER_DOC_TYPE":             "HR_DOC",
		"ADAPTER_APP_ID_HEADER_SOURCE": "application",
		"ADAPTER_REQUEST_TIMEOUT":      "15s",

		"FORM_NAME":      "KING",
		"FORM_HIRE_DATE": "17-11-1981",
		"FORM_SALARY":    "5000",
		"FORM_FILE":      "/tmp/contract.pdf",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "100", cfg.App.ApplicationID)
	assert.Equal(t, "123456789", cfg.App.SessionID)
	assert.Equal(t, "4", cfg.App.PageID)
	assert.True(t, cfg.App.Headless)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)

	assert.Equal(t, "https://apex.local/ords/wwv_flow.ajax", cfg.Adapter.ProcessURL)
	assert.Equal(t, "SAVE_DATA_V3", cfg.Adapter.ProcessName)
	assert.Equal(t, "172.16.250.162:9001", cfg.Adapter.UploadAddress)
	assert.Equal(t, "/rest/SaveDocument", cfg.Adapter.UploadPath)
	assert.Equal(t, "HR_DOC", cfg.Adapter.DocType)
	assert.Equal(t, AppIDFromApplication, cfg.Adapter.AppIDHeaderSource)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "KING", cfg.Form.Name)
	assert.Equal(t, "17-11-1981", cfg.Form.HireDate)
	assert.Equal(t, "5000", cfg.Form.Salary)
	assert.Equal(t, "/tmp/contract.pdf", cfg.Form.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_SESSION_ID":      "42",
		"ADAPTER_PROCESS_URL": "http://localhost:8080/ords/wwv_flow.ajax",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "42", cfg.App.SessionID)
	assert.Empty(t, cfg.App.ApplicationID)
	assert.False(t, cfg.App.Headless)
	assert.Equal(t, "http://localhost:8080/ords/wwv_flow.ajax", cfg.Adapter.ProcessURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_HEADLESS": "maybe",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}
