// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Recognised values of Adapter.AppIDHeaderSource.
const (
	// AppIDFromToken sends the cs token returned by the save process as the
	// p_app_id upload header, falling back to the application id when the
	// process returned no token.
	AppIDFromToken = "token"

	// AppIDFromApplication always sends the application id as p_app_id.
	AppIDFromApplication = "application"
)

// StructuredConfig is the top-level configuration container for the
// go-emp-docs client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds platform context values and client runtime switches.
	App App `envPrefix:"APP_"`

	// Adapter holds the addresses and options of the two remote
	// collaborators: the save process and the document endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Form holds prefilled employee values. In headless mode these are the
	// values that get submitted.
	Form Form `envPrefix:"FORM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds platform context values and client runtime switches.
type App struct {
	// ApplicationID is the platform application id (p_flow_id, x04).
	// Env: APP_APPLICATION_ID
	ApplicationID string `env:"APPLICATION_ID"`

	// SessionID is the platform session id (p_instance, x05, p_session_id).
	// Env: APP_SESSION_ID
	SessionID string `env:"SESSION_ID"`

	// PageID is the page the form lives on (p_flow_step_id).
	// Env: APP_PAGE_ID
	PageID string `env:"PAGE_ID"`

	// Headless runs the flow once with Form values instead of starting the
	// terminal UI.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`

	// LogFile is the file the client logger appends to. Empty means a "logs"
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// ProcessURL is the full URL of the platform AJAX endpoint that executes
	// application processes (e.g. "https://apex.local/ords/wwv_flow.ajax").
	// Env: ADAPTER_PROCESS_URL
	ProcessURL string `env:"PROCESS_URL"`

	// ProcessName is the application process invoked on save.
	// Env: ADAPTER_PROCESS_NAME
	ProcessName string `env:"PROCESS_NAME"`

	// UploadAddress is the document service address, either "host:port" or a
	// URL with scheme.
	// Env: ADAPTER_UPLOAD_ADDRESS
	UploadAddress string `env:"UPLOAD_ADDRESS"`

	// UploadPath is the path of the document endpoint on UploadAddress.
	// Env: ADAPTER_UPLOAD_PATH
	UploadPath string `env:"UPLOAD_PATH"`

	// DocType is the X-Doc-Type tag sent with every upload.
	// Env: ADAPTER_DOC_TYPE
	DocType string `env:"DOC_TYPE"`

	// AppIDHeaderSource selects what is sent as p_app_id: "token" or
	// "application".
	// Env: ADAPTER_APP_ID_HEADER_SOURCE
	AppIDHeaderSource string `env:"APP_ID_HEADER_SOURCE"`

	// RequestTimeout bounds each outbound request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Form holds prefilled employee form values.
type Form struct {
	// Env: FORM_NAME
	Name string `env:"NAME"`
	// Env: FORM_HIRE_DATE
	HireDate string `env:"HIRE_DATE"`
	// Env: FORM_SALARY
	Salary string `env:"SALARY"`
	// File is the path of the document to upload.
	// Env: FORM_FILE
	File string `env:"FILE"`
}

// Defaults applied after every other source.
const (
	DefaultProcessName       = "SAVE_DATA_V2"
	DefaultUploadPath        = "/rest_token/SaveDocumentV2"
	DefaultDocType           = "EMP_DOC"
	DefaultAppIDHeaderSource = AppIDFromToken
	DefaultRequestTimeout    = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			ProcessName:       DefaultProcessName,
			UploadPath:        DefaultUploadPath,
			DocType:           DefaultDocType,
			AppIDHeaderSource: DefaultAppIDHeaderSource,
			RequestTimeout:    DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from environment
// variables, command-line flags, the JSON file (path resolved from the first
// two sources) and defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
