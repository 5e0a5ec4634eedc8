// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		ApplicationID string `json:"application_id"`
		SessionID     string `json:"session_id"`
		PageID        string `json:"page_id"`
		Headless      bool   `json:"headless"`
		LogFile       string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		ProcessURL        string   `json:"process_url"`
		ProcessName       string   `json:"process_name"`
		UploadAddress     string   `json:"upload_address"`
		UploadPath        string   `json:"upload_path"`
		DocType           string   `json:"doc_type"`
		AppIDHeaderSource string   `json:"app_id_header_source"`
		RequestTimeout    Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Form struct {
		Name     string `json:"name"`
		HireDate string `json:"hire_date"`
		Salary   string `json:"salary"`
		File     string `json:"file"`
	} `json:"form,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ApplicationID: jsonCfg.App.ApplicationID,
			SessionID:     jsonCfg.App.SessionID,
			PageID:        jsonCfg.App.PageID,
			Headless:      jsonCfg.App.Headless,
			LogFile:       jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			ProcessURL:        jsonCfg.Adapter.ProcessURL,
			ProcessName:       jsonCfg.Adapter.ProcessName,
			UploadAddress:     jsonCfg.Adapter.UploadAddress,
			UploadPath:        jsonCfg.Adapter.UploadPath,
			DocType:           jsonCfg.Adapter.DocType,
			AppIDHeaderSource: jsonCfg.Adapter.AppIDHeaderSource,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Form: Form{
			Name:     jsonCfg.Form.Name,
			HireDate: jsonCfg.Form.HireDate,
			Salary:   jsonCfg.Form.Salary,
			File:     jsonCfg.Form.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
