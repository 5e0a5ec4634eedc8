// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate is a no-op for the raw merged config; the client view carries the
// real rules.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.ProcessURL) == "" {
		return fmt.Errorf("%w: process url is empty", ErrInvalidAdapterConfigs)
	}

	if strings.TrimSpace(cfg.Adapter.UploadAddress) == "" {
		return fmt.Errorf("%w: upload address is empty", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.ProcessName == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Adapter.AppIDHeaderSource {
	case AppIDFromToken, AppIDFromApplication:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAppIDHeaderSource, cfg.Adapter.AppIDHeaderSource)
	}

	if cfg.App.ApplicationID == "" || cfg.App.SessionID == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
