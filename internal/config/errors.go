// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, missing process URL or upload address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates missing platform context values.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAppIDHeaderSource indicates an unknown p_app_id source.
	ErrInvalidAppIDHeaderSource = errors.New("invalid app id header source")
)
