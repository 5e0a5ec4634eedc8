// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store gives the client read access to the document selected by
// the user. Files are never written or modified.
package store

import (
	"context"

	"github.com/MKhiriev/go-emp-docs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentSource resolves a selected file path into document metadata and
// content.
type DocumentSource interface {
	// Stat returns the base name, MIME type and size of the file at path.
	// Returns [ErrFileNotSelected] for an empty path and [ErrFileNotFound]
	// when nothing usable exists at path.
	Stat(ctx context.Context, path string) (models.DocumentFile, error)

	// ReadAll reads the whole file at path. It fails with the same sentinels
	// as Stat.
	ReadAll(ctx context.Context, path string) ([]byte, error)
}
