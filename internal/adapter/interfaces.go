// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the two remote
// collaborators of the client: the platform that runs the save process and
// the document service that stores uploaded files.
//
// [NewHTTPPlatformAdapter] is the resty-based implementation of both
// contracts. Transport outcomes are reported with the sentinel errors in
// errors.go so callers can use [errors.Is] and [errors.As] without knowing
// about HTTP: [ErrNetwork] when no response arrived at all, [*StatusError]
// when a response arrived with an unexpected status.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-emp-docs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/platform_adapter_mock.go -package=mock

// ProcessAdapter invokes the named server-side process that creates the
// employee record.
type ProcessAdapter interface {
	// SaveEmployee sends the form snapshot together with the metadata of the
	// selected file and returns the decoded process response. A non-success
	// status in the response is NOT an error at this level; errors are
	// reserved for transport failures and undecodable responses.
	SaveEmployee(ctx context.Context, form models.EmployeeForm, file models.DocumentFile) (models.SaveResponse, error)
}

// DocumentAdapter sends document content to the document endpoint.
type DocumentAdapter interface {
	// UploadDocument POSTs req.Content as a raw octet stream with the
	// identifying headers. It returns nil only on HTTP 200.
	UploadDocument(ctx context.Context, req models.UploadRequest) error
}

// PlatformAdapter combines both collaborators.
type PlatformAdapter interface {
	ProcessAdapter
	DocumentAdapter
}
