// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the save-and-upload flow on top of the
// transport adapters and the local document source.
//
// The flow has two strictly sequential steps. [EmployeeService.Submit] calls
// the platform process and returns a [models.Submission]; only a successful
// submission can be handed to [EmployeeService.Upload]. [EmployeeService.Save]
// chains both and reports exactly one terminal notice through a [Notifier].
package service

import (
	"context"

	"github.com/MKhiriev/go-emp-docs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EmployeeService runs the employee save-and-upload flow.
type EmployeeService interface {
	// Submit checks the file selection, reads the file metadata and runs the
	// save process. It never calls the document endpoint.
	//
	// Returns [ErrNoFileSelected] without calling the process when the form has
	// no usable file, a [*SaveRejectedError] when the process answers with a
	// non-success status, [ErrNoDocumentID] when a success carries no id and
	// [ErrProcessTransport] for every transport failure.
	Submit(ctx context.Context, form models.EmployeeForm) (models.Submission, error)

	// Upload re-checks the file selection, reads the whole file and sends it
	// to the document endpoint under sub.DocumentID.
	//
	// Returns [ErrNoFileSelected], a [*UploadStatusError] for any status other
	// than 200, or [ErrUploadNetwork] when no response arrived.
	Upload(ctx context.Context, form models.EmployeeForm, sub models.Submission) error

	// Save runs Submit and, on its success only, Upload. The returned result
	// is always terminal and its notice has been delivered to the Notifier
	// exactly once.
	Save(ctx context.Context, form models.EmployeeForm) models.FlowResult
}

// Notifier delivers user-facing notices.
type Notifier interface {
	Notify(notice models.Notice)
}
