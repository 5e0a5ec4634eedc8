// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-emp-docs/internal/adapter"
	"github.com/MKhiriev/go-emp-docs/internal/app"
	"github.com/MKhiriev/go-emp-docs/internal/store"
	"github.com/MKhiriev/go-emp-docs/models"
)

// mapStoreError translates a document source failure into ErrNoFileSelected.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrFileNotSelected),
		errors.Is(err, store.ErrFileNotFound),
		errors.Is(err, store.ErrReadingFile):
		return fmt.Errorf("%w: %w", ErrNoFileSelected, err)
	}

	return err
}

// mapProcessError translates any failure of the process call into
// ErrProcessTransport.
func mapProcessError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrProcessTransport, err)
}

// mapUploadError translates the adapter's transport error into a service
// business error.
func mapUploadError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return &UploadStatusError{StatusCode: statusErr.StatusCode, Body: statusErr.Body}
	}

	return fmt.Errorf("%w: %w", ErrUploadNetwork, err)
}

// NoticeFor returns the notice shown for the outcome of a flow. A nil err
// yields the success banner.
func NoticeFor(err error) models.Notice {
	if err == nil {
		return models.Success(app.MsgUploadSucceeded)
	}

	var (
		rejected  *SaveRejectedError
		uploadErr *UploadStatusError
	)

	switch {
	case errors.Is(err, ErrNoFileSelected):
		return models.Alert(app.MsgSelectFile)
	case errors.As(err, &rejected):
		if rejected.Message != "" {
			return models.Alert(rejected.Message)
		}
		return models.Alert(app.MsgSaveFailed)
	case errors.Is(err, ErrNoDocumentID):
		return models.Alert(app.MsgSaveFailed)
	case errors.Is(err, ErrProcessTransport):
		return models.Alert(app.MsgErrorSavingEmployee)
	case errors.As(err, &uploadErr):
		return models.Alert(app.MsgUploadFailedPrefix + uploadErr.Body)
	case errors.Is(err, ErrUploadNetwork):
		return models.Alert(app.MsgUploadNetworkError)
	}

	return models.Alert(app.MsgErrorSavingEmployee)
}
