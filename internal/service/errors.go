// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFileSelected is returned when the form carries no file or the path
	// does not lead to a readable regular file.
	ErrNoFileSelected = errors.New("no file selected")

	// ErrSaveRejected is the kind of every [*SaveRejectedError].
	ErrSaveRejected = errors.New("save rejected")

	// ErrNoDocumentID is returned when the process reports success but gives
	// back no identifier to attach the document to.
	ErrNoDocumentID = errors.New("process returned no document id")

	// ErrProcessTransport is returned when the process call fails before a
	// decodable answer arrives.
	ErrProcessTransport = errors.New("process call failed")

	// ErrUploadFailed is the kind of every [*UploadStatusError].
	ErrUploadFailed = errors.New("upload failed")

	// ErrUploadNetwork is returned when the upload request got no response.
	ErrUploadNetwork = errors.New("network error during upload")

	// ErrInvalidAppIDHeaderSource is returned by the constructor for an
	// unknown p_app_id source.
	ErrInvalidAppIDHeaderSource = errors.New("invalid app id header source")
)

// SaveRejectedError is a non-success answer of the save process.
type SaveRejectedError struct {
	Status  string
	Message string
}

func (e *SaveRejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %q", ErrSaveRejected, e.Status)
	}
	return fmt.Sprintf("%s: status %q: %s", ErrSaveRejected, e.Status, e.Message)
}

func (e *SaveRejectedError) Unwrap() error {
	return ErrSaveRejected
}

// UploadStatusError is an upload answered with a status other than 200. Body
// is the raw response text.
type UploadStatusError struct {
	StatusCode int
	Body       string
}

func (e *UploadStatusError) Error() string {
	return fmt.Sprintf("%s: http %d", ErrUploadFailed, e.StatusCode)
}

func (e *UploadStatusError) Unwrap() error {
	return ErrUploadFailed
}
