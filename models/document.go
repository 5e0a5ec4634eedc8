// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultDocType is the document-type tag sent with every employee document.
const DefaultDocType = "EMP_DOC"

// DocumentFile describes the selected file. Metadata is read once for the
// submission step; the content is read again, in full, by the upload step.
type DocumentFile struct {
	// Path is the location of the file on the local filesystem.
	Path string `json:"path"`

	// Name is the base name sent as x06 and as the X-File-Name header.
	Name string `json:"name"`

	// MimeType is sent as x07. Empty when it cannot be determined.
	MimeType string `json:"mime_type"`

	// Size is the file size in bytes at the time metadata was read.
	Size int64 `json:"size"`
}

// UploadRequest carries everything the upload step sends to the document
// endpoint. All string fields map one-to-one to request headers.
type UploadRequest struct {
	// DocumentID is the identifier generated by the process call (X-Doc-Id).
	DocumentID DocumentID

	// FileName is the original file name (X-File-Name).
	FileName string

	// DocType is the document-type tag (X-Doc-Type).
	DocType string

	// ApplicationID is sent as p_app_id. Depending on configuration it holds
	// either the token returned by the process call or the application id.
	ApplicationID string

	// SessionID is sent as p_session_id.
	SessionID string

	// Content is the raw file body.
	Content []byte
}
