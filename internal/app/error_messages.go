// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing notice texts shared by the service
// layer and both front ends.
//
// All Msg* constants are shown to the user verbatim, either in an alert or in
// the success banner. Keeping them in one place ensures consistent wording
// between the interactive form and headless runs.
package app

const (
	// MsgSelectFile is shown when the flow is started without a usable file.
	MsgSelectFile = "Please select a file"

	// MsgSaveFailed is shown when the process rejects the record without
	// giving a reason, or reports success without an identifier.
	MsgSaveFailed = "Save failed"

	// MsgErrorSavingEmployee is shown when the process call itself fails:
	// no response, an HTTP error status or a body that is not valid JSON.
	MsgErrorSavingEmployee = "Error saving employee data"

	// MsgUploadSucceeded is the success banner after both steps completed.
	MsgUploadSucceeded = "Employee saved and file uploaded successfully"

	// MsgUploadFailedPrefix precedes the raw response body when the document
	// endpoint answers with anything but HTTP 200.
	MsgUploadFailedPrefix = "Upload failed: "

	// MsgUploadNetworkError is shown when the upload request got no response.
	MsgUploadNetworkError = "Network error during upload"
)

// Progress texts shown next to the spinner.
const (
	MsgSaving    = "Saving..."
	MsgUploading = "Uploading..."
)
