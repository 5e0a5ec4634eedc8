// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ProcessStatusSuccess is the only status value the process reports on
// success. Anything else is treated as a rejection.
const ProcessStatusSuccess = "SUCCESS"

// DocumentID is the server-generated identifier of the new employee record.
// The process may emit it either as a JSON number or as a string, both are
// kept in their textual form.
type DocumentID string

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *DocumentID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = DocumentID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("document id must be a number or a string: %w", err)
	}
	*id = DocumentID(n.String())
	return nil
}

// String returns the identifier as sent in the X-Doc-Id header.
func (id DocumentID) String() string {
	return string(id)
}

// IsEmpty reports whether the identifier is unusable for the upload step.
func (id DocumentID) IsEmpty() bool {
	return strings.TrimSpace(string(id)) == ""
}

// SaveResponse is the JSON object returned by the save process.
type SaveResponse struct {
	// Status is "SUCCESS" when the employee record was created.
	Status string `json:"status"`

	// ID is the generated document id.
	ID DocumentID `json:"id"`

	// Message is an optional human-readable reason for a rejection.
	Message string `json:"message,omitempty"`

	// CS is an optional session/auth token returned by some process versions.
	CS string `json:"cs,omitempty"`
}

// IsSuccess reports whether the process accepted the submission.
func (r SaveResponse) IsSuccess() bool {
	return r.Status == ProcessStatusSuccess
}
