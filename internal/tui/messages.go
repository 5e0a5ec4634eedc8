// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-emp-docs/models"
)

// saveDoneMsg ends the submission step. A nil err is the only way the upload
// step gets started.
type saveDoneMsg struct {
	sub models.Submission
	err error
}

type uploadDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
