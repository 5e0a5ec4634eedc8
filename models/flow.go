// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FlowState is the state of one save-and-upload invocation.
//
//	Idle -> Submitting -> {Failed | Submitted} -> Uploading -> {Failed | Done}
//
// Failed and Done are terminal.
type FlowState int

const (
	FlowIdle FlowState = iota
	FlowSubmitting
	FlowSubmitted
	FlowUploading
	FlowDone
	FlowFailed
)

var flowStateNames = map[FlowState]string{
	FlowIdle:       "idle",
	FlowSubmitting: "submitting",
	FlowSubmitted:  "submitted",
	FlowUploading:  "uploading",
	FlowDone:       "done",
	FlowFailed:     "failed",
}

// String returns the lower-case state name.
func (s FlowState) String() string {
	if name, ok := flowStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s FlowState) IsTerminal() bool {
	return s == FlowDone || s == FlowFailed
}

// Submission is what the submission step hands over to the upload step.
type Submission struct {
	// FlowID correlates both requests of one invocation.
	FlowID string

	// DocumentID is the identifier generated by the process.
	DocumentID DocumentID

	// Token is the optional cs token from the process response.
	Token string

	// File is the metadata of the file that was announced to the process.
	File DocumentFile
}

// FlowResult summarises one invocation.
type FlowResult struct {
	// State is always terminal once the flow has returned.
	State FlowState

	// DocumentID is set once the submission step succeeded.
	DocumentID DocumentID

	// Notice is the single terminal notice shown to the user.
	Notice Notice

	// Err is nil only when State is FlowDone.
	Err error
}

// OK reports whether both steps succeeded.
func (r FlowResult) OK() bool {
	return r.State == FlowDone && r.Err == nil
}
