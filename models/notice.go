// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoticeKind distinguishes the success banner from alert dialogs.
type NoticeKind int

const (
	// NoticeAlert is a blocking alert shown for every failure path.
	NoticeAlert NoticeKind = iota
	// NoticeSuccess is the page success banner.
	NoticeSuccess
)

// String returns a short label for logs.
func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	default:
		return "alert"
	}
}

// Notice is a single user-facing notification.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Alert builds an alert notice.
func Alert(text string) Notice {
	return Notice{Kind: NoticeAlert, Text: text}
}

// Success builds a success banner notice.
func Success(text string) Notice {
	return Notice{Kind: NoticeSuccess, Text: text}
}
