// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrFileNotSelected is returned when the file path is blank.
	ErrFileNotSelected = errors.New("no file selected")

	// ErrFileNotFound is returned when the path does not exist or is not a
	// regular file.
	ErrFileNotFound = errors.New("file not found")

	// ErrReadingFile is returned when the file exists but could not be read.
	ErrReadingFile = errors.New("error reading file")
)
