// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the employee service to one of two front ends: the interactive
// terminal form, or a headless run that submits the configured form values
// once and reports the outcome on the console.
package client
