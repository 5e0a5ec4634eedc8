// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNetwork is returned when a request produced no response at all
	// (connection refused, DNS failure, timeout, cancelled context).
	ErrNetwork = errors.New("network error")

	// ErrInvalidResponse is returned when a response arrived but its body
	// could not be decoded.
	ErrInvalidResponse = errors.New("invalid response body")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrUnexpectedStatus covers every status without a dedicated sentinel.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// StatusError reports a response with an unexpected HTTP status. Body holds
// the raw response text exactly as received.
type StatusError struct {
	StatusCode int
	Body       string

	kind error
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.kind)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.kind, body)
}

// Unwrap exposes the status sentinel (ErrBadRequest, ErrNotFound, ...).
func (e *StatusError) Unwrap() error {
	return e.kind
}
