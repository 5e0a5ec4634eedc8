// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for any 2xx response and a [*StatusError]
// otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return newStatusError(resp)
}

// mapUploadStatus accepts exactly HTTP 200, as the document endpoint signals
// success with nothing else.
func mapUploadStatus(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	return newStatusError(resp)
}

func newStatusError(resp *resty.Response) *StatusError {
	return &StatusError{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
		kind:       statusKind(resp.StatusCode()),
	}
}

func statusKind(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

func networkError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}
