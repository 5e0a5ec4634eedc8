// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the flow id on every outbound request.
const RequestIDHeader = "X-Request-Id"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own connection pool.
// A positive timeout bounds every request made through the client.
//
// Each request made with the returned client gets the flow id from its
// context as the X-Request-Id header, when one is present.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if flowID, ok := GetFlowIDFromContext(req.Context()); ok {
			req.SetHeader(RequestIDHeader, flowID)
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
