// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client
// packages: context keys for flow correlation, flow id generation and the
// resty-based HTTP client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// FlowIDCtxKey is the key under which the id of the current save-and-upload
// flow is stored.
var FlowIDCtxKey = contextKey("flowID")

// WithFlowID returns a copy of ctx carrying flowID.
func WithFlowID(ctx context.Context, flowID string) context.Context {
	return context.WithValue(ctx, FlowIDCtxKey, flowID)
}

// GetFlowIDFromContext retrieves the flow id from ctx.
//
// ok is false when no flow id is stored or it has an unexpected type.
func GetFlowIDFromContext(ctx context.Context) (string, bool) {
	flowID, ok := ctx.Value(FlowIDCtxKey).(string)
	return flowID, ok && flowID != ""
}
