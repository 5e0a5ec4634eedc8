// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestFlowIDCtxKey(t *testing.T) {
	if FlowIDCtxKey.String() != "flowID" {
		t.Errorf("expected 'flowID', got '%s'", FlowIDCtxKey.String())
	}
}

func TestGetFlowIDFromContext_Success(t *testing.T) {
	ctx := WithFlowID(context.Background(), "flow-42")

	flowID, ok := GetFlowIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if flowID != "flow-42" {
		t.Errorf("expected flow-42, got %s", flowID)
	}
}

func TestGetFlowIDFromContext_Missing(t *testing.T) {
	flowID, ok := GetFlowIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if flowID != "" {
		t.Errorf("expected empty flow id, got %s", flowID)
	}
}

func TestGetFlowIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), FlowIDCtxKey, 42)

	if _, ok := GetFlowIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for non-string value")
	}
}

func TestGetFlowIDFromContext_Empty(t *testing.T) {
	ctx := WithFlowID(context.Background(), "")

	if _, ok := GetFlowIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty flow id")
	}
}
