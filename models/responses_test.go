// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveResponse_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    SaveResponse
		success bool
	}{
		{
			name:    "numeric id",
			body:    `{"status":"SUCCESS","id":123}`,
			want:    SaveResponse{Status: "SUCCESS", ID: "123"},
			success: true,
		},
		{
			name:    "string id with token",
			body:    `{"status":"SUCCESS","id":"77","cs":"abc"}`,
			want:    SaveResponse{Status: "SUCCESS", ID: "77", CS: "abc"},
			success: true,
		},
		{
			name: "failure with message",
			body: `{"status":"FAIL","message":"bad date"}`,
			want: SaveResponse{Status: "FAIL", Message: "bad date"},
		},
		{
			name:    "null id",
			body:    `{"status":"SUCCESS","id":null}`,
			want:    SaveResponse{Status: "SUCCESS"},
			success: true,
		},
		{
			name: "lower-case status is not success",
			body: `{"status":"success","id":1}`,
			want: SaveResponse{Status: "success", ID: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SaveResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.success, got.IsSuccess())
		})
	}
}

func TestDocumentID_UnmarshalRejectsObjects(t *testing.T) {
	var id DocumentID
	err := json.Unmarshal([]byte(`{"a":1}`), &id)
	require.Error(t, err)
}

func TestDocumentID_IsEmpty(t *testing.T) {
	assert.True(t, DocumentID("").IsEmpty())
	assert.True(t, DocumentID("  ").IsEmpty())
	assert.False(t, DocumentID("0").IsEmpty())
}

func TestFlowState(t *testing.T) {
	assert.Equal(t, "submitting", FlowSubmitting.String())
	assert.Equal(t, "unknown", FlowState(42).String())
	assert.True(t, FlowDone.IsTerminal())
	assert.True(t, FlowFailed.IsTerminal())
	assert.False(t, FlowSubmitted.IsTerminal())
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Contains(t, info.String(), "Build commit: N/A")
}
