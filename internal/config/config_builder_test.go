// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies mergo semantics: a field set by an
// earlier config is not overwritten by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{SessionID: "from-env"}},
		&StructuredConfig{App: App{SessionID: "from-flags", ApplicationID: "100"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.SessionID)
	assert.Equal(t, "100", cfg.App.ApplicationID)
}

// ── sources ───────────────────────────────────────────────────────────────────

// TestWithDefaults_FillsOnlyMissing verifies that defaults never override
// configured values.
func TestWithDefaults_FillsOnlyMissing(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter: Adapter{ProcessName: "SAVE_DATA_V3"},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "SAVE_DATA_V3", cfg.Adapter.ProcessName)
	assert.Equal(t, DefaultUploadPath, cfg.Adapter.UploadPath)
	assert.Equal(t, DefaultDocType, cfg.Adapter.DocType)
	assert.Equal(t, AppIDFromToken, cfg.Adapter.AppIDHeaderSource)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

// TestWithFlags_InvalidArgs verifies that flag errors are collected.
func TestWithFlags_InvalidArgs(t *testing.T) {
	cfg, err := newTestBuilder("-a", "nope").withFlags().build()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

// TestWithJSON_PathFromFlags verifies that the JSON file named by -c is read
// and merged below flags.
func TestWithJSON_PathFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"application_id": "json-app",
			"session_id":     "json-session",
		},
		"adapter": map[string]any{
			"process_url":     "http://json/ords/wwv_flow.ajax",
			"request_timeout": "5s",
		},
	})

	cfg, err := newTestBuilder("-c", path, "-session-id", "flag-session").
		withFlags().
		withJSON().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag-session", cfg.App.SessionID)
	assert.Equal(t, "json-app", cfg.App.ApplicationID)
	assert.Equal(t, "http://json/ords/wwv_flow.ajax", cfg.Adapter.ProcessURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultProcessName, cfg.Adapter.ProcessName)
}

// TestWithJSON_MissingFile verifies that a missing JSON file is reported.
func TestWithJSON_MissingFile(t *testing.T) {
	cfg, err := newTestBuilder("-config", "/does/not/exist.json").
		withFlags().
		withJSON().
		build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// TestWithJSON_NotSpecified verifies that no JSON config is appended when no
// path was given.
func TestWithJSON_NotSpecified(t *testing.T) {
	b := newTestBuilder().withFlags().withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_Merged verifies that env values take precedence over flags.
func TestWithEnv_Merged(t *testing.T) {
	t.Setenv("APP_SESSION_ID", "env-session")

	cfg, err := newTestBuilder("-session-id", "flag-session", "-app-id", "flag-app").
		withEnv().
		withFlags().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-session", cfg.App.SessionID)
	assert.Equal(t, "flag-app", cfg.App.ApplicationID)
}
