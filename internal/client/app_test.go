// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-emp-docs/internal/adapter"
	"github.com/MKhiriev/go-emp-docs/internal/apextest"
	"github.com/MKhiriev/go-emp-docs/internal/app"
	"github.com/MKhiriev/go-emp-docs/internal/config"
	"github.com/MKhiriev/go-emp-docs/internal/logger"
	"github.com/MKhiriev/go-emp-docs/internal/service"
	"github.com/MKhiriev/go-emp-docs/internal/store"
	"github.com/MKhiriev/go-emp-docs/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHeadlessApp wires the real stack against the fake platform.
func newHeadlessApp(t *testing.T, srv *apextest.Server, file string) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := &config.ClientConfig{
		App: config.ClientApp{ApplicationID: "100", SessionID: "8812345", PageID: "4", Headless: true},
		Adapter: config.ClientAdapter{
			ProcessURL:        srv.ProcessURL(),
			ProcessName:       config.DefaultProcessName,
			UploadAddress:     srv.UploadAddress(),
			UploadPath:        apextest.UploadPath,
			DocType:           config.DefaultDocType,
			AppIDHeaderSource: config.AppIDFromToken,
			RequestTimeout:    5 * time.Second,
		},
		Form: config.ClientForm{Name: "KING", HireDate: "17-11-1981", Salary: "5000", File: file},
	}

	log := logger.Nop()
	platform, err := adapter.NewHTTPPlatformAdapter(cfg.Adapter, cfg.App, log)
	require.NoError(t, err)

	var out bytes.Buffer
	services, err := service.NewClientServices(platform, store.NewLocalDocumentSource(log), tui.NewConsoleNotifier(&out), cfg.Adapter, log)
	require.NoError(t, err)

	a, err := NewApp(services, nil, cfg, log)
	require.NoError(t, err)
	return a, &out
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contract.pdf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewApp_InteractiveNeedsUI(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, nil, &config.ClientConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoUI)
}

func TestHeadless_Success(t *testing.T) {
	srv := apextest.NewServer(t)
	srv.RespondProcess(http.StatusOK, `{"status":"SUCCESS","id":123,"cs":"tok-9"}`)

	a, out := newHeadlessApp(t, srv, writeDocument(t, "%PDF-1.7 body"))

	require.NoError(t, a.Run())
	assert.Contains(t, out.String(), app.MsgUploadSucceeded)

	calls := srv.ProcessCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "contract.pdf", calls[0].Form.Get("x06"))
	assert.Equal(t, "application/pdf", calls[0].Form.Get("x07"))
	requestID := calls[0].Header.Get("X-Request-Id")
	assert.NotEmpty(t, requestID)

	uploads := srv.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "123", uploads[0].Header.Get("X-Doc-Id"))
	assert.Equal(t, "tok-9", uploads[0].Header.Get("p_app_id"))
	assert.Equal(t, "8812345", uploads[0].Header.Get("p_session_id"))
	assert.Equal(t, "EMP_DOC", uploads[0].Header.Get("X-Doc-Type"))
	assert.Equal(t, requestID, uploads[0].Header.Get("X-Request-Id"))
	assert.Equal(t, []byte("%PDF-1.7 body"), uploads[0].Body)
}

func TestHeadless_NoFileSelected(t *testing.T) {
	srv := apextest.NewServer(t)
	a, out := newHeadlessApp(t, srv, "")

	err := a.Run()

	require.ErrorIs(t, err, ErrFlowFailed)
	assert.ErrorIs(t, err, service.ErrNoFileSelected)
	assert.Contains(t, out.String(), app.MsgSelectFile)
	assert.Empty(t, srv.ProcessCalls())
	assert.Empty(t, srv.Uploads())
}

func TestHeadless_Rejected(t *testing.T) {
	srv := apextest.NewServer(t)
	srv.RespondProcess(http.StatusOK, `{"status":"FAIL","message":"bad date"}`)

	a, out := newHeadlessApp(t, srv, writeDocument(t, "x"))

	err := a.Run()

	require.ErrorIs(t, err, ErrFlowFailed)
	assert.Contains(t, out.String(), "bad date")
	assert.Empty(t, srv.Uploads())
}

func TestHeadless_UploadFailure(t *testing.T) {
	srv := apextest.NewServer(t)
	srv.RespondUpload(http.StatusInternalServerError, "disk full")

	a, out := newHeadlessApp(t, srv, writeDocument(t, "x"))

	err := a.Run()

	require.ErrorIs(t, err, ErrFlowFailed)
	assert.ErrorIs(t, err, service.ErrUploadFailed)
	assert.Contains(t, out.String(), "Upload failed: disk full")
	assert.NotContains(t, out.String(), app.MsgUploadSucceeded)
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestHeadless_ProcessUnavailable(t *testing.T) {
	srv := apextest.NewServer(t)
	a, out := newHeadlessApp(t, srv, writeDocument(t, "x"))
	srv.Close()

	err := a.Run()

	require.ErrorIs(t, err, ErrFlowFailed)
	assert.ErrorIs(t, err, service.ErrProcessTransport)
	assert.Contains(t, out.String(), app.MsgErrorSavingEmployee)
}
