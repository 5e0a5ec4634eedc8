// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-emp-docs/internal/config"
	"github.com/MKhiriev/go-emp-docs/internal/logger"
	"github.com/MKhiriev/go-emp-docs/internal/utils"
	"github.com/MKhiriev/go-emp-docs/models"
)

// Header names understood by the document endpoint.
const (
	HeaderDocID     = "X-Doc-Id"
	HeaderFileName  = "X-File-Name"
	HeaderDocType   = "X-Doc-Type"
	HeaderAppID     = "p_app_id"
	HeaderSessionID = "p_session_id"
)

type httpPlatformAdapter struct {
	client *utils.HTTPClient

	processURL  string
	processName string
	pageID      string
	uploadURL   string

	logger *logger.Logger
}

// NewHTTPPlatformAdapter constructs the HTTP implementation of
// [PlatformAdapter].
//
// The process URL is used as is (a scheme is added when missing). The upload
// URL is built from adapterCfg.UploadAddress, which may be "host:port" or a
// URL, and adapterCfg.UploadPath.
//
// Returns an error if either address is empty or cannot be parsed.
func NewHTTPPlatformAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (PlatformAdapter, error) {
	processURL, err := normalizeBaseURL(adapterCfg.ProcessURL)
	if err != nil {
		return nil, fmt.Errorf("invalid process url: %w", err)
	}

	uploadBase, err := normalizeBaseURL(adapterCfg.UploadAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid upload address: %w", err)
	}

	uploadURL := uploadBase
	if path := strings.Trim(adapterCfg.UploadPath, "/"); path != "" {
		uploadURL += "/" + path
	}

	return &httpPlatformAdapter{
		client:      utils.NewHTTPClient(adapterCfg.RequestTimeout),
		processURL:  processURL,
		processName: adapterCfg.ProcessName,
		pageID:      appCfg.PageID,
		uploadURL:   uploadURL,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SaveEmployee implements [ProcessAdapter]. It POSTs a form-encoded platform
// AJAX request that runs the configured application process with the seven
// positional parameters x01..x07 and decodes the JSON reply.
func (h *httpPlatformAdapter) SaveEmployee(ctx context.Context, form models.EmployeeForm, file models.DocumentFile) (models.SaveResponse, error) {
	var out models.SaveResponse

	params := map[string]string{
		"p_request":  "APPLICATION_PROCESS=" + h.processName,
		"p_flow_id":  form.ApplicationID,
		"p_instance": form.SessionID,
		"x01":        form.Name,
		"x02":        form.HireDate,
		"x03":        form.Salary,
		"x04":        form.ApplicationID,
		"x05":        form.SessionID,
		"x06":        file.Name,
		"x07":        file.MimeType,
	}
	if h.pageID != "" {
		params["p_flow_step_id"] = h.pageID
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(params).
		Post(h.processURL)
	if err != nil {
		return out, networkError("save employee request", err)
	}

	h.logger.Debug().
		Str("process", h.processName).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("process call finished")

	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SaveResponse{}, fmt.Errorf("decode save response: %w: %w", ErrInvalidResponse, err)
	}

	return out, nil
}

// UploadDocument implements [DocumentAdapter]. The p_app_id and p_session_id
// headers are sent verbatim, without MIME canonicalisation.
func (h *httpPlatformAdapter) UploadDocument(ctx context.Context, req models.UploadRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader(HeaderDocID, req.DocumentID.String()).
		SetHeader(HeaderFileName, req.FileName).
		SetHeader(HeaderDocType, req.DocType).
		SetHeaderVerbatim(HeaderAppID, req.ApplicationID).
		SetHeaderVerbatim(HeaderSessionID, req.SessionID).
		SetBody(req.Content).
		Post(h.uploadURL)
	if err != nil {
		return networkError("upload document request", err)
	}

	h.logger.Debug().
		Str("doc_id", req.DocumentID.String()).
		Int("bytes", len(req.Content)).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("document upload finished")

	return mapUploadStatus(resp)
}
