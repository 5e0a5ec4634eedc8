// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-emp-docs/internal/adapter"
	"github.com/MKhiriev/go-emp-docs/internal/config"
	"github.com/MKhiriev/go-emp-docs/internal/logger"
	"github.com/MKhiriev/go-emp-docs/internal/store"
	"github.com/MKhiriev/go-emp-docs/internal/utils"
	"github.com/MKhiriev/go-emp-docs/models"
)

type employeeService struct {
	platform adapter.PlatformAdapter
	docs     store.DocumentSource
	notifier Notifier
	ids      *utils.UUIDGenerator

	docType     string
	appIDSource string

	logger *logger.Logger
}

// NewEmployeeService constructs an [EmployeeService].
//
// cfg.DocType defaults to [models.DefaultDocType] and cfg.AppIDHeaderSource
// to [config.AppIDFromToken]. notifier may be nil when the caller only uses
// Submit and Upload.
func NewEmployeeService(platform adapter.PlatformAdapter, docs store.DocumentSource, notifier Notifier, cfg config.ClientAdapter, logger *logger.Logger) (EmployeeService, error) {
	docType := cfg.DocType
	if docType == "" {
		docType = models.DefaultDocType
	}

	source := cfg.AppIDHeaderSource
	switch source {
	case "":
		source = config.AppIDFromToken
	case config.AppIDFromToken, config.AppIDFromApplication:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAppIDHeaderSource, source)
	}

	if notifier == nil {
		notifier = nopNotifier{}
	}

	return &employeeService{
		platform:    platform,
		docs:        docs,
		notifier:    notifier,
		ids:         utils.NewUUIDGenerator(),
		docType:     docType,
		appIDSource: source,
		logger:      logger,
	}, nil
}

func (s *employeeService) Submit(ctx context.Context, form models.EmployeeForm) (models.Submission, error) {
	ctx, flowID := s.withFlow(ctx, "")
	log := s.logger.WithFlow(flowID)

	if !form.HasFile() {
		log.Info().Msg("submit without file selection")
		return models.Submission{}, ErrNoFileSelected
	}

	file, err := s.docs.Stat(ctx, form.File)
	if err != nil {
		log.Warn().Err(err).Str("file", form.File).Msg("selected file is not usable")
		return models.Submission{}, mapStoreError(err)
	}

	resp, err := s.platform.SaveEmployee(ctx, form, file)
	if err != nil {
		log.Error().Err(err).Msg("save process call failed")
		return models.Submission{}, mapProcessError(err)
	}

	if !resp.IsSuccess() {
		log.Info().Str("status", resp.Status).Str("message", resp.Message).Msg("save rejected by process")
		return models.Submission{}, &SaveRejectedError{Status: resp.Status, Message: resp.Message}
	}

	if resp.ID.IsEmpty() {
		log.Warn().Msg("save process succeeded without document id")
		return models.Submission{}, ErrNoDocumentID
	}

	log.Info().Str("doc_id", resp.ID.String()).Msg("employee saved")

	return models.Submission{
		FlowID:     flowID,
		DocumentID: resp.ID,
		Token:      resp.CS,
		File:       file,
	}, nil
}

func (s *employeeService) Upload(ctx context.Context, form models.EmployeeForm, sub models.Submission) error {
	ctx, flowID := s.withFlow(ctx, sub.FlowID)
	log := s.logger.WithFlow(flowID)

	if sub.DocumentID.IsEmpty() {
		return ErrNoDocumentID
	}

	path := form.File
	if path == "" {
		log.Info().Msg("upload without file selection")
		return ErrNoFileSelected
	}

	content, err := s.docs.ReadAll(ctx, path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("selected file is not readable")
		return mapStoreError(err)
	}

	fileName := sub.File.Name
	if fileName == "" {
		if file, statErr := s.docs.Stat(ctx, path); statErr == nil {
			fileName = file.Name
		}
	}

	req := models.UploadRequest{
		DocumentID:    sub.DocumentID,
		FileName:      fileName,
		DocType:       s.docType,
		ApplicationID: s.appIDHeader(form, sub),
		SessionID:     form.SessionID,
		Content:       content,
	}

	if err = s.platform.UploadDocument(ctx, req); err != nil {
		log.Error().Err(err).Str("doc_id", sub.DocumentID.String()).Msg("document upload failed")
		return mapUploadError(err)
	}

	log.Info().Str("doc_id", sub.DocumentID.String()).Int("bytes", len(content)).Msg("document uploaded")
	return nil
}

func (s *employeeService) Save(ctx context.Context, form models.EmployeeForm) models.FlowResult {
	result := s.save(ctx, form)
	s.notifier.Notify(result.Notice)
	return result
}

func (s *employeeService) save(ctx context.Context, form models.EmployeeForm) models.FlowResult {
	ctx, _ = s.withFlow(ctx, "")

	sub, err := s.Submit(ctx, form)
	if err != nil {
		return models.FlowResult{State: models.FlowFailed, Notice: NoticeFor(err), Err: err}
	}

	if err = s.Upload(ctx, form, sub); err != nil {
		return models.FlowResult{State: models.FlowFailed, DocumentID: sub.DocumentID, Notice: NoticeFor(err), Err: err}
	}

	return models.FlowResult{State: models.FlowDone, DocumentID: sub.DocumentID, Notice: NoticeFor(nil)}
}

// appIDHeader picks the p_app_id value. The token source falls back to the
// application id when the process returned no token.
func (s *employeeService) appIDHeader(form models.EmployeeForm, sub models.Submission) string {
	if s.appIDSource == config.AppIDFromToken && sub.Token != "" {
		return sub.Token
	}
	return form.ApplicationID
}

// withFlow makes sure ctx carries a flow id: the one already in ctx, then
// preferred, then a fresh one.
func (s *employeeService) withFlow(ctx context.Context, preferred string) (context.Context, string) {
	if flowID, ok := utils.GetFlowIDFromContext(ctx); ok {
		return ctx, flowID
	}

	flowID := preferred
	if flowID == "" {
		flowID = s.ids.Generate()
	}
	return utils.WithFlowID(ctx, flowID), flowID
}

type nopNotifier struct{}

func (nopNotifier) Notify(models.Notice) {}
