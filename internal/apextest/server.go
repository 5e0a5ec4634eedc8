// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apextest provides an in-process fake of the two remote
// collaborators: the platform AJAX endpoint that runs application processes
// and the document endpoint that receives uploads. It records every call so
// tests can assert on what the client sent.
package apextest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/MKhiriev/go-emp-docs/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Paths served by the fake.
const (
	ProcessPath = "/ords/wwv_flow.ajax"
	UploadPath  = "/rest_token/SaveDocumentV2"
)

// Reply is a canned HTTP response.
type Reply struct {
	Status int
	Body   string
}

// ProcessCall is one recorded process invocation.
type ProcessCall struct {
	Header http.Header
	Form   url.Values
}

// Upload is one recorded document upload.
type Upload struct {
	Header http.Header
	Body   []byte
}

// Server is a fake platform plus document service.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	processCalls []ProcessCall
	uploads      []Upload
	processReply func(ProcessCall) Reply
	uploadReply  func(Upload) Reply

	logger *logger.Logger
}

// Option configures a [Server].
type Option func(*Server)

// WithLogger makes the fake log every request it serves.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer starts a fake that accepts every process call with
// {"status":"SUCCESS","id":1} and every well-formed upload with 200.
// The server is closed when the test finishes.
func NewServer(t interface{ Cleanup(func()) }, opts ...Option) *Server {
	s := &Server{
		processReply: func(ProcessCall) Reply {
			return Reply{Status: http.StatusOK, Body: `{"status":"SUCCESS","id":1}`}
		},
		uploadReply: defaultUploadReply,
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID)
	router.Use(s.withLogging)
	router.Use(cors)

	router.Post(ProcessPath, s.handleProcess)
	router.Post(UploadPath, s.handleUpload)
	router.Options(UploadPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}

// ProcessURL is the full URL of the fake AJAX endpoint.
func (s *Server) ProcessURL() string {
	return s.URL + ProcessPath
}

// UploadAddress is the base address of the fake document service.
func (s *Server) UploadAddress() string {
	return s.URL
}

// OnProcess replaces the process reply.
func (s *Server) OnProcess(fn func(ProcessCall) Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processReply = fn
}

// RespondProcess makes every process call return status and body.
func (s *Server) RespondProcess(status int, body string) {
	s.OnProcess(func(ProcessCall) Reply { return Reply{Status: status, Body: body} })
}

// OnUpload replaces the upload reply.
func (s *Server) OnUpload(fn func(Upload) Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploadReply = fn
}

// RespondUpload makes every upload return status and body.
func (s *Server) RespondUpload(status int, body string) {
	s.OnUpload(func(Upload) Reply { return Reply{Status: status, Body: body} })
}

// ProcessCalls returns a copy of the recorded process calls.
func (s *Server) ProcessCalls() []ProcessCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ProcessCall(nil), s.processCalls...)
}

// Uploads returns a copy of the recorded uploads.
func (s *Server) Uploads() []Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Upload(nil), s.uploads...)
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	call := ProcessCall{Header: r.Header.Clone(), Form: r.PostForm}

	s.mu.Lock()
	s.processCalls = append(s.processCalls, call)
	reply := s.processReply
	s.mu.Unlock()

	writeReply(w, "application/json", reply(call))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	upload := Upload{Header: r.Header.Clone(), Body: body}

	s.mu.Lock()
	s.uploads = append(s.uploads, upload)
	reply := s.uploadReply
	s.mu.Unlock()

	writeReply(w, "application/json", reply(upload))
}

func defaultUploadReply(u Upload) Reply {
	for _, h := range []string{"X-Doc-Id", "X-File-Name", "X-Doc-Type", "p_app_id", "p_session_id"} {
		if u.Header.Get(h) == "" {
			return Reply{Status: http.StatusBadRequest, Body: `{"error":"Missing required headers"}`}
		}
	}

	return Reply{Status: http.StatusOK, Body: `{"status":"OK","file":"` + u.Header.Get("X-Doc-Id") + `_` + u.Header.Get("X-File-Name") + `"}`}
}

func writeReply(w http.ResponseWriter, contentType string, reply Reply) {
	if reply.Status == 0 {
		reply.Status = http.StatusOK
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "X-Doc-Id, X-File-Name, X-Doc-Type, p_app_id, p_session_id, Content-Type")
		next.ServeHTTP(w, r)
	})
}
