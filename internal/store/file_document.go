// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-emp-docs/internal/logger"
	"github.com/MKhiriev/go-emp-docs/models"
)

// sniffLen is the number of leading bytes http.DetectContentType looks at.
const sniffLen = 512

type localDocumentSource struct {
	logger *logger.Logger
}

// NewLocalDocumentSource constructs a [DocumentSource] backed by the local
// filesystem.
func NewLocalDocumentSource(logger *logger.Logger) DocumentSource {
	return &localDocumentSource{logger: logger}
}

func (l *localDocumentSource) Stat(ctx context.Context, path string) (models.DocumentFile, error) {
	if err := ctx.Err(); err != nil {
		return models.DocumentFile{}, err
	}

	path, info, err := l.resolve(path)
	if err != nil {
		return models.DocumentFile{}, err
	}

	mimeType, err := detectMimeType(path)
	if err != nil {
		return models.DocumentFile{}, err
	}

	file := models.DocumentFile{
		Path:     path,
		Name:     info.Name(),
		MimeType: mimeType,
		Size:     info.Size(),
	}

	l.logger.Debug().
		Str("file", file.Name).
		Str("mime", file.MimeType).
		Int64("size", file.Size).
		Msg("document selected")

	return file, nil
}

func (l *localDocumentSource) ReadAll(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, _, err := l.resolve(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return content, nil
}

// resolve cleans path and checks that it names an existing regular file.
func (l *localDocumentSource) resolve(path string) (string, fs.FileInfo, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil, ErrFileNotSelected
	}

	path = filepath.Clean(expandHome(path))

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	if !info.Mode().IsRegular() {
		return "", nil, fmt.Errorf("%w: %s is not a regular file", ErrFileNotFound, path)
	}

	return path, info, nil
}

// detectMimeType prefers the extension and sniffs the content otherwise.
// The result never carries parameters such as charset.
func detectMimeType(path string) (string, error) {
	if ext := filepath.Ext(path); ext != "" {
		if mt := mime.TypeByExtension(strings.ToLower(ext)); mt != "" {
			return stripParams(mt), nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return stripParams(http.DetectContentType(buf[:n])), nil
}

func stripParams(mt string) string {
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		return strings.TrimSpace(mt[:i])
	}
	return mt
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
