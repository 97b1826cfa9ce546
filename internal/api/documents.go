// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/util"
)

// MaxUploadSize caps document uploads client-side so an accidental pick of
// a huge file fails fast instead of timing out mid-request.
const MaxUploadSize = 50 * 1024 * 1024 // 50MB

// ListDocuments fetches the user's uploaded documents, newest first.
func (c *Client) ListDocuments(ctx context.Context) ([]*model.Document, error) {
	var docs []*model.Document
	if err := c.doJSON(ctx, http.MethodGet, "/documents/", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadDocument uploads a local file as a new source document. The server
// splits, embeds and indexes it; the client only ships bytes.
func (c *Client) UploadDocument(ctx context.Context, title, filePath string) (*model.Document, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() > MaxUploadSize {
		return nil, fmt.Errorf("file exceeds maximum upload size of %d bytes", MaxUploadSize)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if title == "" {
		title = filepath.Base(filePath)
	}

	// Build the multipart body up front; the payload is bounded by
	// MaxUploadSize so buffering it is acceptable and keeps the request
	// retry-free and Content-Length exact.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("title", title); err != nil {
		return nil, fmt.Errorf("failed to write title field: %w", err)
	}
	part, err := mw.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents/", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if err := c.setHeaders(req); err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var doc model.Document
	if err := c.send(req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// processResponse is the server's shape for a manual processing trigger.
type processResponse struct {
	Status      string `json:"status"`
	ChunksCount int    `json:"chunks_count"`
}

// ProcessDocument manually re-triggers server-side processing for a document
// and returns the number of chunks indexed.
func (c *Client) ProcessDocument(ctx context.Context, id int64) (int, error) {
	var pr processResponse
	path := "/documents/" + util.Int64ToString(id) + "/process/"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &pr); err != nil {
		return 0, err
	}
	return pr.ChunksCount, nil
}
