// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import "time"

// Document is a source file uploaded for the server-side retrieval pipeline.
// Processing (splitting, embedding, indexing) happens entirely on the server;
// the client only tracks upload state.
type Document struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	File        string    `json:"file"`
	UploadedAt  time.Time `json:"uploaded_at"`
	IsProcessed bool      `json:"is_processed"`
}

// StatusLabel returns a short human-readable processing status.
func (d *Document) StatusLabel() string {
	if d.IsProcessed {
		return "processed"
	}
	return "pending"
}
