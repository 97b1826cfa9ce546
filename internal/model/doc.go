// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// The JSON shapes mirror what the docchat server sends and receives:
//
//   - Conversation: id, title, created_at, updated_at, messages
//   - Message: id, role, content, created_at
//   - Document: id, title, file, uploaded_at, is_processed
//
// # Optimistic messages
//
// Messages composed locally are given a client-generated identifier and a
// Pending flag so the UI can show them before the server acknowledges the
// send. Server identifiers are numeric and client identifiers are UUIDs, so
// the two spaces can never collide. A pending message is retired when the
// next full history fetch replaces the conversation's messages.
package model
