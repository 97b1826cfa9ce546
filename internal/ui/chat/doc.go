// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view: a conversation sidebar, the
// message transcript, the input line and the suggestion row.
//
// The view is presentation only. Conversation state (the list, the active
// stream, pending sends, the title-edit session) lives in the store
// package; this model holds focus, cursor position, scroll state and
// in-progress input. Store completion messages are routed through
// applyStoreMsg so the transcript and sidebar re-render exactly when the
// underlying state changes.
//
// Two modal states capture the keyboard when open: the title-edit session
// (Enter commits, Esc cancels) and the delete confirmation (y confirms,
// n or Esc backs out). Deletes never reach the server without the
// confirmation step.
package chat
