// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store is the client state core: the conversation list, the active
// conversation's message stream, the suggestion feed, and the exclusive
// title-edit session.
//
// # Execution model
//
// The store is single-threaded on the Bubble Tea event loop. Every
// asynchronous operation follows the same shape:
//
//  1. A method mutates local state synchronously (optimistic append,
//     selection swap) and returns a tea.Cmd for the network leg.
//  2. The command resolves to one typed message (msgs.go).
//  3. Update applies the message, guarded against staleness.
//
// # Staleness guards
//
// Completions can resolve in any order, so results carry identity:
//
//   - List fetches carry a generation token; only the latest generation
//     applies, and the stream is re-derived from the CURRENT selection.
//   - Assistant replies carry their target conversation id and land in that
//     conversation's record; the visible stream changes only if that
//     conversation is still active.
//
// # Optimistic sends
//
// A send appends a locally-identified pending message immediately. The
// optimistic entry is never patched against the reply; it retires when the
// post-reply authoritative reload replaces the history, which already
// contains the saved user message. A failed send leaves the optimistic
// entry visible and appends nothing.
package store
