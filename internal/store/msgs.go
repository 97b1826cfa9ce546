// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import "github.com/docchat/docchat-tui/internal/model"

// =============================================================================
// COMPLETION MESSAGES
// =============================================================================
//
// Every asynchronous store operation resolves to exactly one of these
// messages. Each carries enough identity (generation token or conversation
// id) for Update to decide whether the result still applies.

// ConversationsLoadedMsg carries the result of a conversation-list fetch.
// Gen identifies the fetch; results from superseded fetches are discarded.
type ConversationsLoadedMsg struct {
	Gen           uint64
	Conversations []*model.Conversation
	Err           error
}

// ConversationCreatedMsg carries the result of a create request.
type ConversationCreatedMsg struct {
	Conversation *model.Conversation
	Err          error
}

// ConversationRenamedMsg carries the result of a rename request.
type ConversationRenamedMsg struct {
	ID    int64
	Title string
	Err   error
}

// ConversationDeletedMsg carries the result of a delete request.
type ConversationDeletedMsg struct {
	ID  int64
	Err error
}

// ReplyReceivedMsg carries the assistant reply to a send, tagged with the
// conversation the send targeted so a reply never lands in a conversation
// the user has since switched away from.
type ReplyReceivedMsg struct {
	ConversationID int64
	Reply          *model.Message
	Err            error
}

// SuggestionsMsg carries a refreshed suggestion feed.
type SuggestionsMsg struct {
	Suggestions []string
	Err         error
}
