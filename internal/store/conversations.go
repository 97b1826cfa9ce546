// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/model"
)

// =============================================================================
// CONVERSATION LIST OPERATIONS
// =============================================================================

// LoadCmd issues an authoritative conversation-list fetch. Each call
// advances the load generation, so an earlier unresolved fetch can no
// longer apply its result.
func (s *Store) LoadCmd() tea.Cmd {
	s.loadGen++
	s.loading = true
	gen := s.loadGen
	backend := s.backend
	return func() tea.Msg {
		convs, err := backend.ListConversations(context.Background())
		return ConversationsLoadedMsg{Gen: gen, Conversations: convs, Err: err}
	}
}

// applyLoaded applies a list-fetch result. Stale generations are discarded
// wholesale. On success the list is replaced and the stream re-derived from
// whatever conversation is active NOW, so a selection made while the fetch
// was in flight is honored rather than clobbered.
func (s *Store) applyLoaded(msg ConversationsLoadedMsg) tea.Cmd {
	if msg.Gen != s.loadGen {
		return nil
	}
	s.loading = false
	if msg.Err != nil {
		log.Printf("store: conversation load failed: %v", msg.Err)
		return nil
	}
	s.conversations = msg.Conversations
	if s.activeID != 0 {
		// Re-derive the stream from authoritative data. This is also how
		// optimistic messages retire: the server history already contains
		// the user message the optimistic entry stood in for.
		s.syncStream()
		return nil
	}
	if len(s.conversations) > 0 {
		s.Select(s.conversations[0].ID)
	}
	return nil
}

// CreateCmd issues a create request for a fresh conversation.
func (s *Store) CreateCmd() tea.Cmd {
	backend := s.backend
	return func() tea.Msg {
		conv, err := backend.CreateConversation(context.Background(), model.DefaultTitle)
		return ConversationCreatedMsg{Conversation: conv, Err: err}
	}
}

// applyCreated prepends the new conversation and makes it active. On
// failure the list is untouched.
func (s *Store) applyCreated(msg ConversationCreatedMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("store: conversation create failed: %v", msg.Err)
		return nil
	}
	s.conversations = append([]*model.Conversation{msg.Conversation}, s.conversations...)
	s.Select(msg.Conversation.ID)
	return nil
}

// RenameCmd issues a rename request for the given conversation.
func (s *Store) RenameCmd(id int64, title string) tea.Cmd {
	backend := s.backend
	return func() tea.Msg {
		conv, err := backend.RenameConversation(context.Background(), id, title)
		applied := title
		if err == nil && conv != nil {
			applied = conv.Title
		}
		return ConversationRenamedMsg{ID: id, Title: applied, Err: err}
	}
}

// applyRenamed updates the local entry's title in place, keeping its
// messages, and closes a matching edit session. On failure the old title
// stands and any matching edit session stays open for correction.
func (s *Store) applyRenamed(msg ConversationRenamedMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("store: conversation rename failed: %v", msg.Err)
		return nil
	}
	if conv := s.find(msg.ID); conv != nil {
		conv.SetTitle(msg.Title)
	}
	if s.editing != nil && s.editing.ConversationID == msg.ID {
		s.editing = nil
	}
	return nil
}

// DeleteCmd issues a delete request for the given conversation. Any
// confirmation step happens before this is called.
func (s *Store) DeleteCmd(id int64) tea.Cmd {
	backend := s.backend
	return func() tea.Msg {
		err := backend.DeleteConversation(context.Background(), id)
		return ConversationDeletedMsg{ID: id, Err: err}
	}
}

// applyDeleted removes the conversation locally. Deleting the active
// conversation clears the selection and empties the stream; no implicit
// fallback selection is made. On failure the conversation stays listed.
func (s *Store) applyDeleted(msg ConversationDeletedMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("store: conversation delete failed: %v", msg.Err)
		return nil
	}
	s.remove(msg.ID)
	delete(s.sendsInFlight, msg.ID)
	if s.editing != nil && s.editing.ConversationID == msg.ID {
		s.editing = nil
	}
	if s.activeID == msg.ID {
		s.Deselect()
	}
	return nil
}
