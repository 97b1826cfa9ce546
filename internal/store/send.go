// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/model"
)

// =============================================================================
// MESSAGE SEND
// =============================================================================

// Send appends an optimistic user message to the active conversation and
// returns the command for the network leg. Returns nil — a no-op — when the
// content is blank or no conversation is active.
//
// Sends are not serialized: a second send while one is pending is issued
// normally, matching how the server treats each message independently.
func (s *Store) Send(content string) tea.Cmd {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	conv := s.find(s.activeID)
	if conv == nil {
		return nil
	}

	conv.AppendMessage(model.NewPendingMessage(content))
	s.syncStream()
	s.sendsInFlight[conv.ID]++

	id := conv.ID
	backend := s.backend
	return func() tea.Msg {
		reply, err := backend.SendMessage(context.Background(), id, content)
		return ReplyReceivedMsg{ConversationID: id, Reply: reply, Err: err}
	}
}

// applyReply lands an assistant reply in the conversation the send targeted,
// whether or not it is still active; the visible stream only changes when it
// is. A successful exchange triggers an authoritative list reload (which
// retires the optimistic entry) and a suggestion refresh. On failure the
// optimistic message stays in place and nothing is appended.
func (s *Store) applyReply(msg ReplyReceivedMsg) tea.Cmd {
	if n := s.sendsInFlight[msg.ConversationID]; n > 1 {
		s.sendsInFlight[msg.ConversationID] = n - 1
	} else {
		delete(s.sendsInFlight, msg.ConversationID)
	}

	if msg.Err != nil {
		log.Printf("store: send to conversation %d failed: %v", msg.ConversationID, msg.Err)
		return nil
	}

	conv := s.find(msg.ConversationID)
	if conv == nil {
		// Deleted while the send was in flight; nowhere to put the reply.
		return nil
	}
	conv.AppendMessage(msg.Reply)
	if s.activeID == conv.ID {
		s.syncStream()
	}
	return tea.Batch(s.LoadCmd(), s.SuggestionsCmd())
}
