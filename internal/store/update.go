// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import tea "github.com/charmbracelet/bubbletea"

// Update applies a completion message to the store and returns any follow-up
// command. Messages the store does not own return nil untouched, so the
// caller can route every tea.Msg through here unconditionally.
func (s *Store) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ConversationsLoadedMsg:
		return s.applyLoaded(msg)
	case ConversationCreatedMsg:
		return s.applyCreated(msg)
	case ConversationRenamedMsg:
		return s.applyRenamed(msg)
	case ConversationDeletedMsg:
		return s.applyDeleted(msg)
	case ReplyReceivedMsg:
		return s.applyReply(msg)
	case SuggestionsMsg:
		return s.applySuggestions(msg)
	}
	return nil
}
