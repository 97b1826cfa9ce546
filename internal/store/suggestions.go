// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// SuggestionsCmd issues a suggestion-feed refresh.
func (s *Store) SuggestionsCmd() tea.Cmd {
	backend := s.backend
	return func() tea.Msg {
		suggestions, err := backend.Suggestions(context.Background())
		return SuggestionsMsg{Suggestions: suggestions, Err: err}
	}
}

// applySuggestions replaces the feed wholesale on success. A failed refresh
// keeps whatever was on screen; stale suggestions beat an empty panel.
func (s *Store) applySuggestions(msg SuggestionsMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("store: suggestion refresh failed: %v", msg.Err)
		return nil
	}
	s.suggestions = msg.Suggestions
	return nil
}
