// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// TITLE EDITING
// =============================================================================

// EditSession is an in-place rename of one conversation title. At most one
// session exists at a time.
type EditSession struct {
	ConversationID int64
	Draft          string
}

// Editing returns the open edit session, nil when none.
func (s *Store) Editing() *EditSession {
	return s.editing
}

// IsEditing reports whether the given conversation's title is being edited.
func (s *Store) IsEditing(id int64) bool {
	return s.editing != nil && s.editing.ConversationID == id
}

// BeginEdit opens an edit session for the given conversation, seeding the
// draft with its current title. Opening a session for another row abandons
// the previous draft without saving it.
func (s *Store) BeginEdit(id int64) {
	conv := s.find(id)
	if conv == nil {
		return
	}
	s.editing = &EditSession{ConversationID: id, Draft: conv.Title}
}

// SetEditDraft records the in-progress draft text.
func (s *Store) SetEditDraft(draft string) {
	if s.editing == nil {
		return
	}
	s.editing.Draft = draft
}

// CancelEdit discards the draft and closes the session. The stored title is
// untouched.
func (s *Store) CancelEdit() {
	s.editing = nil
}

// CommitEdit submits the draft as the conversation's new title. A blank
// draft is rejected locally: nil is returned and the session stays open.
// The session also stays open until the rename completes, closing on
// success and surviving failure so the draft can be corrected.
func (s *Store) CommitEdit() tea.Cmd {
	if s.editing == nil {
		return nil
	}
	title := strings.TrimSpace(s.editing.Draft)
	if title == "" {
		return nil
	}
	return s.RenameCmd(s.editing.ConversationID, title)
}
