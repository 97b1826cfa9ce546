// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/store"
)

// Update handles incoming messages for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if cmd := m.applyStoreMsg(msg); cmd != nil {
		return m, cmd
	}
	return m, nil
}

// applyStoreMsg routes store completion messages and refreshes presentation
// state that depends on them.
func (m *Model) applyStoreMsg(msg tea.Msg) tea.Cmd {
	atBottom := m.viewport.AtBottom()
	cmd := m.store.Update(msg)

	switch msg := msg.(type) {
	case store.ConversationsLoadedMsg:
		m.setError(msg.Err)
		m.cursorToActive()
	case store.ConversationCreatedMsg:
		m.setError(msg.Err)
		m.cursorToActive()
		if msg.Err == nil {
			m.focus = focusInput
			m.input.Focus()
		}
	case store.ConversationRenamedMsg:
		m.setError(msg.Err)
	case store.ConversationDeletedMsg:
		m.setError(msg.Err)
		m.clampCursor()
	case store.ReplyReceivedMsg:
		m.setError(msg.Err)
	case store.SuggestionsMsg:
		if msg.Err == nil && m.suggestIdx >= len(m.store.Suggestions()) {
			m.suggestIdx = -1
		}
	default:
		return cmd
	}

	m.refreshTranscript(atBottom)
	return cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Modal states eat all other keys.
	if m.store.Editing() != nil {
		return m.handleEditKey(msg)
	}
	if m.confirmDelete != 0 {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.FocusNext):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.NewConv):
		return m, m.store.CreateCmd()

	case key.Matches(msg, m.keys.Documents):
		return m, func() tea.Msg { return OpenDocumentsMsg{} }

	case key.Matches(msg, m.keys.Logout):
		return m, func() tea.Msg { return LogoutMsg{} }

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	if m.focus == focusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleInputKey(msg)
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.store.SetEditDraft(m.editInput.Value())
		cmd := m.store.CommitEdit()
		// A blank draft is rejected locally; the session stays open.
		return m, cmd
	case tea.KeyEsc:
		m.store.CancelEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.store.SetEditDraft(m.editInput.Value())
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.confirmDelete
		m.confirmDelete = 0
		return m, m.store.DeleteCmd(id)
	case "n", "N", "esc":
		m.confirmDelete = 0
	}
	return m, nil
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.store.Conversations())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Send):
		if id := m.cursorConversationID(); id != 0 {
			atBottom := true
			m.store.Select(id)
			m.refreshTranscript(atBottom)
			m.focus = focusInput
			m.input.Focus()
		}

	case key.Matches(msg, m.keys.Rename):
		if id := m.cursorConversationID(); id != 0 {
			m.store.BeginEdit(id)
			if e := m.store.Editing(); e != nil {
				m.editInput.SetValue(e.Draft)
				m.editInput.CursorEnd()
				m.editInput.Focus()
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if id := m.cursorConversationID(); id != 0 {
			m.confirmDelete = id
		}
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Send):
		cmd := m.store.Send(m.input.Value())
		if cmd == nil {
			return m, nil
		}
		m.input.Reset()
		m.suggestIdx = -1
		m.refreshTranscript(true)
		return m, cmd

	case key.Matches(msg, m.keys.Suggest):
		if n := len(m.store.Suggestions()); n > 0 {
			m.suggestIdx = (m.suggestIdx + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.UseSuggest):
		if s := m.selectedSuggestion(); s != "" {
			m.input.SetValue(s)
			m.input.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// PRESENTATION HELPERS
// =============================================================================

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusSidebar
		m.input.Blur()
		m.cursorToActive()
	} else {
		m.focus = focusInput
		m.input.Focus()
	}
}

func (m *Model) selectedSuggestion() string {
	suggestions := m.store.Suggestions()
	if m.suggestIdx < 0 || m.suggestIdx >= len(suggestions) {
		return ""
	}
	return suggestions[m.suggestIdx]
}

func (m *Model) setError(err error) {
	if err != nil {
		m.errText = err.Error()
	} else {
		m.errText = ""
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	contentWidth := width - sidebarWidth - 2
	if contentWidth < 20 {
		contentWidth = 20
	}
	contentHeight := height - chromeHeight(m.errText != "")
	if contentHeight < 3 {
		contentHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = contentHeight
	}

	m.input.Width = contentWidth - 4
	m.editInput.Width = sidebarWidth - 4
	if m.markdown != nil {
		m.markdown.setWidth(contentWidth - 2)
	}
	m.refreshTranscript(true)
}

// refreshTranscript re-renders the message stream into the viewport.
// Scroll position is kept unless the view was already following the tail.
func (m *Model) refreshTranscript(follow bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	if follow {
		m.viewport.GotoBottom()
	}
}
