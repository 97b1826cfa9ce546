// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/util"
)

// chromeHeight is the vertical space consumed by everything that is not
// the transcript: header, input box, suggestion row and status bar.
func chromeHeight(hasError bool) int {
	h := 1 + 3 + 1 + 1
	if hasError {
		h++
	}
	return h
}

// View renders the chat view.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSidebar(),
		m.viewport.View(),
	)
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderSuggestions())
	b.WriteString("\n")
	if m.errText != "" {
		b.WriteString(m.theme.ErrorText.Render(m.errText))
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) renderHeader() string {
	title := "docchat"
	if conv := m.store.Active(); conv != nil {
		title += "  |  " + conv.GetTitle()
	}
	return m.theme.Header.Width(m.width).Render(m.theme.Title.Render(title))
}

// =============================================================================
// SIDEBAR
// =============================================================================

func (m Model) renderSidebar() string {
	height := m.viewport.Height
	rowWidth := sidebarWidth - 2

	var rows []string
	header := "Conversations"
	if m.store.Loading() {
		header += " " + m.spin.View()
	}
	rows = append(rows, m.theme.SidebarTitle.Render(header))

	convs := m.store.Conversations()
	if len(convs) == 0 && !m.store.Loading() {
		rows = append(rows, m.theme.SidebarMeta.Render("No conversations"))
		rows = append(rows, m.theme.SidebarMeta.Render("Ctrl+N to start one"))
	}

	for i, conv := range convs {
		if len(rows) >= height {
			break
		}
		if m.store.IsEditing(conv.ID) {
			// The edit input manages its own width; don't re-truncate the
			// rendered view, it contains cursor escape sequences.
			rows = append(rows, m.theme.SidebarItemEditing.Render(m.editInput.View()))
			continue
		}

		marker := "  "
		if m.focus == focusSidebar && i == m.cursor {
			marker = "▸ "
		}
		label := marker + util.TruncateWidth(conv.GetTitle(), rowWidth-2)
		style := m.theme.SidebarItem
		if conv.ID == m.store.ActiveID() {
			style = m.theme.SidebarItemSelected
			label = util.PadRight(label, rowWidth)
		}
		rows = append(rows, style.Render(label))
	}

	for len(rows) < height {
		rows = append(rows, "")
	}

	return m.theme.Sidebar.
		Width(sidebarWidth).
		Height(height).
		Render(strings.Join(rows, "\n"))
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

func (m Model) renderTranscript() string {
	messages := m.store.Messages()
	if len(messages) == 0 {
		if m.store.ActiveID() == 0 {
			return m.theme.ThinkingText.Render("Select a conversation, or press Ctrl+N to start one.")
		}
		return m.theme.ThinkingText.Render("No messages yet. Ask something about your documents.")
	}

	var parts []string
	for _, msg := range messages {
		parts = append(parts, m.renderMessage(msg))
	}
	if m.store.Pending() {
		parts = append(parts, m.spin.View()+" "+m.theme.ThinkingText.Render("thinking..."))
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) renderMessage(msg *model.Message) string {
	width := m.viewport.Width - 2
	if width < 20 {
		width = 20
	}

	label := m.theme.AssistantLabel.Render(msg.Role.DisplayName())
	if msg.Role == model.RoleUser {
		label = m.theme.UserLabel.Render(msg.Role.DisplayName())
	}
	if m.showTimestamps && !msg.CreatedAt.IsZero() {
		label += " " + m.theme.Timestamp.Render(msg.CreatedAt.Local().Format("15:04"))
	}
	if msg.Pending {
		label += " " + m.theme.Timestamp.Render("(sending...)")
	}

	content := msg.Content
	style := m.theme.AssistantMsg
	switch {
	case msg.Pending:
		style = m.theme.PendingMessage
	case msg.Role == model.RoleUser:
		style = m.theme.UserMessage
	default:
		if m.markdown != nil {
			content = m.markdown.render(content)
		}
	}

	return label + "\n" + style.Width(width).Render(content)
}

// =============================================================================
// INPUT, SUGGESTIONS, STATUS
// =============================================================================

func (m Model) renderInput() string {
	width := m.width - sidebarWidth - 2
	if width < 20 {
		width = 20
	}
	return m.theme.InputContainer.Width(width).Render(m.input.View())
}

func (m Model) renderSuggestions() string {
	if m.confirmDelete != 0 {
		return m.theme.ConfirmText.Render("Delete this conversation? (y/n)")
	}

	suggestions := m.store.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var parts []string
	for i, s := range suggestions {
		s = util.TruncateWidth(s, 40)
		if i == m.suggestIdx {
			parts = append(parts, m.theme.SuggestionSel.Render(s))
		} else {
			parts = append(parts, m.theme.SuggestionItem.Render(s))
		}
	}
	return "Try: " + strings.Join(parts, m.theme.SuggestionItem.Render("  |  "))
}

func (m Model) renderStatusBar() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		parts = append(parts,
			m.theme.ShortcutKey.Render(binding.Help().Key)+
				" "+m.theme.ShortcutDesc.Render(binding.Help().Desc))
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}
