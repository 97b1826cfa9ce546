// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the authentication form centered on screen.
func (m Model) View() string {
	var b strings.Builder

	title := "Sign in to docchat"
	hint := "Enter submit · Tab next field · Ctrl+T create account · Ctrl+C quit"
	if m.mode == modeSignUp {
		title = "Create a docchat account"
		hint = "Enter submit · Tab next field · Ctrl+T back to sign in · Ctrl+C quit"
	}
	b.WriteString(m.theme.FormTitle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Email", "Password", "Confirm"}
	for i := 0; i < m.fieldCount(); i++ {
		b.WriteString(m.theme.FormLabel.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.FormHint.Render(" signing in..."))
	}
	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorText.Render(m.errText))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.FormHint.Render(hint))

	box := m.theme.FormBox.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
