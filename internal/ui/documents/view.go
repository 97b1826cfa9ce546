// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package documents

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docchat/docchat-tui/internal/ui/styles"
	"github.com/docchat/docchat-tui/internal/util"
)

// View renders the document library.
func (m Model) View() string {
	if m.uploading {
		return m.renderUploadForm()
	}

	var b strings.Builder
	header := "Documents"
	if m.loading || m.busy {
		header += " " + m.spin.View()
	}
	b.WriteString(m.theme.Header.Width(m.width).Render(m.theme.Title.Render(header)))
	b.WriteString("\n\n")

	if len(m.docs) == 0 && !m.loading {
		b.WriteString(m.theme.FormHint.Render("No documents yet. Press u to upload one."))
		b.WriteString("\n")
	}

	for i, doc := range m.docs {
		marker := "  "
		if i == m.cursor {
			marker = "▸ "
		}
		status := m.theme.DocPending.Render(doc.StatusLabel())
		if doc.IsProcessed {
			status = m.theme.DocReady.Render(doc.StatusLabel())
		}
		title := util.TruncateWidth(doc.Title, 50)
		line := marker + util.PadRight(title, 52) + status
		if !doc.UploadedAt.IsZero() {
			line += "  " + m.theme.Timestamp.Render(doc.UploadedAt.Local().Format("2006-01-02"))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styles.RenderSuccess(m.status))
		b.WriteString("\n")
	}
	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorText.Render(m.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render("u upload · p process · r refresh · Esc back to chat"))
	return b.String()
}

func (m Model) renderUploadForm() string {
	var b strings.Builder
	b.WriteString(m.theme.FormTitle.Render("Upload a document"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.FormLabel.Render("File path"))
	b.WriteString("\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n")
	b.WriteString(m.theme.FormLabel.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.FormHint.Render(" uploading..."))
	}
	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorText.Render(m.errText))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.FormHint.Render("Enter upload · Tab switch field · Esc cancel"))

	box := m.theme.FormBox.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
