// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderer wraps the glamour markdown renderer for assistant replies.
// Glamour renderers are wrap-width specific, so a resize rebuilds it.
type renderer struct {
	width int
	tr    *glamour.TermRenderer
}

func newRenderer() *renderer {
	return &renderer{width: 80}
}

func (r *renderer) setWidth(width int) {
	if width < 20 {
		width = 20
	}
	if width == r.width && r.tr != nil {
		return
	}
	r.width = width
	r.tr = nil
}

// render formats markdown for the terminal. On any renderer error the raw
// text is returned, which is always safe to display.
func (r *renderer) render(content string) string {
	if r.tr == nil {
		tr, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(r.width),
			glamour.WithEmoji(),
		)
		if err != nil {
			return content
		}
		r.tr = tr
	}
	out, err := r.tr.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
