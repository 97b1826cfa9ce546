// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/store"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

// focusArea identifies which pane owns keyboard input.
type focusArea int

const (
	focusInput focusArea = iota
	focusSidebar
)

const sidebarWidth = 30

// OpenDocumentsMsg asks the root model to switch to the documents view.
type OpenDocumentsMsg struct{}

// LogoutMsg asks the root model to sign the user out.
type LogoutMsg struct{}

// Model is the chat view: a conversation sidebar, the message transcript,
// the input line and the suggestion row. All conversation state lives in
// the store; the model holds only presentation state (focus, cursor
// position, scroll, in-progress drafts).
type Model struct {
	theme *styles.Theme
	store *store.Store
	keys  KeyMap

	input     textinput.Model
	editInput textinput.Model
	viewport  viewport.Model
	spin      spinner.Model
	markdown  *renderer

	width  int
	height int
	ready  bool

	focus  focusArea
	cursor int

	// confirmDelete holds the conversation id awaiting delete confirmation,
	// zero when no confirmation is pending.
	confirmDelete int64

	// suggestIdx is the highlighted suggestion, -1 when none.
	suggestIdx int

	showTimestamps bool
	errText        string
}

// New creates the chat view over the given store.
func New(theme *styles.Theme, st *store.Store, useMarkdown, showTimestamps bool) Model {
	input := textinput.New()
	input.Placeholder = "Ask about your documents..."
	input.Prompt = "> "
	input.PromptStyle = theme.InputPrompt
	input.CharLimit = 4000
	input.Focus()

	editInput := textinput.New()
	editInput.Prompt = ""
	editInput.CharLimit = 200

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.Spinner),
	)

	m := Model{
		theme:          theme,
		store:          st,
		keys:           DefaultKeyMap(),
		input:          input,
		editInput:      editInput,
		spin:           spin,
		suggestIdx:     -1,
		showTimestamps: showTimestamps,
	}
	if useMarkdown {
		m.markdown = newRenderer()
	}
	return m
}

// Init kicks off the initial conversation load and suggestion fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spin.Tick,
		m.store.LoadCmd(),
		m.store.SuggestionsCmd(),
	)
}

// cursorConversationID returns the id of the sidebar row under the cursor,
// zero when the list is empty.
func (m Model) cursorConversationID() int64 {
	convs := m.store.Conversations()
	if len(convs) == 0 {
		return 0
	}
	if m.cursor >= len(convs) {
		return convs[len(convs)-1].ID
	}
	return convs[m.cursor].ID
}

// clampCursor keeps the sidebar cursor inside the list after mutations.
func (m *Model) clampCursor() {
	n := len(m.store.Conversations())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// cursorToActive moves the sidebar cursor onto the active conversation.
func (m *Model) cursorToActive() {
	active := m.store.ActiveID()
	for i, c := range m.store.Conversations() {
		if c.ID == active {
			m.cursor = i
			return
		}
	}
}
