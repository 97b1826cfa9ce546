// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package documents provides the document library view: the list of
// uploaded source documents, the upload form, and the processing trigger
// that makes a document answerable.
package documents

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

// CloseMsg asks the root model to return to the chat view.
type CloseMsg struct{}

// docsLoadedMsg carries the result of a document-list fetch.
type docsLoadedMsg struct {
	docs []*model.Document
	err  error
}

// uploadedMsg carries the result of an upload.
type uploadedMsg struct {
	doc *model.Document
	err error
}

// processedMsg carries the result of a processing request.
type processedMsg struct {
	id     int64
	chunks int
	err    error
}

// Model is the document library view.
type Model struct {
	theme  *styles.Theme
	client *api.Client

	docs    []*model.Document
	cursor  int
	loading bool
	busy    bool
	status  string
	errText string

	// uploading switches the view into the upload form.
	uploading  bool
	pathInput  textinput.Model
	titleInput textinput.Model
	formFocus  int

	spin   spinner.Model
	width  int
	height int
}

// New creates the document library view.
func New(theme *styles.Theme, client *api.Client) Model {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/document.pdf"
	pathInput.Prompt = ""
	pathInput.CharLimit = 1024

	titleInput := textinput.New()
	titleInput.Placeholder = "title (defaults to filename)"
	titleInput.Prompt = ""
	titleInput.CharLimit = 200

	return Model{
		theme:      theme,
		client:     client,
		pathInput:  pathInput,
		titleInput: titleInput,
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Spinner),
		),
	}
}

// Init fetches the document list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

func (m *Model) loadCmd() tea.Cmd {
	m.loading = true
	client := m.client
	return func() tea.Msg {
		docs, err := client.ListDocuments(context.Background())
		return docsLoadedMsg{docs: docs, err: err}
	}
}

func (m Model) selected() *model.Document {
	if len(m.docs) == 0 || m.cursor >= len(m.docs) {
		return nil
	}
	return m.docs[m.cursor]
}

// Update handles messages for the document library.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case docsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.docs = msg.docs
		if m.cursor >= len(m.docs) && len(m.docs) > 0 {
			m.cursor = len(m.docs) - 1
		}
		return m, nil

	case uploadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.uploading = false
		m.pathInput.Reset()
		m.titleInput.Reset()
		m.status = fmt.Sprintf("Uploaded %q. Press p to process it.", msg.doc.Title)
		return m, m.loadCmd()

	case processedMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.status = fmt.Sprintf("Processed into %d chunks.", msg.chunks)
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.uploading {
			return m.handleFormKey(msg)
		}
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.docs)-1 {
			m.cursor++
		}

	case "u":
		m.uploading = true
		m.formFocus = 0
		m.pathInput.Focus()
		m.titleInput.Blur()
		m.status = ""

	case "p":
		doc := m.selected()
		if doc == nil {
			return m, nil
		}
		if doc.IsProcessed {
			m.status = "Already processed."
			return m, nil
		}
		m.busy = true
		client := m.client
		id := doc.ID
		return m, func() tea.Msg {
			chunks, err := client.ProcessDocument(context.Background(), id)
			return processedMsg{id: id, chunks: chunks, err: err}
		}

	case "r":
		return m, m.loadCmd()

	case "esc", "ctrl+o", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.uploading = false
		m.pathInput.Reset()
		m.titleInput.Reset()
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.formFocus = 1 - m.formFocus
		if m.formFocus == 0 {
			m.pathInput.Focus()
			m.titleInput.Blur()
		} else {
			m.titleInput.Focus()
			m.pathInput.Blur()
		}
		return m, nil

	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			m.errText = "File path is required"
			return m, nil
		}
		m.busy = true
		m.errText = ""
		client := m.client
		title := strings.TrimSpace(m.titleInput.Value())
		return m, func() tea.Msg {
			doc, err := client.UploadDocument(context.Background(), title, path)
			return uploadedMsg{doc: doc, err: err}
		}
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.pathInput, cmd = m.pathInput.Update(msg)
	} else {
		m.titleInput, cmd = m.titleInput.Update(msg)
	}
	return m, cmd
}
