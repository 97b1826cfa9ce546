// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the sign-in and sign-up forms.
//
// Server-side failures (wrong password, duplicate email) carry a detail
// string meant for the user; it is displayed on the form verbatim rather
// than translated into a generic message.
package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/auth"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

// mode selects between the sign-in and sign-up variants of the form.
type mode int

const (
	modeSignIn mode = iota
	modeSignUp
)

const (
	fieldEmail = iota
	fieldPassword
	fieldConfirm
)

// SignedInMsg tells the root model that authentication succeeded and the
// credential has been persisted.
type SignedInMsg struct {
	Credential auth.Credential
}

// resultMsg carries the outcome of a login or signup request.
type resultMsg struct {
	cred auth.Credential
	err  error
}

// Model is the authentication form.
type Model struct {
	theme  *styles.Theme
	client *api.Client
	creds  *auth.Store

	mode       mode
	inputs     []textinput.Model
	focusIdx   int
	submitting bool
	errText    string
	spin       spinner.Model

	width  int
	height int
}

// New creates the authentication form in sign-in mode.
func New(theme *styles.Theme, client *api.Client, creds *auth.Store) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.Prompt = ""
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = ""
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.Prompt = ""
	confirm.CharLimit = 128
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'

	return Model{
		theme:  theme,
		client: client,
		creds:  creds,
		inputs: []textinput.Model{email, password, confirm},
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Spinner),
		),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

// fieldCount returns how many inputs the current mode shows.
func (m Model) fieldCount() int {
	if m.mode == modeSignUp {
		return 3
	}
	return 2
}

// Update handles messages for the authentication form.
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

	case resultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		cred := msg.cred
		return m, func() tea.Msg { return SignedInMsg{Credential: cred} }

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setFocus((m.focusIdx + 1) % m.fieldCount())
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focusIdx - 1 + m.fieldCount()) % m.fieldCount())
		return m, nil

	case "ctrl+t":
		m.toggleMode()
		return m, nil

	case "enter":
		if m.focusIdx < m.fieldCount()-1 {
			m.setFocus(m.focusIdx + 1)
			return m, nil
		}
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(idx int) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = idx
	m.inputs[m.focusIdx].Focus()
}

func (m *Model) toggleMode() {
	if m.mode == modeSignIn {
		m.mode = modeSignUp
	} else {
		m.mode = modeSignIn
		if m.focusIdx >= m.fieldCount() {
			m.setFocus(0)
		}
	}
	m.errText = ""
}

// submit validates locally cheap properties and issues the request.
func (m Model) submit() (Model, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()

	if email == "" || password == "" {
		m.errText = "Email and password are required"
		return m, nil
	}
	if m.mode == modeSignUp && password != m.inputs[fieldConfirm].Value() {
		m.errText = "Passwords do not match"
		return m, nil
	}

	m.submitting = true
	m.errText = ""

	client := m.client
	creds := m.creds
	signup := m.mode == modeSignUp
	return m, func() tea.Msg {
		var cred auth.Credential
		var err error
		if signup {
			cred, err = client.Signup(context.Background(), email, password)
		} else {
			cred, err = client.Login(context.Background(), email, password)
		}
		if err != nil {
			return resultMsg{err: err}
		}
		if err := creds.Set(cred); err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{cred: cred}
	}
}
