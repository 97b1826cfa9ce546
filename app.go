// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docchat/docchat-tui/internal/api"
	"github.com/docchat/docchat-tui/internal/auth"
	"github.com/docchat/docchat-tui/internal/config"
	"github.com/docchat/docchat-tui/internal/store"
	"github.com/docchat/docchat-tui/internal/ui/chat"
	"github.com/docchat/docchat-tui/internal/ui/documents"
	"github.com/docchat/docchat-tui/internal/ui/login"
	"github.com/docchat/docchat-tui/internal/ui/styles"
)

// activeView identifies which top-level surface is on screen.
type activeView int

const (
	viewLogin activeView = iota
	viewChat
	viewDocuments
)

// app is the root model. It owns the three surfaces and routes between
// them: the login form until a credential exists, then the chat view, with
// the document library as a modal sibling. Conversation state survives a
// trip to the documents view because the store outlives both.
type app struct {
	theme  *styles.Theme
	cfg    *config.Config
	client *api.Client
	creds  *auth.Store
	store  *store.Store

	view  activeView
	login login.Model
	chat  chat.Model
	docs  documents.Model

	width  int
	height int
}

func newApp(cfg *config.Config, client *api.Client, creds *auth.Store) *app {
	theme := styles.NewTheme()
	st := store.New(client)

	a := &app{
		theme:  theme,
		cfg:    cfg,
		client: client,
		creds:  creds,
		store:  st,
		login:  login.New(theme, client, creds),
		chat:   chat.New(theme, st, cfg.UI.Markdown, cfg.UI.ShowTimestamps),
		docs:   documents.New(theme, client),
	}
	if creds.IsSignedIn() {
		a.view = viewChat
	}
	return a
}

// Init starts whichever surface the stored credential allows.
func (a *app) Init() tea.Cmd {
	if a.view == viewChat {
		return a.chat.Init()
	}
	return a.login.Init()
}

// Update routes messages to the active surface and handles transitions.
func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		cmds = append(cmds, cmd)
		a.chat, cmd = a.chat.Update(msg)
		cmds = append(cmds, cmd)
		a.docs, cmd = a.docs.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case login.SignedInMsg:
		a.view = viewChat
		return a, a.chat.Init()

	case chat.OpenDocumentsMsg:
		a.view = viewDocuments
		return a, a.docs.Init()

	case documents.CloseMsg:
		a.view = viewChat
		return a, nil

	case chat.LogoutMsg:
		return a.logout()

	case tea.KeyMsg:
		if a.view == viewLogin && msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.routeToActive(msg)
	}

	// Non-key messages (network completions, ticks) go to every signed-in
	// surface: a reply may resolve while the documents view is on screen,
	// and the store must still apply it.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if a.view == viewLogin {
		a.login, cmd = a.login.Update(msg)
		return a, cmd
	}
	a.chat, cmd = a.chat.Update(msg)
	cmds = append(cmds, cmd)
	a.docs, cmd = a.docs.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// routeToActive delivers a key press to the surface that owns the keyboard.
func (a *app) routeToActive(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewChat:
		a.chat, cmd = a.chat.Update(msg)
	case viewDocuments:
		a.docs, cmd = a.docs.Update(msg)
	}
	return cmd
}

// logout clears the persisted credential, drops all conversation state and
// returns to a fresh login form.
func (a *app) logout() (tea.Model, tea.Cmd) {
	if err := a.creds.Clear(); err != nil {
		// A stale file on disk only means the next start gets a 401.
		log.Printf("logout: could not clear credential file: %v", err)
	}
	a.store.Reset()
	a.login = login.New(a.theme, a.client, a.creds)
	a.view = viewLogin

	var cmd tea.Cmd
	if a.width > 0 {
		a.login, cmd = a.login.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	return a, tea.Batch(a.login.Init(), cmd)
}

// View renders the active surface.
func (a *app) View() string {
	switch a.view {
	case viewLogin:
		return a.login.View()
	case viewDocuments:
		return a.docs.View()
	default:
		return a.chat.View()
	}
}
