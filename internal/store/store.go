// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store keeps the client-side view of conversations consistent.
package store

import (
	"context"

	"github.com/docchat/docchat-tui/internal/model"
)

// Backend is the slice of the REST transport the store drives. *api.Client
// satisfies it; tests use a stub.
type Backend interface {
	ListConversations(ctx context.Context) ([]*model.Conversation, error)
	CreateConversation(ctx context.Context, title string) (*model.Conversation, error)
	RenameConversation(ctx context.Context, id int64, title string) (*model.Conversation, error)
	DeleteConversation(ctx context.Context, id int64) error
	SendMessage(ctx context.Context, conversationID int64, content string) (*model.Message, error)
	Suggestions(ctx context.Context) ([]string, error)
}

// =============================================================================
// STORE
// =============================================================================

// Store is the authoritative in-memory view of the user's conversations:
// the ordered list, the active conversation's message stream, the suggestion
// feed and the exclusive title-edit session.
//
// The store runs entirely on the Bubble Tea event loop: operations mutate
// state synchronously and hand back a tea.Cmd for the network leg; the
// completion resolves to a typed message that Update applies. There is no
// shared-memory concurrency, but completions can arrive in any order, so
// every list fetch carries a generation token and every reply carries its
// target conversation id — stale resolutions are discarded instead of
// clobbering whatever the user is looking at now.
type Store struct {
	backend Backend

	// Conversation list, server display order except that conversations
	// created this session are prepended (most recently created first).
	conversations []*model.Conversation

	// activeID is the id of the conversation on screen; zero means none.
	// Invariant: when non-zero it references an element of conversations.
	activeID int64

	// stream mirrors the active conversation's messages, including
	// optimistic entries. Rebuilt on every state change that affects it.
	stream []*model.Message

	// Suggestion feed; fully replaced on each refresh, never merged.
	suggestions []string

	// sendsInFlight counts unresolved sends per conversation. Sends are
	// deliberately not serialized; the counter keeps the pending indicator
	// honest when two sends race.
	sendsInFlight map[int64]int

	// loadGen tags the most recently issued list fetch.
	loadGen uint64

	// loading is true while a list fetch is unresolved.
	loading bool

	// editing is the exclusive title-edit session, nil when idle.
	editing *EditSession
}

// New creates an empty store over the given backend.
func New(backend Backend) *Store {
	return &Store{
		backend:       backend,
		sendsInFlight: make(map[int64]int),
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Conversations returns the conversation list in display order.
func (s *Store) Conversations() []*model.Conversation {
	return s.conversations
}

// ActiveID returns the active conversation id, zero when none.
func (s *Store) ActiveID() int64 {
	return s.activeID
}

// Active returns the active conversation, or nil.
func (s *Store) Active() *model.Conversation {
	return s.find(s.activeID)
}

// Messages returns the visible message stream: the active conversation's
// messages including optimistic entries, in append order.
func (s *Store) Messages() []*model.Message {
	return s.stream
}

// Suggestions returns the current prompt suggestions.
func (s *Store) Suggestions() []string {
	return s.suggestions
}

// Pending reports whether a send for the active conversation is unresolved.
func (s *Store) Pending() bool {
	return s.activeID != 0 && s.sendsInFlight[s.activeID] > 0
}

// Loading reports whether a conversation-list fetch is unresolved.
func (s *Store) Loading() bool {
	return s.loading
}

// =============================================================================
// SELECTION
// =============================================================================

// Select makes the given conversation active and swaps the message stream to
// its locally-known messages. Purely synchronous: no network call, no
// partially-switched state is ever visible.
func (s *Store) Select(id int64) {
	if s.find(id) == nil {
		return
	}
	s.activeID = id
	s.syncStream()
}

// Deselect clears the active conversation and empties the stream.
func (s *Store) Deselect() {
	s.activeID = 0
	s.syncStream()
}

// Reset drops all state. Used on logout.
func (s *Store) Reset() {
	s.conversations = nil
	s.activeID = 0
	s.stream = nil
	s.suggestions = nil
	s.sendsInFlight = make(map[int64]int)
	s.loadGen++
	s.loading = false
	s.editing = nil
}

// =============================================================================
// INTERNAL HELPERS
// =============================================================================

// find returns the conversation with the given id, or nil.
func (s *Store) find(id int64) *model.Conversation {
	if id == 0 {
		return nil
	}
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// remove deletes the conversation with the given id from the list.
func (s *Store) remove(id int64) {
	for i, c := range s.conversations {
		if c.ID == id {
			s.conversations = append(s.conversations[:i], s.conversations[i+1:]...)
			return
		}
	}
}

// syncStream rebuilds the visible stream from the active conversation.
// A copy of the slice is taken so callers holding the previous snapshot
// never observe a half-switched stream.
func (s *Store) syncStream() {
	conv := s.find(s.activeID)
	if conv == nil {
		s.activeID = 0
		s.stream = nil
		return
	}
	s.stream = make([]*model.Message, len(conv.Messages))
	copy(s.stream, conv.Messages)
}
