// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"
)

// DefaultTitle is shown for conversations whose server title is empty.
const DefaultTitle = "New Conversation"

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds a chat thread as known to the server, plus any
// optimistic messages appended locally since the last fetch.
type Conversation struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Messages []*Message `json:"messages"`
}

// GetTitle returns the conversation title or the default placeholder.
func (c *Conversation) GetTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return DefaultTitle
}

// SetTitle sets the conversation title.
func (c *Conversation) SetTitle(title string) {
	c.Title = title
	c.UpdatedAt = time.Now()
}

// AppendMessage adds a message to the end of the history.
// Message order within a conversation is append-only and chronological.
func (c *Conversation) AppendMessage(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
}

// ReplaceMessages swaps the whole history for a server-provided one.
// This retires any optimistic entries: the authoritative history already
// contains the saved copy of the user's message.
func (c *Conversation) ReplaceMessages(msgs []*Message) {
	c.Messages = msgs
}

// GetLastMessage returns the most recent message, or nil if empty.
func (c *Conversation) GetLastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// Preview returns a short preview of the latest message for list display.
func (c *Conversation) Preview(maxRunes int) string {
	last := c.GetLastMessage()
	if last == nil {
		return ""
	}
	return last.Preview(maxRunes)
}
