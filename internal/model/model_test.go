// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewPendingMessage(t *testing.T) {
	msg := NewPendingMessage("hello")

	if msg.Role != RoleUser {
		t.Errorf("Role = %q, want %q", msg.Role, RoleUser)
	}
	if msg.Content != "hello" {
		t.Errorf("Content = %q, want %q", msg.Content, "hello")
	}
	if !msg.Pending {
		t.Error("Pending should be true")
	}
	if msg.ClientID == "" {
		t.Error("ClientID should be set")
	}
	if msg.ID != 0 {
		t.Errorf("ID = %d, want 0 (never a server id)", msg.ID)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestNewPendingMessage_UniqueClientIDs(t *testing.T) {
	a := NewPendingMessage("a")
	b := NewPendingMessage("b")
	if a.ClientID == b.ClientID {
		t.Errorf("client ids should be unique, both %q", a.ClientID)
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := &Message{Content: "a fairly long message body"}
	if got := msg.Preview(10); got != "a fairl..." {
		t.Errorf("Preview = %q", got)
	}
}

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Assistant"},
		{RoleSystem, "System"},
		{Role("other"), "other"},
	}
	for _, tt := range tests {
		if got := tt.role.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_GetTitle(t *testing.T) {
	c := &Conversation{}
	if got := c.GetTitle(); got != DefaultTitle {
		t.Errorf("GetTitle on empty = %q, want %q", got, DefaultTitle)
	}

	c.SetTitle("Project notes")
	if got := c.GetTitle(); got != "Project notes" {
		t.Errorf("GetTitle = %q", got)
	}
}

func TestConversation_AppendMessage(t *testing.T) {
	c := &Conversation{ID: 1}
	c.AppendMessage(&Message{ID: 10, Role: RoleUser, Content: "hi"})
	c.AppendMessage(&Message{ID: 11, Role: RoleAssistant, Content: "hello"})

	if c.MessageCount() != 2 {
		t.Fatalf("MessageCount = %d, want 2", c.MessageCount())
	}
	if c.Messages[0].ID != 10 || c.Messages[1].ID != 11 {
		t.Error("messages should keep append order")
	}
	if last := c.GetLastMessage(); last == nil || last.ID != 11 {
		t.Error("GetLastMessage should return the newest message")
	}
}

func TestConversation_ReplaceMessages(t *testing.T) {
	c := &Conversation{ID: 1}
	c.AppendMessage(NewPendingMessage("optimistic"))

	server := []*Message{
		{ID: 20, Role: RoleUser, Content: "optimistic"},
		{ID: 21, Role: RoleAssistant, Content: "reply"},
	}
	c.ReplaceMessages(server)

	if c.MessageCount() != 2 {
		t.Fatalf("MessageCount = %d, want 2", c.MessageCount())
	}
	for _, m := range c.Messages {
		if m.Pending {
			t.Error("authoritative history should not contain pending entries")
		}
	}
}

// =============================================================================
// WIRE FORMAT TESTS
// =============================================================================

func TestConversation_DecodeServerJSON(t *testing.T) {
	payload := `{
		"id": 7,
		"title": "Contract review",
		"created_at": "2025-03-01T10:00:00.123456Z",
		"updated_at": "2025-03-01T10:05:00Z",
		"messages": [
			{"id": 1, "role": "user", "content": "Summarize", "created_at": "2025-03-01T10:00:01Z"},
			{"id": 2, "role": "assistant", "content": "Here is a summary.", "created_at": "2025-03-01T10:00:05Z"}
		]
	}`

	var c Conversation
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c.ID != 7 || c.Title != "Contract review" {
		t.Errorf("decoded header = %+v", c)
	}
	if c.MessageCount() != 2 {
		t.Fatalf("decoded %d messages, want 2", c.MessageCount())
	}
	if c.Messages[0].Role != RoleUser || c.Messages[1].Role != RoleAssistant {
		t.Error("decoded roles wrong")
	}
	if c.Messages[0].Pending {
		t.Error("server messages must not decode as pending")
	}
}

func TestDocument_StatusLabel(t *testing.T) {
	d := &Document{}
	if d.StatusLabel() != "pending" {
		t.Errorf("StatusLabel = %q, want pending", d.StatusLabel())
	}
	d.IsProcessed = true
	if d.StatusLabel() != "processed" {
		t.Errorf("StatusLabel = %q, want processed", d.StatusLabel())
	}
}
