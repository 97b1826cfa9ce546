// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/docchat/docchat-tui/internal/model"
	"github.com/docchat/docchat-tui/internal/util"
)

// Trailing slashes are significant: the server redirects without them and
// the redirect drops the request body.

// ListConversations fetches the full conversation collection for the
// authenticated user, in server display order.
func (c *Client) ListConversations(ctx context.Context) ([]*model.Conversation, error) {
	var convs []*model.Conversation
	if err := c.doJSON(ctx, http.MethodGet, "/conversations/", nil, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

// CreateConversation creates a conversation with the given title.
func (c *Client) CreateConversation(ctx context.Context, title string) (*model.Conversation, error) {
	req := struct {
		Title string `json:"title"`
	}{Title: title}

	var conv model.Conversation
	if err := c.doJSON(ctx, http.MethodPost, "/conversations/", req, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// RenameConversation updates only the title of a conversation.
func (c *Client) RenameConversation(ctx context.Context, id int64, title string) (*model.Conversation, error) {
	req := struct {
		Title string `json:"title"`
	}{Title: title}

	var conv model.Conversation
	path := "/conversations/" + util.Int64ToString(id) + "/"
	if err := c.doJSON(ctx, http.MethodPatch, path, req, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// DeleteConversation removes a conversation server-side.
func (c *Client) DeleteConversation(ctx context.Context, id int64) error {
	path := "/conversations/" + util.Int64ToString(id) + "/"
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// SendMessage posts the user's message content and returns the assistant's
// reply. The server persists both sides of the exchange; the authoritative
// history is picked up by the next ListConversations.
func (c *Client) SendMessage(ctx context.Context, conversationID int64, content string) (*model.Message, error) {
	req := struct {
		Content string `json:"content"`
	}{Content: content}

	var reply model.Message
	path := "/conversations/" + util.Int64ToString(conversationID) + "/message/"
	if err := c.doJSON(ctx, http.MethodPost, path, req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Suggestions fetches the server-proposed prompt strings. Ordering and
// content are entirely server-decided; the client replaces, never merges.
func (c *Client) Suggestions(ctx context.Context) ([]string, error) {
	var suggestions []string
	if err := c.doJSON(ctx, http.MethodGet, "/conversations/suggestions/", nil, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}
