// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/docchat/docchat-tui/internal/auth"
)

// credentialResponse is the server's shape for login and signup success.
type credentialResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// Login exchanges email and password for a bearer credential.
// Unlike the rest of the API, auth failures here carry a server-provided
// detail string meant for direct display on the form.
func (c *Client) Login(ctx context.Context, email, password string) (auth.Credential, error) {
	return c.obtainCredential(ctx, "/login/", email, password)
}

// Signup registers a new account and signs it in. The server issues the
// token in the same response, so no separate login round-trip is needed.
func (c *Client) Signup(ctx context.Context, email, password string) (auth.Credential, error) {
	return c.obtainCredential(ctx, "/signup/", email, password)
}

// obtainCredential performs an unauthenticated credential-granting POST.
func (c *Client) obtainCredential(ctx context.Context, path, email, password string) (auth.Credential, error) {
	reqBody := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return auth.Credential{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return auth.Credential{}, fmt.Errorf("failed to create request: %w", err)
	}
	// No Authorization header: this is the call that obtains the token.
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var cr credentialResponse
	if err := c.send(req, &cr); err != nil {
		return auth.Credential{}, err
	}
	if cr.Token == "" {
		return auth.Credential{}, fmt.Errorf("server returned no token")
	}

	return auth.Credential{Token: cr.Token, UserID: cr.UserID, Email: email}, nil
}
