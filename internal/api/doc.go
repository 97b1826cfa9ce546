// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the REST transport for the docchat server.
//
// # Endpoints
//
//   - GET    /conversations/               list conversations
//   - POST   /conversations/               create conversation
//   - PATCH  /conversations/{id}/          rename conversation
//   - DELETE /conversations/{id}/          delete conversation
//   - POST   /conversations/{id}/message/  send message, returns reply
//   - GET    /conversations/suggestions/   prompt suggestions
//   - POST   /login/ /signup/              obtain credential
//   - GET/POST /documents/ (+{id}/process/) source documents
//
// # Failure taxonomy
//
// A missing credential surfaces as auth.ErrNoCredential before any request
// is issued. Network failures wrap the underlying error. Non-2xx responses
// map to ErrAuthFailed, ErrNotFound or *Error carrying the server's detail
// string. The transport never retries; every failure is terminal for that
// user action.
package api
