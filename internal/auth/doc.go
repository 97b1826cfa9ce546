// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth holds the single bearer credential used against the docchat
// server.
//
// The credential has a defined lifecycle: created on login/signup success,
// destroyed on logout. It is carried by an explicit Store handed to the
// transport rather than read from ambient globals, so tests and the auth
// surface can control exactly when a credential exists.
//
// The credential file (~/.docchat/credentials.json, mode 0600) is the only
// state docchat persists on the client; all conversation, message and
// document state is refetched from the server each session.
package auth
