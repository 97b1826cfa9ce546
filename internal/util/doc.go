// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small utility functions shared across the docchat TUI.
//
// # Contents
//
//   - AtomicWriteFile: crash-safe file writes (write temp, fsync, rename)
//   - TruncateRunes / TruncateWidth: Unicode-safe string truncation
//   - IntToString / Int64ToString: allocation-light numeric formatting
//
// These helpers exist because they are needed by more than one package;
// anything used in a single place lives next to its caller instead.
package util
