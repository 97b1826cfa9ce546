// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth holds the bearer credential for the docchat server.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/docchat/docchat-tui/internal/util"
)

// ErrNoCredential indicates no user is signed in.
var ErrNoCredential = errors.New("not signed in")

// Credential is the opaque bearer token and user identity returned by the
// server on login or signup. There is at most one per process.
type Credential struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// =============================================================================
// CREDENTIAL STORE
// =============================================================================

// Store owns the process-wide credential. It is created empty, filled on
// login/signup success and torn down on logout; every authenticated request
// reads the token through it. Persistence is a single JSON file so a restart
// does not force a fresh login.
type Store struct {
	mu   sync.Mutex
	cred *Credential
	path string
}

// NewStore creates a credential store persisting to the given path.
// An empty path disables persistence (used by tests).
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the standard credential file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".docchat", "credentials.json"), nil
}

// Set installs a credential and persists it.
func (s *Store) Set(cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cred = &cred
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(&cred, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credential: %w", err)
	}
	// 0600: the token grants full account access.
	if err := util.AtomicWriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	return nil
}

// Get returns the current credential, or ErrNoCredential.
func (s *Store) Get() (Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return Credential{}, ErrNoCredential
	}
	return *s.cred, nil
}

// Token returns the bearer token, or an empty string when signed out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return ""
	}
	return s.cred.Token
}

// IsSignedIn reports whether a credential is present.
func (s *Store) IsSignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred != nil
}

// Clear drops the credential and removes the persisted file. Logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cred = nil
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credential file: %w", err)
	}
	return nil
}

// Load reads a previously persisted credential. A missing file is not an
// error; the store just stays signed out.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read credential file: %w", err)
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return fmt.Errorf("failed to decode credential file: %w", err)
	}
	if cred.Token == "" {
		// Corrupt or hand-edited file; treat as signed out.
		return nil
	}
	s.cred = &cred
	return nil
}
