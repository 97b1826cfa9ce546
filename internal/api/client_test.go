// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat/docchat-tui/internal/auth"
)

// newTestClient returns a client pointed at the server with a signed-in
// credential store.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	creds := auth.NewStore("")
	require.NoError(t, creds.Set(auth.Credential{Token: "testtoken", UserID: 1}))
	return NewClient(server.URL, creds)
}

// =============================================================================
// HEADER AND PATH TESTS
// =============================================================================

func TestClient_AuthorizationHeader(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListConversations(context.Background())
	require.NoError(t, err)

	// DRF token auth scheme, not "Bearer".
	assert.Equal(t, "Token testtoken", gotAuth)
	// Trailing slash is significant.
	assert.Equal(t, "/conversations/", gotPath)
}

func TestClient_MissingCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued without a credential")
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewStore(""))
	_, err := client.ListConversations(context.Background())
	assert.ErrorIs(t, err, auth.ErrNoCredential)
}

// =============================================================================
// CONVERSATION ENDPOINT TESTS
// =============================================================================

func TestClient_ListConversations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`[
			{"id": 2, "title": "Second", "messages": []},
			{"id": 1, "title": "", "messages": [
				{"id": 5, "role": "user", "content": "hi"}
			]}
		]`))
	}))
	defer server.Close()

	convs, err := newTestClient(t, server).ListConversations(context.Background())
	require.NoError(t, err)
	require.Len(t, convs, 2)

	// Server order is preserved as-is.
	assert.Equal(t, int64(2), convs[0].ID)
	assert.Equal(t, int64(1), convs[1].ID)
	assert.Equal(t, "New Conversation", convs[1].GetTitle())
	require.Equal(t, 1, convs[1].MessageCount())
	assert.Equal(t, "hi", convs[1].Messages[0].Content)
}

func TestClient_CreateConversation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/conversations/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 9, "title": "New Conversation", "messages": []}`))
	}))
	defer server.Close()

	conv, err := newTestClient(t, server).CreateConversation(context.Background(), "New Conversation")
	require.NoError(t, err)
	assert.Equal(t, int64(9), conv.ID)
}

func TestClient_RenameConversation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/conversations/7/", r.URL.Path)
		w.Write([]byte(`{"id": 7, "title": "Renamed", "messages": []}`))
	}))
	defer server.Close()

	conv, err := newTestClient(t, server).RenameConversation(context.Background(), 7, "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", conv.Title)
}

func TestClient_DeleteConversation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/conversations/7/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := newTestClient(t, server).DeleteConversation(context.Background(), 7)
	assert.NoError(t, err)
}

func TestClient_SendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/conversations/7/message/", r.URL.Path)
		w.Write([]byte(`{"id": 33, "role": "assistant", "content": "the reply"}`))
	}))
	defer server.Close()

	reply, err := newTestClient(t, server).SendMessage(context.Background(), 7, "Hello")
	require.NoError(t, err)
	assert.Equal(t, int64(33), reply.ID)
	assert.Equal(t, "the reply", reply.Content)
	assert.False(t, reply.Pending)
}

func TestClient_Suggestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversations/suggestions/", r.URL.Path)
		w.Write([]byte(`["Summarize the uploaded document", "What are the key takeaways?"]`))
	}))
	defer server.Close()

	got, err := newTestClient(t, server).Suggestions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Summarize the uploaded document", "What are the key takeaways?"}, got)
}

// =============================================================================
// ERROR MAPPING TESTS
// =============================================================================

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"error": "Invalid token"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrAuthFailed)
				assert.Contains(t, err.Error(), "Invalid token")
			},
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			body:   `{"detail": "Not found."}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name:   "server error with detail",
			status: http.StatusBadRequest,
			body:   `{"error": "Content is required"}`,
			check: func(t *testing.T, err error) {
				var apiErr *Error
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusBadRequest, apiErr.Status)
				assert.Equal(t, "Content is required", apiErr.Detail)
			},
		},
		{
			name:   "server error without detail",
			status: http.StatusInternalServerError,
			body:   `boom`,
			check: func(t *testing.T, err error) {
				var apiErr *Error
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(t, server).ListConversations(context.Background())
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

// =============================================================================
// AUTH ENDPOINT TESTS
// =============================================================================

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login/", r.URL.Path)
		// The credential-granting call itself carries no token.
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"message": "Login successful", "token": "tok123", "user_id": 4, "username": "a@b.c"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewStore(""))
	cred, err := client.Login(context.Background(), "a@b.c", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok123", cred.Token)
	assert.Equal(t, int64(4), cred.UserID)
	assert.Equal(t, "a@b.c", cred.Email)
}

func TestClient_LoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Invalid credentials"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewStore(""))
	_, err := client.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	// The server's detail string must survive for form display.
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestClient_Signup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signup/", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message": "User created successfully", "token": "newtok", "user_id": 8}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, auth.NewStore(""))
	cred, err := client.Signup(context.Background(), "new@b.c", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "newtok", cred.Token)
}

// =============================================================================
// DOCUMENT ENDPOINT TESTS
// =============================================================================

func TestClient_ListDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents/", r.URL.Path)
		w.Write([]byte(`[{"id": 3, "title": "spec.pdf", "file": "/media/documents/spec.pdf", "is_processed": true}]`))
	}))
	defer server.Close()

	docs, err := newTestClient(t, server).ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.True(t, docs[0].IsProcessed)
}

func TestClient_UploadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("some notes"), 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "my notes", r.FormValue("title"))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "notes.txt", header.Filename)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 12, "title": "my notes", "file": "/media/documents/notes.txt", "is_processed": false}`))
	}))
	defer server.Close()

	doc, err := newTestClient(t, server).UploadDocument(context.Background(), "my notes", path)
	require.NoError(t, err)
	assert.Equal(t, int64(12), doc.ID)
}

func TestClient_UploadDocument_DefaultTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, os.WriteFile(path, []byte("# report"), 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "report.md", r.FormValue("title"))
		w.Write([]byte(`{"id": 13, "title": "report.md"}`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server).UploadDocument(context.Background(), "", path)
	require.NoError(t, err)
}

func TestClient_UploadDocument_MissingFile(t *testing.T) {
	client := NewClient("http://unused", auth.NewStore(""))
	_, err := client.UploadDocument(context.Background(), "t", "/no/such/file")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestClient_ProcessDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/documents/3/process/", r.URL.Path)
		w.Write([]byte(`{"status": "processed", "chunks_count": 17}`))
	}))
	defer server.Close()

	chunks, err := newTestClient(t, server).ProcessDocument(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 17, chunks)
}
