// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the REST transport for the docchat server.
//
// Every authenticated call reads the bearer token from the credential store
// and sends it as "Authorization: Token <value>". Responses are parsed JSON
// or a typed failure; callers decide whether a failure is surfaced or logged
// and swallowed.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/docchat/docchat-tui/internal/auth"
)

// Configuration constants for the docchat API.
const (
	// DefaultBaseURL is the development server address.
	DefaultBaseURL = "http://localhost:8000/api"

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// Shared HTTP transport for all docchat requests.
var sharedTransport = &http.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
}

// Error variables for common API failures.
var (
	// ErrAuthFailed indicates the token was missing, invalid or expired.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNotFound indicates the resource does not exist (or belongs to
	// another user; the server does not distinguish).
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx response from the server. When the body carries a
// structured {"error": "..."} detail it is preserved for display; login,
// signup and the document flows surface it, everything else logs it.
type Error struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server error (HTTP %d)", e.Status)
}

// errorBody is the structured error shape the server uses.
type errorBody struct {
	Error string `json:"error"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client issues authenticated requests against the docchat server.
type Client struct {
	baseURL    string
	creds      *auth.Store
	httpClient *http.Client
}

// NewClient creates a client reading its token from the given store.
func NewClient(baseURL string, creds *auth.Store) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		creds:   creds,
		httpClient: &http.Client{
			Transport: sharedTransport,
			Timeout:   DefaultTimeout,
		},
	}
}

// WithTimeout sets the request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithBaseURL sets a custom base URL.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// setHeaders sets the headers for an authenticated request.
// The server uses DRF token auth, so the scheme word is "Token".
func (c *Client) setHeaders(req *http.Request) error {
	token := c.creds.Token()
	if token == "" {
		return auth.ErrNoCredential
	}
	req.Header.Set("Authorization", "Token "+token)
	req.Header.Set("Accept", "application/json")
	return nil
}

// logRequest logs an API request without exposing sensitive data.
// Never log headers (auth token) or bodies (message content).
func logRequest(req *http.Request) {
	log.Printf("api: %s %s", req.Method, req.URL.Path)
}

// logResponse logs status and duration only.
func logResponse(resp *http.Response, duration time.Duration) {
	log.Printf("api: %d %s (%v)", resp.StatusCode, resp.Request.URL.Path, duration)
}

// readResponse reads the response body with a size limit.
// SECURITY: Response size limit prevents memory exhaustion.
func readResponse(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// handleErrorResponse converts a non-2xx response to a Go error.
func handleErrorResponse(statusCode int, body []byte) error {
	var eb errorBody
	detail := ""
	if err := json.Unmarshal(body, &eb); err == nil {
		detail = eb.Error
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if detail != "" {
			return fmt.Errorf("%w: %s", ErrAuthFailed, detail)
		}
		return ErrAuthFailed
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &Error{Status: statusCode, Detail: detail}
	}
}

// doJSON performs an authenticated request with an optional JSON body and
// decodes the JSON response into out (when out is non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, out any) error {
	var bodyReader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if err := c.setHeaders(req); err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send executes a prepared request and decodes the response.
func (c *Client) send(req *http.Request, out any) error {
	logRequest(req)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	logResponse(resp, time.Since(start))

	body, err := readResponse(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return handleErrorResponse(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
