// Package client talks to the users and posts REST API.
//
// Every error returned by this package is an *APIError. Mutations also
// report their outcome to a Notifier, whether or not the caller inspects
// the error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is the address of a locally running server.
const DefaultBaseURL = "http://localhost:3000"

// Client is an API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	notifier   Notifier

	users *UsersAPI
	posts *PostsAPI
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. The default has no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithNotifier sets where mutation outcomes are reported.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// New creates a client for baseURL, or DefaultBaseURL when empty.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		notifier:   NewLogNotifier(zap.NewNop()),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.users = &UsersAPI{c: c}
	c.posts = &PostsAPI{c: c}
	return c
}

// BaseURL returns the server address the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Users returns the users resource.
func (c *Client) Users() *UsersAPI { return c.users }

// Posts returns the posts resource.
func (c *Client) Posts() *PostsAPI { return c.posts }

// Health checks that the server answers GET /health.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// mutate performs a write and reports its outcome to the notifier.
func (c *Client) mutate(ctx context.Context, method, path string, body, out any, success, failure string) error {
	if err := c.do(ctx, method, path, body, out); err != nil {
		c.notifier.Error(failure)
		return err
	}
	c.notifier.Success(success)
	return nil
}

// do sends a JSON request and decodes a JSON response into out, if non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return unexpectedError(fmt.Errorf("failed to encode request: %w", err))
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return unexpectedError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return noResponseError()
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return unexpectedError(fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

// parseError uses the server's message field when present.
func parseError(resp *http.Response) *APIError {
	b, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &errResp); err == nil {
		return statusError(resp.StatusCode, errResp.Message)
	}
	return statusError(resp.StatusCode, "")
}
