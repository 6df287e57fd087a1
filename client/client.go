// Package client talks to the notes REST API on behalf of the command line.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TokenSource supplies the bearer token for protected calls and receives the
// new access token after a refresh.
type TokenSource interface {
	AccessToken() string
	RefreshToken() string
	SetAccessToken(access string) error
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *zap.Logger
}

type Option func(*Client)

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a client for the API rooted at baseURL, e.g. http://localhost:8000.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// protected sends an authenticated request. A 401 answer triggers one token
// refresh followed by one retry.
func (c *Client) protected(ctx context.Context, method, path string, in, out any, want ...int) error {
	if c.tokens == nil || c.tokens.AccessToken() == "" {
		return ErrNotLoggedIn
	}

	err := c.do(ctx, method, path, c.tokens.AccessToken(), in, out, want...)
	if !IsStatus(err, http.StatusUnauthorized) || c.tokens.RefreshToken() == "" {
		return err
	}

	c.logger.Debug("access token rejected, refreshing", zap.String("path", path))
	access, rerr := c.Refresh(ctx, c.tokens.RefreshToken())
	if rerr != nil {
		c.logger.Debug("token refresh failed", zap.Error(rerr))
		return err
	}
	if serr := c.tokens.SetAccessToken(access); serr != nil {
		return fmt.Errorf("store refreshed token: %w", serr)
	}
	return c.do(ctx, method, path, access, in, out, want...)
}

// do performs one request. want lists the accepted status codes; any 2xx is
// accepted when it is empty.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any, want ...int) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if !accepted(resp.StatusCode, want) {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func accepted(status int, want []int) bool {
	if len(want) == 0 {
		return status >= 200 && status < 300
	}
	for _, w := range want {
		if status == w {
			return true
		}
	}
	return false
}

// IsUnauthorized reports whether err means the stored session is no longer
// usable and the user has to log in again.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrNotLoggedIn) || IsStatus(err, http.StatusUnauthorized)
}
