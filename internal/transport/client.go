// Package transport provides the shared HTTP client used for requests
// against the content API. It applies the configured timeout, optional
// static-token authentication, and the common request headers.
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/greenroomhq/greenroom/pkg/constants"
	"github.com/greenroomhq/greenroom/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with optional authentication.
type Client struct {
	http  *http.Client
	auth  Authenticator
	token string
}

// New creates a new transport client. A zero timeout falls back to
// DefaultHTTPTimeout; an empty token disables authentication.
func New(auth Authenticator, token string, timeout time.Duration) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &Client{
		http:  &http.Client{Timeout: timeout},
		auth:  auth,
		token: token,
	}
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		c.auth.Apply(req, c.token)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent)
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request against the given URL.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapFetch(url, 0, err)
	}
	return c.Do(req)
}

// Timeout reports the per-request timeout the client enforces.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}
