// Package users calls the external user service that owns customer
// accounts. The carts context only needs an existence check.
package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	cartsports "github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// Client validates user identifiers against the remote user service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient instantiates the user service client with sane defaults.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("user service base URL is required")
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// IsValidUser reports whether the user exists in the remote directory.
// Transport failures and 5xx responses are returned as errors so the
// caller can retry; a 404 is a definitive "no".
func (c *Client) IsValidUser(ctx context.Context, userID id.UserID) (bool, error) {
	if c == nil || c.httpClient == nil {
		return false, errors.New("user service client not configured")
	}
	if userID.IsZero() {
		return false, nil
	}
	endpoint := c.baseURL + "/v1/users/" + url.PathEscape(userID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build user lookup request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("call user service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK, resp.StatusCode == http.StatusNoContent:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("user service unexpected status: %s", resp.Status)
	}
}

var _ cartsports.UserProvider = (*Client)(nil)
