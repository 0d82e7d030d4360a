// Package client provides a Go client for the pastery.net paste API.
//
// Basic usage:
//
//	c := client.New() // uses https://www.pastery.net/api/paste/
//	url, err := c.Paste(ctx, client.Paste{APIKey: key, Duration: 1440, Content: []byte("hello")})
package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tombowditch/patisserie/internal/config"
)

const (
	// DefaultEndpoint is the pastery paste creation URL.
	DefaultEndpoint = config.APIURL

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize bounds how much of a reply is read.
	MaxResponseSize = 1 << 20
)

// Client is a pastery API client.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets a custom paste creation URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new pastery client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:  DefaultEndpoint,
		userAgent: config.UserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL pastes are created at.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Paste builds and sends a request for p and returns the new paste's URL.
func (c *Client) Paste(ctx context.Context, p Paste) (string, error) {
	req, err := NewRequest(c.endpoint, p)
	if err != nil {
		return "", err
	}
	return c.Create(ctx, req)
}

// Create sends a built request and returns the new paste's URL.
func (c *Client) Create(ctx context.Context, r *Request) (string, error) {
	req, err := r.HTTPRequest(ctx)
	if err != nil {
		return "", &Error{Code: ErrTransport, Message: "Could not make HTTP request", Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("creating paste", "url", r.Redacted(), "bytes", len(r.Body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Code: ErrTransport, Message: "Could not make HTTP request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return "", &Error{Code: ErrTransport, Message: "Could not read HTTP response", Err: err}
	}

	c.logger.Debug("received response", "status", resp.StatusCode, "bytes", len(body))

	outcome, err := ParseResponse(body)
	if err != nil {
		return "", err
	}
	if !outcome.Success() {
		c.logger.Debug("paste rejected", "message", outcome.Message)
	}
	return outcome.Result()
}
