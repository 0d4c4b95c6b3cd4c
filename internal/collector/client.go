// Package collector posts feedback payloads to the remote collection endpoint.
package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/wandertools/wandertools/internal/feedback"
	"github.com/wandertools/wandertools/internal/metrics"
)

// DefaultEndpoint is the form endpoint the web front-end posts to.
const DefaultEndpoint = "https://formspree.io/f/mdkdqjvp"

type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the transport timeout. It is the only bound on a request.
// A client passed with WithHTTPClient is copied, never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// RejectedError is returned when the endpoint answers with a non-2xx status.
type RejectedError struct {
	StatusCode int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("collector: endpoint rejected submission: status=%d", e.StatusCode)
}

func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("collector: endpoint is required")
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("collector: parse endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("collector: endpoint must be http(s), got %q", endpoint)
	}
	c := &Client{
		endpoint:   parsed,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// Send posts p as JSON. Any 2xx status is success; the body is never parsed.
func (c *Client) Send(ctx context.Context, p feedback.Payload) error {
	start := time.Now()
	err := c.post(ctx, p)
	metrics.ObserveNetworkRequest("collector", "submit_feedback", c.endpoint.Host, start, err)
	if err != nil {
		c.logger.Debug().Err(err).Str("app", p.App).Msg("collector: submission failed")
	}
	return err
}

func (c *Client) post(ctx context.Context, p feedback.Payload) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("collector: marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("collector: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("collector: request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RejectedError{StatusCode: resp.StatusCode}
	}
	return nil
}

var _ feedback.Sender = (*Client)(nil)
