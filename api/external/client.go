/* client.go
 * Contains the HTTP client used to talk to the prediction backend. Every backend operation is addressed
 * by an (endpoint, action) pair, carries an optional JSON data payload and an optional bearer token,
 * and answers with a JSON envelope containing a success flag
 * Authors: Zachary Bower
 */

package external

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds the wait for a single backend call. Calls are not retried
	DefaultTimeout = 60 * time.Second

	defaultRateLimit = 5.0 // requests per second
	defaultBurst     = 5
	userAgent        = "PrevisioniBot/1.0"
)

// Observer receives one notification per backend call. Implemented by metrics.Metrics
type Observer interface {
	ObserveRequest(endpoint string, action string, status string, elapsed time.Duration)
}

// Client is the prediction backend client
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	observer   Observer
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per call timeout. It is applied to a copy of the HTTP client once every option has run
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRateLimit sets custom rate limiting
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		if rps > 0 && burst > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithMetrics reports every call to o
func WithMetrics(o Observer) ClientOption {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient creates a new backend client for the given base URL
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("backend base url is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
	}

	for _, opt := range opts {
		opt(c)
	}

	// The client may be shared (e.g. http.DefaultClient), so the timeout goes on a copy
	httpClient := &http.Client{Timeout: DefaultTimeout}
	if c.httpClient != nil {
		copied := *c.httpClient
		httpClient = &copied
	}
	if c.timeout > 0 {
		httpClient.Timeout = c.timeout
	}
	c.httpClient = httpClient
	return c, nil
}

// rpcRequest is the body posted for every call
type rpcRequest struct {
	Endpoint string `json:"endpoint"`
	Action   string `json:"action"`
	Data     any    `json:"data,omitempty"`
}

// Call performs one backend operation and decodes the response into out.
// Preconditions: Receives context, endpoint and action names, an optional payload (nil for none), an optional
// bearer token ("" for none) and a pointer to decode the response into (nil to only check the envelope)
// Postconditions: Returns nil on success, *TransportError if the call did not complete (wrapping
// ErrUnauthorized when the backend refused the token) or *RejectedError if the backend answered success: false
func (c *Client) Call(ctx context.Context, endpoint string, action string, data any, token string, out any) error {
	op := endpoint + "." + action
	start := time.Now()

	err := c.call(ctx, op, endpoint, action, data, token, out)
	c.observe(endpoint, action, err, time.Since(start))
	return err
}

func (c *Client) call(ctx context.Context, op string, endpoint string, action string, data any, token string, out any) error {
	// Wait for rate limiter
	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("rate limiter: %w", err)}
	}

	payload, err := json.Marshal(rpcRequest{Endpoint: endpoint, Action: action, Data: data})
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Accept-Encoding", "gzip")
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
		return &TransportError{Op: op, StatusCode: response.StatusCode, Err: ErrUnauthorized}
	}

	body, err := readBody(response)
	if err != nil {
		return &TransportError{Op: op, StatusCode: response.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &TransportError{Op: op, StatusCode: response.StatusCode, Err: fmt.Errorf("unexpected status %d: %s", response.StatusCode, truncate(string(body), 200))}
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &TransportError{Op: op, StatusCode: response.StatusCode, Err: fmt.Errorf("malformed response: %w", err)}
	}
	if !envelope.Success {
		return &RejectedError{Op: op, Message: envelope.Message}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &TransportError{Op: op, StatusCode: response.StatusCode, Err: fmt.Errorf("malformed response: %w", err)}
		}
	}
	return nil
}

// readBody returns the response body, decompressing it if the backend used gzip
func readBody(response *http.Response) ([]byte, error) {
	if response.Header.Get("Content-Encoding") != "gzip" {
		return io.ReadAll(response.Body)
	}

	reader, err := gzip.NewReader(response.Body)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func (c *Client) observe(endpoint string, action string, err error, elapsed time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveRequest(endpoint, action, statusLabel(err), elapsed)
}

// statusLabel classifies a call result for metrics
func statusLabel(err error) string {
	var rejected *RejectedError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.As(err, &rejected):
		return "rejected"
	default:
		return "transport"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
