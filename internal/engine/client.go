package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// DefaultBaseURL is the public GNverifier API endpoint.
const DefaultBaseURL = "https://verifier.globalnames.org/api/v1"

// DefaultMinRequestInterval is the minimum spacing between two calls from a
// single client. The public API is a shared service; 500ms matches the
// pacing the service operators ask clients to keep.
const DefaultMinRequestInterval = 500 * time.Millisecond

// DefaultBatchLimit is the maximum number of names sent in a single POST.
// Larger name lists are split into multiple calls and reassembled.
const DefaultBatchLimit = 500

// DefaultBatchConcurrency is the number of batch calls allowed in flight at
// once. Kept low because request pacing serializes most of the work anyway.
const DefaultBatchConcurrency = 4

// maxResponseBody limits how much of a response body is read, both for
// decoding and for error reporting. Protects against a misbehaving endpoint
// streaming unbounded data.
const maxResponseBody = 64 * 1024 * 1024

// Client performs HTTP calls against the verification engine. It is safe for
// concurrent use; the only mutable state is the request pacing clock, which
// is guarded by a mutex.
//
// Construction does not touch the network. The first call to Submit or
// ListSources is the first external contact.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string

	batchLimit  int
	concurrency int

	// Request pacing state. now and sleep are hooks so tests can run
	// without wall-clock delays.
	minInterval time.Duration
	mu          sync.Mutex
	lastRequest time.Time
	now         func() time.Time
	sleep       func(time.Duration)
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different engine endpoint.
// Used by tests to target an httptest server.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the underlying HTTP client. The default client
// carries a 30 second timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// The engine operators ask clients to identify themselves and include a
// contact address.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithBatchLimit caps how many names go into a single POST.
func WithBatchLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.batchLimit = n
		}
	}
}

// WithBatchConcurrency sets how many batch calls may be in flight at once.
func WithBatchConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithMinRequestInterval sets the minimum spacing between calls.
// Zero disables pacing.
func WithMinRequestInterval(d time.Duration) Option {
	return func(c *Client) {
		c.minInterval = d
	}
}

// withClock replaces the pacing clock. Test hook.
func withClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(c *Client) {
		c.now = now
		c.sleep = sleep
	}
}

// NewClient creates a Client against the public engine endpoint.
// Options may retarget, retune, or repace it.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		userAgent:   "gnvclient (+https://github.com/gnvclient/gnvclient)",
		batchLimit:  DefaultBatchLimit,
		concurrency: DefaultBatchConcurrency,
		minInterval: DefaultMinRequestInterval,
		now:         time.Now,
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured engine endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// pace blocks until at least minInterval has passed since the previous call
// issued by this client. The engine is a shared public service; clients are
// expected not to hammer it.
func (c *Client) pace() {
	if c.minInterval <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastRequest.IsZero() {
		elapsed := c.now().Sub(c.lastRequest)
		if elapsed < c.minInterval {
			c.sleep(c.minInterval - elapsed)
		}
	}
	c.lastRequest = c.now()
}

// doJSON executes one HTTP call and decodes the JSON response into out.
// Transport failures and 5xx responses map to ErrEngineUnavailable; other
// non-2xx statuses and undecodable bodies map to ErrEngineProtocol.
func (c *Client) doJSON(ctx context.Context, method, url string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.pace()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Covers connection refusal, DNS failure, request timeout, and
		// context cancellation. All of them mean "engine not reached".
		return fmt.Errorf("%w: %s: %v", ErrEngineUnavailable, url, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("%w: reading response from %s: %v", ErrEngineUnavailable, url, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s returned status %d", ErrEngineUnavailable, url, resp.StatusCode)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s returned status %d", ErrEngineProtocol, url, resp.StatusCode)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: decoding response from %s: %v", ErrEngineProtocol, url, err)
	}
	return nil
}
