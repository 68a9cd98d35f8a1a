// Package wpapi is a read-only client for a WordPress-style REST content API.
//
// It resolves taxonomy slugs to terms, lists paginated post collections and
// walks the whole catalog. Pagination counts are taken from the
// X-WP-Total and X-WP-TotalPages response headers exactly as the server
// declares them.
package wpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every upstream request when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

const (
	headerTotal      = "X-WP-Total"
	headerTotalPages = "X-WP-TotalPages"
)

// Config configures a Client.
type Config struct {
	BaseURL   string        // e.g. https://example.com/wp-json/wp/v2
	Timeout   time.Duration // default DefaultTimeout
	UserAgent string
}

// Client talks to the content API. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	log       *zap.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is left as is.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for upstream failures.
func WithLogger(log *zap.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient returns a Client for cfg.BaseURL.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("wpapi: base URL is required")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("wpapi: invalid base URL: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: timeout},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// response is a decoded 2xx reply plus its pagination headers.
type response struct {
	total      int
	totalPages int
}

// get issues GET {baseURL}/{path}?{query} and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) (response, error) {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return response{}, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.log.Warn("content API request failed",
			zap.String("op", op),
			zap.String("url", u),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return response{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ue := &UpstreamError{Op: op, URL: u, StatusCode: resp.StatusCode}
		var body wpError
		if json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body) == nil {
			ue.Code = body.Code
			ue.Message = body.Message
		}
		c.log.Warn("content API returned non-success status",
			zap.String("op", op),
			zap.String("url", u),
			zap.Int("status_code", resp.StatusCode),
			zap.String("code", ue.Code),
			zap.Duration("duration", duration),
		)
		return response{}, ue
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error("failed to decode content API response",
			zap.String("op", op),
			zap.String("url", u),
			zap.Error(err),
		)
		return response{}, fmt.Errorf("%s: decode response: %w", op, err)
	}

	return response{
		total:      headerInt(resp.Header, headerTotal),
		totalPages: headerInt(resp.Header, headerTotalPages),
	}, nil
}

// headerInt parses a count header. Missing or malformed values read as zero.
func headerInt(h http.Header, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(h.Get(key)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
