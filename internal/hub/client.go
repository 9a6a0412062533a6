// Package hub talks to the content hub API: the period catalog and the
// per-period content documents for news, investments, and tips.
package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/datacube/topic-search/internal/domain"
	"github.com/datacube/topic-search/internal/logger"
)

// ErrNotConfigured is returned when the client has no base URL.
var ErrNotConfigured = errors.New("hub: base URL not configured")

const maxResponseBytes = 8 << 20

// ErrorRecorder counts failed upstream fetches. The metrics package
// provides the production implementation.
type ErrorRecorder interface {
	UpstreamError(endpoint string)
}

type noopRecorder struct{}

func (noopRecorder) UpstreamError(string) {}

// Client fetches content documents from the hub API.
type Client struct {
	baseURL  string
	http     *http.Client
	cache    Cache
	cacheTTL time.Duration
	recorder ErrorRecorder
	logger   logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCache attaches a response cache. Fetches check the cache first and
// store successful responses with the given TTL.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithErrorRecorder attaches an upstream error counter.
func WithErrorRecorder(rec ErrorRecorder) Option {
	return func(c *Client) {
		c.recorder = rec
	}
}

// NewClient creates a hub API client.
func NewClient(baseURL string, timeout time.Duration, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		recorder: noopRecorder{},
		logger:   log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Weeks fetches the period catalog.
func (c *Client) Weeks(ctx context.Context) (domain.WeeksDocument, error) {
	var doc domain.WeeksDocument
	err := c.getJSON(ctx, "/weeks", &doc)
	return doc, err
}

// Tech fetches the technology news document for one period.
func (c *Client) Tech(ctx context.Context, periodID string) (domain.TechDocument, error) {
	var doc domain.TechDocument
	err := c.getJSON(ctx, "/tech/"+periodID, &doc)
	return doc, err
}

// Investment fetches the investment document for one period.
func (c *Client) Investment(ctx context.Context, periodID string) (domain.InvestmentDocument, error) {
	var doc domain.InvestmentDocument
	err := c.getJSON(ctx, "/investment/"+periodID, &doc)
	return doc, err
}

// Tips fetches the tips document for one period.
func (c *Client) Tips(ctx context.Context, periodID string) (domain.TipsDocument, error) {
	var doc domain.TipsDocument
	err := c.getJSON(ctx, "/tips/"+periodID, &doc)
	return doc, err
}

// Ping checks reachability of the hub API, for readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	var doc domain.WeeksDocument
	return c.getJSON(ctx, "/weeks", &doc)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, path); ok {
			if err := json.Unmarshal(body, out); err == nil {
				return nil
			}
			// A corrupt cache entry falls through to a live fetch.
		}
	}

	body, err := c.fetch(ctx, path)
	if err != nil {
		c.recorder.UpstreamError(path)
		return err
	}
	c.logger.Debug("hub fetch", logger.String("path", path), logger.Int("bytes", len(body)))

	if err := json.Unmarshal(body, out); err != nil {
		c.recorder.UpstreamError(path)
		return fmt.Errorf("hub: decode %s: %w", path, err)
	}

	if c.cache != nil {
		c.cache.Set(ctx, path, body, c.cacheTTL)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("hub: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hub: fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, fmt.Errorf("hub: fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("hub: read %s: %w", path, err)
	}
	return body, nil
}
