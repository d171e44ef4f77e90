// Package upstream provides the legislative data API client with TTL
// response caching. All fetching happens here, at the boundary; the
// analytics core only ever sees fully resolved in-memory collections.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	billmodel "github.com/civicpulse/civicpulse/internal/bill/model"
	"github.com/civicpulse/civicpulse/internal/config"
	"github.com/civicpulse/civicpulse/pkg/retry"
)

// Fetcher is the read-only data source consumed by the analytics service.
type Fetcher interface {
	// FetchBills returns the bill list for a session year.
	FetchBills(ctx context.Context, year string) ([]billmodel.Bill, error)

	// FetchBillDetails returns the enriched record for one bill.
	FetchBillDetails(ctx context.Context, year, billName string) (*billmodel.Details, error)

	// FetchBillActions returns the chronological action log for one bill.
	FetchBillActions(ctx context.Context, year, billName string) ([]billmodel.Action, error)

	// FetchLegislators returns the member list for a session year.
	FetchLegislators(ctx context.Context, year string) ([]billmodel.Legislator, error)
}

// Client fetches from the legislative API over HTTP with retry and caching.
type Client struct {
	cfg      config.UpstreamConfig
	http     *http.Client
	cache    *Cache
	retryCfg retry.Config
	logger   *zap.SugaredLogger
}

var _ Fetcher = (*Client)(nil)

// NewClient creates an upstream API client.
func NewClient(cfg config.UpstreamConfig, cache *Cache, logger *zap.SugaredLogger) *Client {
	return &Client{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		cache:    cache,
		retryCfg: retry.UpstreamConfig(),
		logger:   logger,
	}
}

// listEnvelope matches the upstream list response shape.
type listEnvelope[T any] struct {
	Items []T `json:"items"`
}

// FetchBills returns the bill list for a session year.
func (c *Client) FetchBills(ctx context.Context, year string) ([]billmodel.Bill, error) {
	payload, err := c.get(ctx, year, "bills")
	if err != nil {
		return nil, err
	}
	var envelope listEnvelope[billmodel.Bill]
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("decoding bills response: %w", err)
	}
	return envelope.Items, nil
}

// FetchBillDetails returns the enriched record for one bill.
func (c *Client) FetchBillDetails(ctx context.Context, year, billName string) (*billmodel.Details, error) {
	payload, err := c.get(ctx, year, "bills/"+billName)
	if err != nil {
		return nil, err
	}
	var details billmodel.Details
	if err := json.Unmarshal(payload, &details); err != nil {
		return nil, fmt.Errorf("decoding bill details response: %w", err)
	}
	return &details, nil
}

// FetchBillActions returns the chronological action log for one bill.
func (c *Client) FetchBillActions(ctx context.Context, year, billName string) ([]billmodel.Action, error) {
	payload, err := c.get(ctx, year, "bills/"+billName+"/actions")
	if err != nil {
		return nil, err
	}
	var envelope listEnvelope[billmodel.Action]
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("decoding bill actions response: %w", err)
	}
	return envelope.Items, nil
}

// FetchLegislators returns the member list for a session year.
func (c *Client) FetchLegislators(ctx context.Context, year string) ([]billmodel.Legislator, error) {
	payload, err := c.get(ctx, year, "legislators")
	if err != nil {
		return nil, err
	}
	var envelope listEnvelope[billmodel.Legislator]
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("decoding legislators response: %w", err)
	}
	return envelope.Items, nil
}

// get fetches one endpoint for a year, consulting the cache first. Fetches
// retry on transient network and 5xx failures.
func (c *Client) get(ctx context.Context, year, endpoint string) ([]byte, error) {
	cacheKey := year + "/" + endpoint
	if payload, ok := c.cache.Get(cacheKey); ok {
		c.logger.Debugw("upstream cache hit", "key", cacheKey)
		return payload, nil
	}

	url := fmt.Sprintf("%s/%s/%s", c.cfg.BaseURL, year, endpoint)

	payload, err := retry.DoWithResult(ctx, c.retryCfg, func() ([]byte, error) {
		return c.fetch(ctx, url)
	})
	if err != nil {
		c.logger.Errorw("upstream fetch failed", "url", url, "error", err)
		return nil, err
	}

	c.cache.Set(cacheKey, payload)
	c.logger.Debugw("upstream fetch completed", "key", cacheKey, "bytes", len(payload))
	return payload, nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, billmodel.ErrYearNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}
	return payload, nil
}
