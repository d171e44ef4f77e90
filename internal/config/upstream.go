package config

import (
	"fmt"
	"strings"
	"time"
)

// UpstreamConfig holds configuration for the legislative data API.
type UpstreamConfig struct {
	// BaseURL is the root of the legislative API (no trailing slash).
	BaseURL string
	// APIKey is sent on every request; some deployments run keyless mirrors.
	APIKey string
	// RequestTimeout bounds a single upstream HTTP request.
	RequestTimeout time.Duration
	// CacheTTL is how long fetched responses stay valid in the cache.
	CacheTTL time.Duration
}

// LoadUpstreamConfigFromEnv loads upstream API configuration from environment variables.
func LoadUpstreamConfigFromEnv() UpstreamConfig {
	return UpstreamConfig{
		BaseURL:        strings.TrimSuffix(GetEnv("LEGIS_API_BASE_URL", "https://api.iga.in.gov"), "/"),
		APIKey:         GetEnv("LEGIS_API_KEY", ""),
		RequestTimeout: GetEnvDuration("LEGIS_API_TIMEOUT", 15*time.Second),
		CacheTTL:       GetEnvDuration("LEGIS_CACHE_TTL", 30*time.Minute),
	}
}

// Validate validates upstream API configuration.
func (c UpstreamConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("upstream BaseURL must not be empty")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("upstream BaseURL must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("upstream RequestTimeout must be greater than 0")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("upstream CacheTTL must not be negative")
	}
	return nil
}
