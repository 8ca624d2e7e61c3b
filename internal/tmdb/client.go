// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

// Package tmdb implements the upstream metadata client: cached, rate-limited,
// circuit-breaker-protected access to the TMDB REST API, with all payloads
// normalized into models.ContentRecord before they leave this package.
//
// The package deliberately exposes no errors on its read operations. A failed
// or rejected upstream call degrades to an empty result (nil slice or nil
// pointer) so callers can always render a partial page. Failures are recorded
// in metrics and logs, never in the cache.
package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/cineverse-app/cineverse/internal/cache"
	"github.com/cineverse-app/cineverse/internal/config"
	"github.com/cineverse-app/cineverse/internal/logging"
	"github.com/cineverse-app/cineverse/internal/metrics"
	"github.com/cineverse-app/cineverse/internal/models"
)

const breakerName = "tmdb-api"

// Client is the TMDB API client. It owns no cache storage itself: the
// Cacher is injected so callers control capacity, TTL, and lifetime, and
// tests can substitute their own.
//
// Concurrency: all methods are safe for concurrent use. Identical cache
// misses issued concurrently are coalesced into a single upstream request
// via singleflight.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client

	store cache.Cacher
	ttl   time.Duration
	group singleflight.Group

	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]

	norm Normalizer
}

// NewClient creates a TMDB client from configuration with an injected cache.
//
// Circuit breaker configuration mirrors the rest of our upstream clients:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewClient(cfg *config.TMDBConfig, store cache.Cacher) *Client {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0) // 0 = closed

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		store:   store,
		ttl:     cfg.CacheTTL,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		breaker: breaker,
		norm: Normalizer{
			PosterBase:   cfg.ImageBaseURL,
			BackdropBase: cfg.ImageOriginalURL,
		},
	}
}

// CacheStats exposes the injected cache's counters for the health endpoint.
func (c *Client) CacheStats() cache.Stats {
	return c.store.Stats()
}

// getCached returns the raw response body for an endpoint, serving from the
// cache when possible. Concurrent misses for the same key are coalesced so
// only one upstream request is in flight per key. Only successful responses
// are cached; a failure returns nil and leaves the cache untouched, so the
// next caller retries upstream.
func (c *Client) getCached(ctx context.Context, endpoint string, params url.Values) []byte {
	key := cache.Key(endpoint, params)

	if v, ok := c.store.Get(key); ok {
		metrics.CacheHits.Inc()
		if body, ok := v.([]byte); ok {
			return body
		}
	}
	metrics.CacheMisses.Inc()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		body, err := c.fetch(ctx, endpoint, params)
		if err != nil {
			return nil, err
		}
		c.store.SetWithTTL(key, body, c.ttl)
		metrics.CacheEntries.Set(float64(c.store.Stats().Entries))
		return body, nil
	})
	if err != nil {
		logging.Warn().Err(err).Str("endpoint", endpoint).Msg("Upstream request failed")
		return nil
	}

	body, _ := v.([]byte)
	return body
}

// getUncached returns the raw response body without consulting or filling
// the cache. Free-text search uses this: the query space is unbounded and
// users expect fresh results while typing, so caching would evict useful
// browse entries for one-shot keys.
func (c *Client) getUncached(ctx context.Context, endpoint string, params url.Values) []byte {
	body, err := c.fetch(ctx, endpoint, params)
	if err != nil {
		logging.Warn().Err(err).Str("endpoint", endpoint).Msg("Upstream request failed")
		return nil
	}
	return body
}

// fetch performs one upstream request through the rate limiter and circuit
// breaker. The api_key and language parameters are appended here, after
// cache key construction, so credentials never appear in cache keys.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	return c.breaker.Execute(func() ([]byte, error) {
		return c.doRequest(ctx, endpoint, params)
	})
}

func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	reqURL := c.baseURL + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	metrics.RecordUpstreamRequest(endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, endpoint)
	}

	return body, nil
}

// listEnvelope is the shared shape of TMDB paginated list responses.
type listEnvelope struct {
	Results []Item `json:"results"`
}

// decodeList unmarshals a list response body and normalizes every item.
// A nil or malformed body yields an empty slice. When requirePoster is set,
// items without a poster image are dropped.
func (c *Client) decodeList(body []byte, media MediaType, requirePoster bool) []models.ContentRecord {
	if body == nil {
		return []models.ContentRecord{}
	}
	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		logging.Warn().Err(err).Msg("Failed to decode list response")
		return []models.ContentRecord{}
	}
	records := make([]models.ContentRecord, 0, len(envelope.Results))
	for _, item := range envelope.Results {
		if requirePoster && item.PosterPath == "" {
			continue
		}
		records = append(records, c.norm.Normalize(item, media))
	}
	return records
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
