// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine orchestrates candidate discovery, metric computation, composite
// scoring and top-K selection for all recommendation domains. One Engine
// serves concurrent requests; the only shared mutable state is the
// injected cache and the atomic counters.
type Engine struct {
	cfg      Config
	provider DataProvider
	cache    Cache
	logger   zerolog.Logger

	requests  atomic.Int64
	cacheHits atomic.Int64
	emptySeed atomic.Int64
}

// Stats is a snapshot of the engine counters.
type Stats struct {
	Requests   int64 `json:"requests"`
	CacheHits  int64 `json:"cache_hits"`
	EmptySeeds int64 `json:"empty_seeds"`
}

// NewEngine validates the configuration and builds an Engine. A nil cache
// disables caching.
func NewEngine(cfg Config, provider DataProvider, cache Cache, logger zerolog.Logger) (*Engine, error) {
	if provider == nil {
		return nil, fmt.Errorf("recommend: nil data provider")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("recommend: invalid config: %w", err)
	}
	if cfg.CategoryKeywords == nil {
		cfg.CategoryKeywords = DefaultCategoryKeywords()
	}
	if cache == nil {
		cache = NopCache{}
	}
	return &Engine{
		cfg:      cfg,
		provider: provider,
		cache:    cache,
		logger:   logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:   e.requests.Load(),
		CacheHits:  e.cacheHits.Load(),
		EmptySeeds: e.emptySeed.Load(),
	}
}

// InvalidateUser drops every cached response for a user. Called when the
// user's graph or profile changes.
func (e *Engine) InvalidateUser(ctx context.Context, userID string) {
	for _, op := range []string{"friends", "projects", "teammates"} {
		for limit := 1; limit <= e.cfg.Limits.MaxLimit; limit++ {
			e.cache.Delete(ctx, cacheKey(op, userID, limit))
		}
	}
}

// newMetadata stamps a fresh request id.
func (e *Engine) newMetadata() Metadata {
	return Metadata{
		RequestID:   uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
}

// cacheKey builds the per-user, per-operation cache key.
func cacheKey(op, id string, limit int) string {
	return fmt.Sprintf("rec:%s:%s:%d", op, id, limit)
}

// lookupCached fetches and decodes a cached response. An undecodable
// entry is dropped and treated as a miss.
func lookupCached[T any](ctx context.Context, e *Engine, key string, skip bool) (*T, bool) {
	if skip || e.cfg.CacheTTL <= 0 {
		return nil, false
	}
	data, ok := e.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var resp T
	if err := json.Unmarshal(data, &resp); err != nil {
		e.logger.Debug().Err(err).Str("key", key).Msg("Dropping undecodable cache entry")
		e.cache.Delete(ctx, key)
		return nil, false
	}
	e.cacheHits.Add(1)
	return &resp, true
}

// storeCached serializes and stores a response. Failures are logged and
// ignored; the cache is best effort.
func storeCached[T any](ctx context.Context, e *Engine, key string, resp *T) {
	if e.cfg.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		e.logger.Debug().Err(err).Str("key", key).Msg("Failed to serialize response for cache")
		return
	}
	e.cache.Set(ctx, key, data, e.cfg.CacheTTL)
}

// seedProfile resolves the seed user for a request. A missing or
// unresolvable seed is not an error: the caller returns an empty response
// with a success shape.
func (e *Engine) seedProfile(ctx context.Context, userID string) (*Profile, bool) {
	profile, err := e.provider.GetProfile(ctx, userID)
	if err != nil {
		e.emptySeed.Add(1)
		e.logger.Warn().Err(err).Str("user", userID).
			Msg("Seed profile unresolved, returning empty recommendation set")
		return nil, false
	}
	return profile, true
}

// feedbackOrNeutral looks up a user's aggregate feedback, substituting the
// neutral score when unavailable.
func (e *Engine) feedbackOrNeutral(ctx context.Context, userID string) float64 {
	score, err := e.provider.GetFeedbackScore(ctx, userID)
	if err != nil {
		e.logger.Debug().Err(err).Str("user", userID).
			Msg("Feedback unavailable, using neutral score")
		return NeutralFeedbackScore
	}
	return clamp01(score)
}
