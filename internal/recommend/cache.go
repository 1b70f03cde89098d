// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"time"
)

// Cache stores serialized responses keyed per user and operation. The
// Engine treats it as best effort: a miss or a failed write never affects
// correctness, and last-writer-wins semantics are acceptable.
//
// Implementations must be safe for concurrent use. Pass NopCache to
// disable caching.
type Cache interface {
	// Get returns the cached value and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)

	// Delete removes a key. Used when a user's graph changes.
	Delete(ctx context.Context, key string)
}

// NopCache is a Cache that stores nothing. Every Get is a miss.
type NopCache struct{}

// Get always misses.
func (NopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }

// Set discards the value.
func (NopCache) Set(context.Context, string, []byte, time.Duration) {}

// Delete does nothing.
func (NopCache) Delete(context.Context, string) {}

var _ Cache = NopCache{}
