// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

// Package cache provides response caches for the recommendation engine.
//
// Two implementations are available: Memory, a process-local TTL cache,
// and Badger, a durable embedded store that survives restarts. Both
// satisfy the engine's cache contract: best effort, never an error path.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/campusgraph/campusgraph/internal/recommend"
)

var (
	_ recommend.Cache = (*Memory)(nil)
	_ recommend.Cache = (*Badger)(nil)
)

// entry is a cached value with its expiration time.
type entry struct {
	data      []byte
	expiresAt time.Time
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Keys      int64
}

// Memory is a thread-safe in-process TTL cache. A background goroutine
// sweeps expired entries; Close stops it.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry

	statsMu sync.Mutex
	stats   Stats

	stop chan struct{}
	once sync.Once
}

// NewMemory creates a memory cache and starts its sweep goroutine.
// sweepInterval <= 0 disables background sweeping; expired entries are
// then only removed lazily on Get.
func NewMemory(sweepInterval time.Duration) *Memory {
	m := &Memory{
		entries: make(map[string]entry),
		stop:    make(chan struct{}),
	}
	if sweepInterval > 0 {
		go m.sweepLoop(sweepInterval)
	}
	return m
}

// Get returns the value for key if present and unexpired. An expired
// entry is removed and counted as a miss.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		m.record(func(s *Stats) { s.Misses++ })
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		m.record(func(s *Stats) { s.Misses++; s.Evictions++ })
		return nil, false
	}

	m.record(func(s *Stats) { s.Hits++ })
	return e.data, true
}

// Set stores value under key for ttl. A non-positive ttl is a no-op.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.mu.Lock()
	m.entries[key] = entry{data: value, expiresAt: time.Now().Add(ttl)}
	keys := int64(len(m.entries))
	m.mu.Unlock()

	m.record(func(s *Stats) { s.Keys = keys })
}

// Delete removes key. Safe to call for absent keys.
func (m *Memory) Delete(_ context.Context, key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

// Clear drops every entry.
func (m *Memory) Clear() {
	m.mu.Lock()
	evicted := int64(len(m.entries))
	m.entries = make(map[string]entry)
	m.mu.Unlock()

	m.record(func(s *Stats) { s.Evictions += evicted; s.Keys = 0 })
}

// GetStats returns a snapshot of the counters.
func (m *Memory) GetStats() Stats {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return m.stats
}

// HitRate returns the hit percentage since creation.
func (m *Memory) HitRate() float64 {
	s := m.GetStats()
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Close stops the sweep goroutine. Idempotent.
func (m *Memory) Close() {
	m.once.Do(func() { close(m.stop) })
}

func (m *Memory) record(fn func(*Stats)) {
	m.statsMu.Lock()
	fn(&m.stats)
	m.statsMu.Unlock()
}

func (m *Memory) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *Memory) sweep() {
	now := time.Now()
	m.mu.Lock()
	evicted := int64(0)
	for key, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, key)
			evicted++
		}
	}
	keys := int64(len(m.entries))
	m.mu.Unlock()

	m.record(func(s *Stats) { s.Evictions += evicted; s.Keys = keys })
}
