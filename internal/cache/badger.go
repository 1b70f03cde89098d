// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// BadgerConfig configures the durable cache.
type BadgerConfig struct {
	// Path is the database directory. Empty selects in-memory mode,
	// used by tests.
	Path string `koanf:"path" json:"path"`

	// SyncWrites forces fsync on every write. The cache tolerates
	// losing recent entries, so this defaults to false.
	SyncWrites bool `koanf:"sync_writes" json:"sync_writes"`

	// GCInterval is how often the value log garbage collector runs.
	GCInterval time.Duration `koanf:"gc_interval" json:"gc_interval"`
}

// DefaultBadgerConfig returns production defaults.
func DefaultBadgerConfig(path string) BadgerConfig {
	return BadgerConfig{
		Path:       path,
		GCInterval: 10 * time.Minute,
	}
}

// Badger is a durable cache backed by an embedded BadgerDB. Entries carry
// their TTL in the store itself, so cached responses survive restarts and
// expire without a sweeper.
type Badger struct {
	db     *badger.DB
	logger zerolog.Logger

	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// OpenBadger opens (or creates) the cache database.
func OpenBadger(cfg BadgerConfig, logger zerolog.Logger) (*Badger, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.Path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	b := &Badger{
		db:     db,
		logger: logger.With().Str("component", "cache").Logger(),
		stop:   make(chan struct{}),
	}
	if cfg.GCInterval > 0 && cfg.Path != "" {
		b.wg.Add(1)
		go b.gcLoop(cfg.GCInterval)
	}

	b.logger.Info().Str("path", cfg.Path).Bool("in_memory", cfg.Path == "").
		Msg("Cache database opened")
	return b, nil
}

// Get returns the value for key if present and unexpired.
func (b *Badger) Get(_ context.Context, key string) ([]byte, bool) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			b.logger.Debug().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return nil, false
	}
	return value, true
}

// Set stores value under key for ttl. Expiration is enforced by the
// store; failures are logged and swallowed.
func (b *Badger) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), value).WithTTL(ttl)
		return txn.SetEntry(e)
	})
	if err != nil {
		b.logger.Debug().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Delete removes key. Safe to call for absent keys.
func (b *Badger) Delete(_ context.Context, key string) {
	err := b.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		b.logger.Debug().Err(err).Str("key", key).Msg("Cache delete failed")
	}
}

// Close stops the GC loop and closes the database.
func (b *Badger) Close() error {
	b.once.Do(func() { close(b.stop) })
	b.wg.Wait()
	return b.db.Close()
}

func (b *Badger) gcLoop(interval time.Duration) {
	defer b.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			// ErrNoRewrite means nothing to collect.
			if err := b.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				b.logger.Debug().Err(err).Msg("Value log GC failed")
			}
		}
	}
}
