// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

// Package main is the entry point for the Campusgraph server.
//
// Campusgraph recommends connections for student communities: friends via
// friend-of-friend graph traversal, project collaborators, teammates and
// greedy team composition around required skills.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, YAML file and
//     environment variables (Koanf v2)
//  2. Logging: zerolog, JSON or console format
//  3. Store: in-memory profile/graph/project store, optionally seeded
//     from a JSON file
//  4. Cache: memory, BadgerDB or none, per configuration
//  5. Engine: the recommendation engine with a circuit-broken provider
//  6. HTTP server: chi router with CORS, rate limiting and Prometheus
//     metrics on /metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (CAMPUSGRAPH_*, double underscore separates
//     sections: CAMPUSGRAPH_SERVER__PORT=9090)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, waits for in-flight requests up to the
// configured timeout, then closes the cache.
//
// # Example Usage
//
//	export CAMPUSGRAPH_STORE__SEED_FILE=./seed.json
//	export CAMPUSGRAPH_CACHE__BACKEND=badger
//	export CAMPUSGRAPH_CACHE__PATH=/data/campusgraph/cache
//	./campusgraph
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/campusgraph/campusgraph/internal/api"
	"github.com/campusgraph/campusgraph/internal/cache"
	"github.com/campusgraph/campusgraph/internal/config"
	"github.com/campusgraph/campusgraph/internal/logging"
	"github.com/campusgraph/campusgraph/internal/recommend"
	"github.com/campusgraph/campusgraph/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.ToLogging())
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("Starting Campusgraph")

	st := store.NewMemory()
	if cfg.Store.SeedFile != "" {
		if err := st.LoadSeedFile(cfg.Store.SeedFile); err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Store.SeedFile).Msg("Failed to load seed file")
		}
		profiles, projects := st.Counts()
		logging.Info().Int("profiles", profiles).Int("projects", projects).Msg("Seed data loaded")
	}

	responseCache, closeCache, err := buildCache(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize cache")
	}
	defer closeCache()

	provider := recommend.NewBreakerProvider(st, recommend.DefaultBreakerSettings(), logging.Logger())
	engine, err := recommend.NewEngine(cfg.Recommend, provider, responseCache, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	handler := api.NewHandler(engine, logging.Logger())
	router := api.NewRouter(handler, api.MiddlewareConfig{
		CORSOrigins:     cfg.Server.CORSOrigins,
		RateLimitReqs:   cfg.Server.RateLimitReqs,
		RateLimitWindow: cfg.Server.RateLimitWindow,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildCache constructs the configured cache backend. The returned close
// function is safe to call regardless of backend.
func buildCache(cfg *config.Config) (recommend.Cache, func(), error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendMemory:
		m := cache.NewMemory(cfg.Cache.SweepInterval)
		return m, m.Close, nil
	case config.CacheBackendBadger:
		b, err := cache.OpenBadger(cache.BadgerConfig{
			Path:       cfg.Cache.Path,
			GCInterval: cfg.Cache.GCInterval,
		}, logging.Logger())
		if err != nil {
			return nil, nil, err
		}
		return b, func() {
			if err := b.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing cache database")
			}
		}, nil
	default:
		return recommend.NopCache{}, func() {}, nil
	}
}
