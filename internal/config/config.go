// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

// Package config loads and validates the application configuration from
// layered sources: built-in defaults, an optional YAML file and
// environment variables, in increasing precedence.
package config

import (
	"fmt"
	"time"

	"github.com/campusgraph/campusgraph/internal/logging"
	"github.com/campusgraph/campusgraph/internal/recommend"
)

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Logging   LoggingConfig    `koanf:"logging"`
	Cache     CacheConfig      `koanf:"cache"`
	Store     StoreConfig      `koanf:"store"`
	Recommend recommend.Config `koanf:"recommend"`
}

// StoreConfig configures the data store.
type StoreConfig struct {
	// SeedFile is an optional JSON file loaded into the store on boot.
	SeedFile string `koanf:"seed_file"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimitReqs requests per RateLimitWindow per client IP.
	// RateLimitReqs <= 0 disables rate limiting.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig configures the zerolog setup.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ToLogging converts to the logging package's config shape.
func (l LoggingConfig) ToLogging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendBadger = "badger"
	CacheBackendNone   = "none"
)

// CacheConfig selects and tunes the response cache.
type CacheConfig struct {
	// Backend is memory, badger or none.
	Backend string `koanf:"backend"`

	// Path is the badger database directory. Ignored by other backends.
	Path string `koanf:"path"`

	// SweepInterval is the memory backend's expiry sweep period.
	SweepInterval time.Duration `koanf:"sweep_interval"`

	// GCInterval is the badger backend's value log GC period.
	GCInterval time.Duration `koanf:"gc_interval"`
}

// Default returns the built-in configuration. File and environment layers
// override it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Cache: CacheConfig{
			Backend:       CacheBackendMemory,
			Path:          "/data/campusgraph/cache",
			SweepInterval: 5 * time.Minute,
			GCInterval:    10 * time.Minute,
		},
		Recommend: recommend.DefaultConfig(),
	}
}

// Validate checks the full configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendBadger, CacheBackendNone:
	default:
		return fmt.Errorf("cache.backend %q unknown", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheBackendBadger && c.Cache.Path == "" {
		return fmt.Errorf("cache.path required for badger backend")
	}
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}
