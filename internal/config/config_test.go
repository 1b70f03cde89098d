// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Cache.Backend != CacheBackendMemory {
		t.Errorf("cache backend = %q, want memory", cfg.Cache.Backend)
	}
	if cfg.Recommend.Limits.DefaultLimit != 10 {
		t.Errorf("default limit = %d, want 10", cfg.Recommend.Limits.DefaultLimit)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CAMPUSGRAPH_SERVER__PORT", "9090")
	t.Setenv("CAMPUSGRAPH_LOGGING__LEVEL", "debug")
	t.Setenv("CAMPUSGRAPH_CACHE__BACKEND", "none")
	t.Setenv("CAMPUSGRAPH_RECOMMEND__CACHE_TTL", "90s")
	t.Setenv("CAMPUSGRAPH_SERVER__CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Cache.Backend != CacheBackendNone {
		t.Errorf("cache backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Recommend.CacheTTL != 90*time.Second {
		t.Errorf("cache ttl = %v, want 90s", cfg.Recommend.CacheTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[0] != want[0] || cfg.Server.CORSOrigins[1] != want[1] {
		t.Errorf("cors origins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 7070
logging:
  format: console
cache:
  backend: none
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("format = %q, want console", cfg.Logging.Format)
	}
	// Unset keys keep their defaults.
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v, want default 10s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("CAMPUSGRAPH_SERVER__PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want environment value 9090", cfg.Server.Port)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 0 }},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "redis" }},
		{"badger without path", func(c *Config) {
			c.Cache.Backend = CacheBackendBadger
			c.Cache.Path = ""
		}},
		{"invalid recommend limits", func(c *Config) { c.Recommend.Limits.DefaultLimit = 0 }},
		{"non-positive shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
