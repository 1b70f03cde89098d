// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/campusgraph/campusgraph/internal/logging"
)

func testBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:        "test",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     time.Minute,
		MinRequests: 3,
		FailureRate: 0.5,
	}
}

func TestBreakerProvider_Passthrough(t *testing.T) {
	inner := &stubProvider{
		profiles: map[string]*Profile{"u1": {ID: "u1", Name: "User One"}},
		friends:  map[string][]string{"u1": {"u2"}},
	}
	provider := NewBreakerProvider(inner, testBreakerSettings(), logging.NewTestLogger(io.Discard))

	profile, err := provider.GetProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Name != "User One" {
		t.Errorf("name = %q, want %q", profile.Name, "User One")
	}

	friends, err := provider.GetAcceptedFriends(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetAcceptedFriends: %v", err)
	}
	if len(friends) != 1 || friends[0] != "u2" {
		t.Errorf("friends = %v, want [u2]", friends)
	}
}

func TestBreakerProvider_NotFoundDoesNotTrip(t *testing.T) {
	provider := NewBreakerProvider(&stubProvider{}, testBreakerSettings(), logging.NewTestLogger(io.Discard))

	for i := 0; i < 10; i++ {
		if _, err := provider.GetProfile(context.Background(), "missing"); !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	}
	if provider.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed after not-found results", provider.State())
	}
}

func TestBreakerProvider_OpensOnFailures(t *testing.T) {
	inner := &stubProvider{
		failFriends: map[string]error{"u1": errStubUnavailable},
	}
	provider := NewBreakerProvider(inner, testBreakerSettings(), logging.NewTestLogger(io.Discard))

	for i := 0; i < 3; i++ {
		if _, err := provider.GetAcceptedFriends(context.Background(), "u1"); err == nil {
			t.Fatal("expected failure from inner provider")
		}
	}
	if provider.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open after repeated failures", provider.State())
	}

	_, err := provider.GetAcceptedFriends(context.Background(), "u1")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected fast rejection, got %v", err)
	}
}
