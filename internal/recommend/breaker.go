// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerSettings tunes the circuit breaker around a DataProvider.
type BreakerSettings struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	MinRequests uint32
	FailureRate float64
}

// DefaultBreakerSettings returns conservative production defaults: the
// circuit opens after a 60% failure rate over at least 10 requests and
// probes recovery after 30 seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:        "data-provider",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		MinRequests: 10,
		FailureRate: 0.6,
	}
}

// BreakerProvider wraps a DataProvider with a shared circuit breaker.
// When the backing store degrades, the breaker opens and calls fail fast
// instead of piling up; the engine's per-metric degradation then turns
// those failures into neutral scores.
//
// Not-found sentinels count as successes: a missing profile is a domain
// answer, not a store failure.
type BreakerProvider struct {
	inner  DataProvider
	cb     *gobreaker.CircuitBreaker[any]
	logger zerolog.Logger
}

var _ DataProvider = (*BreakerProvider)(nil)

// NewBreakerProvider wraps the given provider.
func NewBreakerProvider(inner DataProvider, settings BreakerSettings, logger zerolog.Logger) *BreakerProvider {
	logger = logger.With().Str("component", "breaker").Str("breaker", settings.Name).Logger()

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= settings.FailureRate
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			return errors.Is(err, ErrProfileNotFound) || errors.Is(err, ErrProjectNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Provider circuit breaker state change")
		},
	})

	return &BreakerProvider{inner: inner, cb: cb, logger: logger}
}

// State exposes the breaker state for health reporting.
func (p *BreakerProvider) State() gobreaker.State {
	return p.cb.State()
}

func execute[T any](p *BreakerProvider, fn func() (T, error)) (T, error) {
	result, err := p.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			p.logger.Debug().Err(err).Msg("Provider call rejected by open breaker")
		}
		return zero, err
	}
	return result.(T), nil
}

func (p *BreakerProvider) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return execute(p, func() (*Profile, error) { return p.inner.GetProfile(ctx, userID) })
}

func (p *BreakerProvider) GetAcceptedFriends(ctx context.Context, userID string) ([]string, error) {
	return execute(p, func() ([]string, error) { return p.inner.GetAcceptedFriends(ctx, userID) })
}

func (p *BreakerProvider) GetFriendRequestStatus(ctx context.Context, userID, otherID string) (FriendshipStatus, error) {
	return execute(p, func() (FriendshipStatus, error) {
		return p.inner.GetFriendRequestStatus(ctx, userID, otherID)
	})
}

func (p *BreakerProvider) GetFriendDegree(ctx context.Context, userID string) (int, error) {
	return execute(p, func() (int, error) { return p.inner.GetFriendDegree(ctx, userID) })
}

func (p *BreakerProvider) GetExcludedUsers(ctx context.Context, userID string) ([]string, error) {
	return execute(p, func() ([]string, error) { return p.inner.GetExcludedUsers(ctx, userID) })
}

func (p *BreakerProvider) GetCandidateUsers(ctx context.Context, university string) ([]Profile, error) {
	return execute(p, func() ([]Profile, error) { return p.inner.GetCandidateUsers(ctx, university) })
}

func (p *BreakerProvider) GetProject(ctx context.Context, projectID string) (*Project, error) {
	return execute(p, func() (*Project, error) { return p.inner.GetProject(ctx, projectID) })
}

func (p *BreakerProvider) GetRecruitingProjects(ctx context.Context, university string) ([]Project, error) {
	return execute(p, func() ([]Project, error) { return p.inner.GetRecruitingProjects(ctx, university) })
}

func (p *BreakerProvider) GetFeedbackScore(ctx context.Context, userID string) (float64, error) {
	return execute(p, func() (float64, error) { return p.inner.GetFeedbackScore(ctx, userID) })
}
