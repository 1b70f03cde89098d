// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"errors"
)

// Sentinel errors returned by DataProvider implementations.
var (
	// ErrProfileNotFound indicates the requested user does not exist.
	ErrProfileNotFound = errors.New("recommend: profile not found")

	// ErrProjectNotFound indicates the requested project does not exist.
	ErrProjectNotFound = errors.New("recommend: project not found")
)

// NeutralFeedbackScore is used when a user's aggregate feedback is
// unavailable. Neutral by definition: it neither helps nor hurts a match.
const NeutralFeedbackScore = 0.5

// DataProvider supplies profile, social-graph and feedback data to the
// Engine. Implementations are expected to be safe for concurrent use; the
// Engine fans out lookups during traversal and metric computation.
//
// All lookups are best-effort single attempts. Retry and backoff, where
// desired, belong to the implementation, not the scoring core.
type DataProvider interface {
	// GetProfile returns the canonical profile for a user.
	// Returns ErrProfileNotFound when the user does not exist.
	GetProfile(ctx context.Context, userID string) (*Profile, error)

	// GetAcceptedFriends returns the ids of users with an accepted
	// friendship edge to the given user.
	GetAcceptedFriends(ctx context.Context, userID string) ([]string, error)

	// GetFriendRequestStatus returns the relationship between two users
	// from userID's perspective.
	GetFriendRequestStatus(ctx context.Context, userID, otherID string) (FriendshipStatus, error)

	// GetFriendDegree returns the number of accepted friendships a user
	// has. Used only by the Adamic-Adar metric.
	GetFriendDegree(ctx context.Context, userID string) (int, error)

	// GetExcludedUsers returns ids with a blocked edge to the user, in
	// either direction. Traversal never yields these candidates. Pending
	// counterparties must NOT be listed here: they stay in the pool so
	// ranking can place them in the priority lane.
	GetExcludedUsers(ctx context.Context, userID string) ([]string, error)

	// GetCandidateUsers returns the flat candidate pool for project and
	// team matching, filtered by university when non-empty.
	GetCandidateUsers(ctx context.Context, university string) ([]Profile, error)

	// GetProject returns a project by id.
	// Returns ErrProjectNotFound when the project does not exist.
	GetProject(ctx context.Context, projectID string) (*Project, error)

	// GetRecruitingProjects returns projects open for new members,
	// filtered by university when non-empty.
	GetRecruitingProjects(ctx context.Context, university string) ([]Project, error)

	// GetFeedbackScore returns the aggregate peer-feedback score for a
	// user, normalized to [0,1]. Callers substitute NeutralFeedbackScore
	// on error.
	GetFeedbackScore(ctx context.Context, userID string) (float64, error)
}
