// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"fmt"
	"time"
)

// RecommendFriends produces ranked friend recommendations for one user.
//
// Candidates come from friend-of-friend traversal. Each candidate is
// scored with the full metric set; none-status candidates must pass the
// minimum-similarity gate, pending-request candidates ride the priority
// lane and are never dropped. An unknown seed yields an empty response,
// not an error.
func (e *Engine) RecommendFriends(ctx context.Context, req *FriendRequest) (*FriendResponse, error) {
	start := time.Now()
	e.requests.Add(1)

	limit := e.cfg.ClampLimit(req.Limit)
	key := cacheKey("friends", req.UserID, limit)
	if cached, ok := lookupCached[FriendResponse](ctx, e, key, req.SkipCache); ok {
		cached.Metadata.CacheHit = true
		return cached, nil
	}

	resp := &FriendResponse{
		UserID:          req.UserID,
		Recommendations: []FriendRecommendation{},
		Metadata:        e.newMetadata(),
	}

	seed, ok := e.seedProfile(ctx, req.UserID)
	if !ok {
		resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
		return resp, nil
	}

	directFriends, err := e.provider.GetAcceptedFriends(ctx, seed.ID)
	if err != nil {
		e.logger.Warn().Err(err).Str("user", seed.ID).
			Msg("Friend list unavailable, returning empty recommendation set")
		resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
		return resp, nil
	}

	excluded, err := e.provider.GetExcludedUsers(ctx, seed.ID)
	if err != nil {
		e.logger.Warn().Err(err).Str("user", seed.ID).
			Msg("Exclusion lookup failed, proceeding without it")
		excluded = nil
	}

	candidates := FriendsOfFriends(ctx, e.provider, seed.ID, directFriends, excluded, e.logger)
	resp.Metadata.PoolSize = len(candidates)

	selector := NewTopK[FriendRecommendation](limit)
	skipped := 0
	for _, candidateID := range candidates {
		if ctx.Err() != nil {
			break
		}
		rec, ok := e.scoreFriendCandidate(ctx, seed, directFriends, candidateID)
		if !ok {
			skipped++
			continue
		}
		resp.Metadata.Evaluated++

		if rec.Status.Pending() {
			selector.AddPriority(*rec, rec.Score)
			continue
		}
		if !PassesGate(rec.Score, rec.Metrics, e.cfg.Gate) {
			skipped++
			continue
		}
		selector.Add(*rec, rec.Score)
	}

	resp.Recommendations = selector.Results()
	resp.Metadata.Skipped = skipped + selector.Skipped()
	resp.Metadata.LatencyMs = time.Since(start).Milliseconds()

	storeCached(ctx, e, key, resp)
	return resp, nil
}

// scoreFriendCandidate resolves and scores one traversal candidate. The
// second return value is false when the candidate must be skipped: profile
// unresolvable, filtered by university, or disqualified by status.
//
// Metric lookups degrade individually: a failed friend-list or degree
// fetch defaults that metric to zero without dropping the candidate.
func (e *Engine) scoreFriendCandidate(ctx context.Context, seed *Profile, seedFriends []string, candidateID string) (*FriendRecommendation, bool) {
	candidate, err := e.provider.GetProfile(ctx, candidateID)
	if err != nil {
		e.logger.Debug().Err(err).Str("candidate", candidateID).
			Msg("Candidate profile unresolved, skipping")
		return nil, false
	}

	// University filter applies only when both sides declare one.
	if seed.University != "" && candidate.University != "" && seed.University != candidate.University {
		return nil, false
	}

	status, err := e.provider.GetFriendRequestStatus(ctx, seed.ID, candidateID)
	if err != nil {
		e.logger.Debug().Err(err).Str("candidate", candidateID).
			Msg("Status lookup failed, assuming none")
		status = StatusNone
	}
	if status.Excluded() {
		return nil, false
	}

	candidateFriends, err := e.provider.GetAcceptedFriends(ctx, candidateID)
	if err != nil {
		e.logger.Debug().Err(err).Str("candidate", candidateID).
			Msg("Candidate friend list unavailable, graph metrics default to 0")
		candidateFriends = nil
	}

	metrics := SimilarityMetrics{
		Jaccard:    Jaccard(seedFriends, candidateFriends),
		AdamicAdar: AdamicAdar(ctx, seedFriends, candidateFriends, e.provider.GetFriendDegree, e.logger),
		Department: DeptScore(seed.Department, candidate.Department),
		Skills:     Jaccard(seed.Skills, candidate.Skills),
		Interests:  Jaccard(seed.Interests, candidate.Interests),
	}
	score := CompositeSimilarity(metrics, e.cfg.Friend)
	sameUniversity := seed.University != "" && seed.University == candidate.University

	return &FriendRecommendation{
		Profile:       *candidate,
		Score:         score,
		Metrics:       metrics,
		Status:        status,
		MutualFriends: MutualIDs(candidateFriends, seedFriends),
		Reasons:       FriendReasons(metrics, sameUniversity),
	}, true
}

// MutualFriends returns the ids of friends two users have in common.
func (e *Engine) MutualFriends(ctx context.Context, userID, otherID string) ([]string, error) {
	friendsA, err := e.provider.GetAcceptedFriends(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("friends of %s: %w", userID, err)
	}
	friendsB, err := e.provider.GetAcceptedFriends(ctx, otherID)
	if err != nil {
		return nil, fmt.Errorf("friends of %s: %w", otherID, err)
	}
	return MutualIDs(friendsA, friendsB), nil
}

// SimilarityBetween computes the full metric set between two users. Both
// users must resolve; graph metric lookups degrade to zero individually.
func (e *Engine) SimilarityBetween(ctx context.Context, userID, otherID string) (*SimilarityResult, error) {
	e.requests.Add(1)

	a, err := e.provider.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", userID, err)
	}
	b, err := e.provider.GetProfile(ctx, otherID)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", otherID, err)
	}

	friendsA, err := e.provider.GetAcceptedFriends(ctx, userID)
	if err != nil {
		e.logger.Debug().Err(err).Str("user", userID).Msg("Friend list unavailable for similarity")
		friendsA = nil
	}
	friendsB, err := e.provider.GetAcceptedFriends(ctx, otherID)
	if err != nil {
		e.logger.Debug().Err(err).Str("user", otherID).Msg("Friend list unavailable for similarity")
		friendsB = nil
	}

	metrics := SimilarityMetrics{
		Jaccard:    Jaccard(friendsA, friendsB),
		AdamicAdar: AdamicAdar(ctx, friendsA, friendsB, e.provider.GetFriendDegree, e.logger),
		Department: DeptScore(a.Department, b.Department),
		Skills:     Jaccard(a.Skills, b.Skills),
		Interests:  Jaccard(a.Interests, b.Interests),
	}

	return &SimilarityResult{
		UserID:        userID,
		OtherID:       otherID,
		Metrics:       metrics,
		Score:         CompositeSimilarity(metrics, e.cfg.Friend),
		MutualFriends: MutualIDs(friendsA, friendsB),
	}, nil
}
