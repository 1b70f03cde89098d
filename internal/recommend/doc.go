// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

// Package recommend implements the Campusgraph recommendation core: friend
// suggestions over the social graph, project and collaborator matching, and
// teammate compatibility scoring.
//
// # Architecture
//
// The package is organized around a single Engine that orchestrates four
// stages shared by every recommendation domain:
//
//  1. Candidate discovery - friend-of-friend graph traversal for the friend
//     domain, flat candidate pools for projects and teams.
//  2. Metric computation - Jaccard, cosine, Adamic-Adar and department
//     similarity between the seed and each candidate.
//  3. Composite scoring - weighted linear combination of the metrics, plus
//     additive contextual bonuses clamped to [0,1] for project and team
//     domains.
//  4. Selection - a bounded min-heap keeps the top K regular candidates in
//     O(K) memory while an unbounded priority lane guarantees candidates
//     with pending friend requests are never dropped.
//
// Data access goes through the DataProvider interface; callers inject an
// implementation backed by their user store. All provider failures degrade
// gracefully: a candidate whose metrics cannot be computed receives default
// scores, a traversal branch that fails lookup is skipped, and an unknown
// seed yields an empty response rather than an error.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cfg, provider, cache, logger)
//	if err != nil {
//	    return err
//	}
//	resp, err := engine.RecommendFriends(ctx, &recommend.FriendRequest{
//	    UserID: "u1",
//	    Limit:  10,
//	})
//
// Responses are cached per user with a configurable TTL; pass a NopCache to
// disable caching.
package recommend
