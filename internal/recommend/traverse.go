// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// FriendsOfFriends expands second-degree candidates for a seed user.
//
// The exclusion set is the seed itself, every direct friend, and every id
// in excludedIDs (pending or blocked edges). Second-hop lookups fan out
// concurrently, one per direct friend; results merge in direct-friend
// order so deduplication is deterministic, first occurrence winning.
//
// A failed second-hop lookup skips that branch with a log entry. Partial
// candidate sets are a valid outcome, never an error.
func FriendsOfFriends(ctx context.Context, provider DataProvider, seedID string, directFriends, excludedIDs []string, logger zerolog.Logger) []string {
	excluded := make(map[string]struct{}, len(directFriends)+len(excludedIDs)+1)
	excluded[seedID] = struct{}{}
	for _, id := range directFriends {
		excluded[id] = struct{}{}
	}
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	// One concurrent lookup per first-hop friend; slots keep the results
	// in direct-friend order for deterministic merging.
	secondHops := make([][]string, len(directFriends))
	var wg sync.WaitGroup
	for i, friendID := range directFriends {
		wg.Add(1)
		go func(i int, friendID string) {
			defer wg.Done()
			friends, err := provider.GetAcceptedFriends(ctx, friendID)
			if err != nil {
				logger.Warn().Err(err).
					Str("seed", seedID).
					Str("friend", friendID).
					Msg("Second-hop lookup failed, skipping branch")
				return
			}
			secondHops[i] = friends
		}(i, friendID)
	}
	wg.Wait()

	visited := make(map[string]struct{})
	var candidates []string
	for _, hop := range secondHops {
		if ctx.Err() != nil {
			return candidates
		}
		for _, id := range hop {
			if _, skip := excluded[id]; skip {
				continue
			}
			if _, seen := visited[id]; seen {
				continue
			}
			visited[id] = struct{}{}
			candidates = append(candidates, id)
		}
	}
	return candidates
}
