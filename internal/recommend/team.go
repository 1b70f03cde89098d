// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"sort"
	"strings"
	"time"
)

// RecommendTeammates produces ranked teammate candidates for one user.
//
// The pool is the user's university cohort minus the user and their
// accepted friends. Compatibility blends skill and interest symmetry with
// small university and department bonuses. An unknown seed yields an empty
// response, not an error.
func (e *Engine) RecommendTeammates(ctx context.Context, req *TeammateRequest) (*TeammateResponse, error) {
	start := time.Now()
	e.requests.Add(1)

	limit := e.cfg.ClampLimit(req.Limit)
	key := cacheKey("teammates", req.UserID, limit)
	if cached, ok := lookupCached[TeammateResponse](ctx, e, key, req.SkipCache); ok {
		cached.Metadata.CacheHit = true
		return cached, nil
	}

	resp := &TeammateResponse{
		UserID:   req.UserID,
		Matches:  []TeammateMatch{},
		Metadata: e.newMetadata(),
	}

	seed, ok := e.seedProfile(ctx, req.UserID)
	if !ok {
		resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
		return resp, nil
	}

	friends, err := e.provider.GetAcceptedFriends(ctx, seed.ID)
	if err != nil {
		e.logger.Debug().Err(err).Str("user", seed.ID).
			Msg("Friend list unavailable, teammate pool unfiltered by friendship")
		friends = nil
	}
	excluded := make(map[string]struct{}, len(friends)+1)
	excluded[seed.ID] = struct{}{}
	for _, id := range friends {
		excluded[id] = struct{}{}
	}

	pool, err := e.provider.GetCandidateUsers(ctx, seed.University)
	if err != nil {
		e.logger.Warn().Err(err).Str("user", seed.ID).
			Msg("Candidate pool unavailable, returning empty match set")
		resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
		return resp, nil
	}
	resp.Metadata.PoolSize = len(pool)

	selector := NewTopK[TeammateMatch](limit)
	skipped := 0
	for i := range pool {
		if ctx.Err() != nil {
			break
		}
		candidate := &pool[i]
		if _, skip := excluded[candidate.ID]; skip {
			skipped++
			continue
		}
		resp.Metadata.Evaluated++

		match := e.scoreTeammate(seed, candidate)
		selector.Add(match, match.Score)
	}

	resp.Matches = selector.Results()
	resp.Metadata.Skipped = skipped + selector.Skipped()
	resp.Metadata.LatencyMs = time.Since(start).Milliseconds()

	storeCached(ctx, e, key, resp)
	return resp, nil
}

// scoreTeammate builds the full teammate match for one candidate.
func (e *Engine) scoreTeammate(seed, candidate *Profile) TeammateMatch {
	score, breakdown := TeamCompatibilityScore(seed, candidate, e.cfg.Team)
	sharedSkills := SharedTerms(seed.Skills, candidate.Skills)
	sharedInterests := SharedTerms(seed.Interests, candidate.Interests)
	return TeammateMatch{
		Profile:         *candidate,
		Score:           score,
		Breakdown:       breakdown,
		SharedSkills:    sharedSkills,
		SharedInterests: sharedInterests,
		Reasons:         TeamReasons(breakdown, sharedSkills, sharedInterests),
	}
}

// ComposeTeam greedily assembles a team around a creator and a required
// skill set.
//
// Candidates are ranked by individual fit against the required skills,
// then added one by one while they raise skill coverage, individual value
// or compatibility with the members picked so far above the configured
// threshold. The first candidate is always admitted so a team is never
// empty when the pool is not.
func (e *Engine) ComposeTeam(ctx context.Context, req *TeamCompositionRequest) (*TeamCompositionResponse, error) {
	start := time.Now()
	e.requests.Add(1)

	resp := &TeamCompositionResponse{
		CreatorID: req.CreatorID,
		Metadata:  e.newMetadata(),
	}
	resp.Composition.Members = []TeammateMatch{}

	creator, ok := e.seedProfile(ctx, req.CreatorID)
	if !ok {
		resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
		return resp, nil
	}

	teamSize := req.TeamSize
	if teamSize <= 0 {
		teamSize = e.cfg.Limits.DefaultTeamSize
	}

	pool, err := e.provider.GetCandidateUsers(ctx, creator.University)
	if err != nil {
		e.logger.Warn().Err(err).Str("creator", creator.ID).
			Msg("Candidate pool unavailable, returning empty composition")
		resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
		return resp, nil
	}
	resp.Metadata.PoolSize = len(pool)

	// Individual fit is measured against a synthetic project built from
	// the requested skills.
	target := &Project{
		University:     creator.University,
		RequiredSkills: req.RequiredSkills,
	}

	type ranked struct {
		profile    *Profile
		individual float64
	}
	candidates := make([]ranked, 0, len(pool))
	for i := range pool {
		candidate := &pool[i]
		if candidate.ID == creator.ID {
			continue
		}
		feedback := e.feedbackOrNeutral(ctx, candidate.ID)
		individual, _ := ProjectMatchScore(candidate, target, feedback, e.cfg.Project, e.cfg.CategoryKeywords)
		candidates = append(candidates, ranked{profile: candidate, individual: individual})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].individual > candidates[j].individual
	})
	resp.Metadata.Evaluated = len(candidates)

	required := normalizeTerms(req.RequiredSkills)
	covered := make(map[string]struct{}, len(required))
	members := make([]*Profile, 0, teamSize)
	var compatibilitySum float64

	w := e.cfg.Composition
	for _, candidate := range candidates {
		if len(members) >= teamSize {
			break
		}
		if ctx.Err() != nil {
			break
		}

		var newlyCovered []string
		for _, skill := range candidate.profile.Skills {
			norm := strings.ToLower(strings.TrimSpace(skill))
			if _, need := required[norm]; !need {
				continue
			}
			if _, have := covered[norm]; have {
				continue
			}
			newlyCovered = append(newlyCovered, norm)
		}
		coverageGain := float64(len(newlyCovered)) / float64(max(1, len(required)))

		compatibility := 1.0
		if len(members) > 0 {
			var sum float64
			for _, member := range members {
				s, _ := TeamCompatibilityScore(candidate.profile, member, e.cfg.Team)
				sum += s
			}
			compatibility = sum / float64(len(members))
		}

		totalValue := coverageGain*w.SkillCoverage +
			candidate.individual*(1-w.SkillCoverage) +
			compatibility*w.Diversity
		if totalValue <= w.AddThreshold && len(members) > 0 {
			continue
		}

		match := e.scoreTeammate(creator, candidate.profile)
		match.Score = totalValue
		resp.Composition.Members = append(resp.Composition.Members, match)
		members = append(members, candidate.profile)
		compatibilitySum += compatibility
		for _, skill := range newlyCovered {
			covered[skill] = struct{}{}
		}
	}

	resp.Composition.SkillCoverage = float64(len(covered)) / float64(max(1, len(required)))
	for skill := range required {
		if _, ok := covered[skill]; ok {
			resp.Composition.CoveredSkills = append(resp.Composition.CoveredSkills, skill)
		} else {
			resp.Composition.MissingSkills = append(resp.Composition.MissingSkills, skill)
		}
	}
	sort.Strings(resp.Composition.CoveredSkills)
	sort.Strings(resp.Composition.MissingSkills)

	switch {
	case len(members) == 0:
		resp.Composition.AvgCompatibility = 0
	default:
		resp.Composition.AvgCompatibility = compatibilitySum / float64(len(members))
	}

	resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
	return resp, nil
}
