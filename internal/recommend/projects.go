// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"time"
)

// MatchCollaborators produces ranked candidate users for one project.
//
// The candidate pool is the project's university cohort minus the creator
// and current members. Each candidate's blended skill score, interest
// overlap and aggregate feedback combine into the match score; university
// and department-relevance bonuses are added before clamping. An unknown
// project yields an empty response, not an error.
func (e *Engine) MatchCollaborators(ctx context.Context, req *CollaboratorRequest) (*CollaboratorResponse, error) {
	start := time.Now()
	e.requests.Add(1)

	limit := e.cfg.ClampLimit(req.Limit)
	key := cacheKey("collaborators", req.ProjectID, limit)
	if cached, ok := lookupCached[CollaboratorResponse](ctx, e, key, req.SkipCache); ok {
		cached.Metadata.CacheHit = true
		return cached, nil
	}

	resp := &CollaboratorResponse{
		ProjectID: req.ProjectID,
		Matches:   []CollaboratorMatch{},
		Metadata:  e.newMetadata(),
	}

	project, err := e.provider.GetProject(ctx, req.ProjectID)
	if err != nil {
		e.emptySeed.Add(1)
		e.logger.Warn().Err(err).Str("project", req.ProjectID).
			Msg("Project unresolved, returning empty match set")
		resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
		return resp, nil
	}

	pool, err := e.provider.GetCandidateUsers(ctx, project.University)
	if err != nil {
		e.logger.Warn().Err(err).Str("project", project.ID).
			Msg("Candidate pool unavailable, returning empty match set")
		resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
		return resp, nil
	}
	resp.Metadata.PoolSize = len(pool)

	selector := NewTopK[CollaboratorMatch](limit)
	skipped := 0
	for i := range pool {
		if ctx.Err() != nil {
			break
		}
		candidate := &pool[i]
		if project.IsMember(candidate.ID) {
			skipped++
			continue
		}
		resp.Metadata.Evaluated++

		feedback := e.feedbackOrNeutral(ctx, candidate.ID)
		score, breakdown := ProjectMatchScore(candidate, project, feedback, e.cfg.Project, e.cfg.CategoryKeywords)
		if req.MinScore > 0 && score < req.MinScore {
			skipped++
			continue
		}

		selector.Add(CollaboratorMatch{
			Profile:   *candidate,
			Score:     score,
			Breakdown: breakdown,
			Reasons:   ProjectReasons(breakdown),
		}, score)
	}

	resp.Matches = selector.Results()
	resp.Metadata.Skipped = skipped + selector.Skipped()
	resp.Metadata.LatencyMs = time.Since(start).Milliseconds()

	storeCached(ctx, e, key, resp)
	return resp, nil
}

// MatchProjects produces ranked recruiting projects for one user, the
// symmetric counterpart of MatchCollaborators. The pool is the recruiting
// projects of the user's university, minus any project the user created or
// already joined.
func (e *Engine) MatchProjects(ctx context.Context, req *ProjectMatchRequest) (*ProjectMatchResponse, error) {
	start := time.Now()
	e.requests.Add(1)

	limit := e.cfg.ClampLimit(req.Limit)
	key := cacheKey("projects", req.UserID, limit)
	if cached, ok := lookupCached[ProjectMatchResponse](ctx, e, key, req.SkipCache); ok {
		cached.Metadata.CacheHit = true
		return cached, nil
	}

	resp := &ProjectMatchResponse{
		UserID:   req.UserID,
		Matches:  []ProjectMatch{},
		Metadata: e.newMetadata(),
	}

	user, ok := e.seedProfile(ctx, req.UserID)
	if !ok {
		resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
		return resp, nil
	}

	pool, err := e.provider.GetRecruitingProjects(ctx, user.University)
	if err != nil {
		e.logger.Warn().Err(err).Str("user", user.ID).
			Msg("Project pool unavailable, returning empty match set")
		resp.Metadata.LatencyMs = time.Since(start).Milliseconds()
		return resp, nil
	}
	resp.Metadata.PoolSize = len(pool)

	// The user's feedback applies uniformly, fetch it once.
	feedback := e.feedbackOrNeutral(ctx, user.ID)

	selector := NewTopK[ProjectMatch](limit)
	skipped := 0
	for i := range pool {
		if ctx.Err() != nil {
			break
		}
		project := &pool[i]
		if project.IsMember(user.ID) {
			skipped++
			continue
		}
		resp.Metadata.Evaluated++

		score, breakdown := ProjectMatchScore(user, project, feedback, e.cfg.Project, e.cfg.CategoryKeywords)
		if req.MinScore > 0 && score < req.MinScore {
			skipped++
			continue
		}

		selector.Add(ProjectMatch{
			Project:   *project,
			Score:     score,
			Breakdown: breakdown,
			Reasons:   ProjectReasons(breakdown),
		}, score)
	}

	resp.Matches = selector.Results()
	resp.Metadata.Skipped = skipped + selector.Skipped()
	resp.Metadata.LatencyMs = time.Since(start).Milliseconds()

	storeCached(ctx, e, key, resp)
	return resp, nil
}
