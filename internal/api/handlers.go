// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/campusgraph/campusgraph/internal/metrics"
	"github.com/campusgraph/campusgraph/internal/recommend"
)

var validate = validator.New()

// Handler serves the recommendation API.
type Handler struct {
	engine *recommend.Engine
	logger zerolog.Logger
	start  time.Time
}

// NewHandler creates a Handler around an engine.
func NewHandler(engine *recommend.Engine, logger zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger.With().Str("component", "api").Logger(),
		start:  time.Now(),
	}
}

// HealthLive reports process liveness.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady reports readiness and uptime.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"status":         "ready",
		"uptime_seconds": int64(time.Since(h.start).Seconds()),
	})
}

// Stats exposes engine counters.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, h.engine.Stats())
}

// FriendRecommendations handles
// GET /api/v1/users/{userID}/recommendations/friends.
func (h *Handler) FriendRecommendations(w http.ResponseWriter, r *http.Request) {
	req := &recommend.FriendRequest{
		UserID:    chi.URLParam(r, "userID"),
		Limit:     getIntParam(r, "limit", 0),
		SkipCache: getBoolParam(r, "skip_cache"),
	}

	start := time.Now()
	resp, err := h.engine.RecommendFriends(r.Context(), req)
	if err != nil {
		metrics.RecordRecommendation("friends", 0, 0, time.Since(start), err)
		respondError(w, http.StatusInternalServerError, codeInternal, "failed to compute recommendations", err)
		return
	}
	metrics.RecordRecommendation("friends", len(resp.Recommendations), resp.Metadata.PoolSize, time.Since(start), nil)
	metrics.RecordCacheLookup("friends", resp.Metadata.CacheHit)
	respondData(w, http.StatusOK, resp)
}

// ProjectMatches handles
// GET /api/v1/users/{userID}/recommendations/projects.
func (h *Handler) ProjectMatches(w http.ResponseWriter, r *http.Request) {
	req := &recommend.ProjectMatchRequest{
		UserID:    chi.URLParam(r, "userID"),
		Limit:     getIntParam(r, "limit", 0),
		MinScore:  getFloatParam(r, "min_score", 0),
		SkipCache: getBoolParam(r, "skip_cache"),
	}

	start := time.Now()
	resp, err := h.engine.MatchProjects(r.Context(), req)
	if err != nil {
		metrics.RecordRecommendation("projects", 0, 0, time.Since(start), err)
		respondError(w, http.StatusInternalServerError, codeInternal, "failed to compute matches", err)
		return
	}
	metrics.RecordRecommendation("projects", len(resp.Matches), resp.Metadata.PoolSize, time.Since(start), nil)
	metrics.RecordCacheLookup("projects", resp.Metadata.CacheHit)
	respondData(w, http.StatusOK, resp)
}

// Collaborators handles
// GET /api/v1/projects/{projectID}/collaborators.
func (h *Handler) Collaborators(w http.ResponseWriter, r *http.Request) {
	req := &recommend.CollaboratorRequest{
		ProjectID: chi.URLParam(r, "projectID"),
		Limit:     getIntParam(r, "limit", 0),
		MinScore:  getFloatParam(r, "min_score", 0),
		SkipCache: getBoolParam(r, "skip_cache"),
	}

	start := time.Now()
	resp, err := h.engine.MatchCollaborators(r.Context(), req)
	if err != nil {
		metrics.RecordRecommendation("collaborators", 0, 0, time.Since(start), err)
		respondError(w, http.StatusInternalServerError, codeInternal, "failed to compute matches", err)
		return
	}
	metrics.RecordRecommendation("collaborators", len(resp.Matches), resp.Metadata.PoolSize, time.Since(start), nil)
	metrics.RecordCacheLookup("collaborators", resp.Metadata.CacheHit)
	respondData(w, http.StatusOK, resp)
}

// Teammates handles
// GET /api/v1/users/{userID}/recommendations/teammates.
func (h *Handler) Teammates(w http.ResponseWriter, r *http.Request) {
	req := &recommend.TeammateRequest{
		UserID:    chi.URLParam(r, "userID"),
		Limit:     getIntParam(r, "limit", 0),
		SkipCache: getBoolParam(r, "skip_cache"),
	}

	start := time.Now()
	resp, err := h.engine.RecommendTeammates(r.Context(), req)
	if err != nil {
		metrics.RecordRecommendation("teammates", 0, 0, time.Since(start), err)
		respondError(w, http.StatusInternalServerError, codeInternal, "failed to compute matches", err)
		return
	}
	metrics.RecordRecommendation("teammates", len(resp.Matches), resp.Metadata.PoolSize, time.Since(start), nil)
	metrics.RecordCacheLookup("teammates", resp.Metadata.CacheHit)
	respondData(w, http.StatusOK, resp)
}

// composeTeamRequest is the POST body for team composition.
type composeTeamRequest struct {
	CreatorID      string   `json:"creator_id" validate:"required"`
	RequiredSkills []string `json:"required_skills" validate:"required,min=1,dive,required"`
	TeamSize       int      `json:"team_size" validate:"gte=0,lte=20"`
}

// ComposeTeam handles POST /api/v1/teams/compose.
func (h *Handler) ComposeTeam(w http.ResponseWriter, r *http.Request) {
	var body composeTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidRequest, "malformed request body", err)
		return
	}
	if err := validate.Struct(&body); err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request: "+err.Error(), nil)
		return
	}

	start := time.Now()
	resp, err := h.engine.ComposeTeam(r.Context(), &recommend.TeamCompositionRequest{
		CreatorID:      body.CreatorID,
		RequiredSkills: body.RequiredSkills,
		TeamSize:       body.TeamSize,
	})
	if err != nil {
		metrics.RecordRecommendation("compose", 0, 0, time.Since(start), err)
		respondError(w, http.StatusInternalServerError, codeInternal, "failed to compose team", err)
		return
	}
	metrics.RecordRecommendation("compose", len(resp.Composition.Members), resp.Metadata.PoolSize, time.Since(start), nil)
	respondData(w, http.StatusOK, resp)
}

// Similarity handles GET /api/v1/users/{userID}/similarity/{otherID}.
func (h *Handler) Similarity(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.SimilarityBetween(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "otherID"))
	if err != nil {
		respondError(w, http.StatusNotFound, codeNotFound, "user not found", err)
		return
	}
	respondData(w, http.StatusOK, result)
}

// MutualFriends handles GET /api/v1/users/{userID}/mutual-friends/{otherID}.
func (h *Handler) MutualFriends(w http.ResponseWriter, r *http.Request) {
	mutual, err := h.engine.MutualFriends(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "otherID"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeInternal, "failed to compute mutual friends", err)
		return
	}
	if mutual == nil {
		mutual = []string{}
	}
	respondData(w, http.StatusOK, map[string]interface{}{
		"user_id":        chi.URLParam(r, "userID"),
		"other_id":       chi.URLParam(r, "otherID"),
		"mutual_friends": mutual,
	})
}

// Invalidate handles DELETE /api/v1/users/{userID}/recommendations. It
// drops the user's cached responses after a graph or profile change.
func (h *Handler) Invalidate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	h.engine.InvalidateUser(r.Context(), userID)
	h.logger.Debug().Str("user", userID).Msg("Recommendation cache invalidated")
	respondData(w, http.StatusOK, map[string]string{"user_id": userID, "invalidated": "true"})
}

func getIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getFloatParam(r *http.Request, name string, fallback float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func getBoolParam(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}
