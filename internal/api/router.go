// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the full route tree with the shared middleware stack.
func NewRouter(handler *Handler, mw MiddlewareConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(Recoverer())
	r.Use(mw.CORS())

	// Health endpoints stay outside the rate limit so orchestrators can
	// probe freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", handler.HealthLive)
		r.Get("/ready", handler.HealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.RateLimit())
		r.Use(PrometheusMetrics())

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/recommendations/friends", handler.FriendRecommendations)
			r.Get("/recommendations/projects", handler.ProjectMatches)
			r.Get("/recommendations/teammates", handler.Teammates)
			r.Delete("/recommendations", handler.Invalidate)
			r.Get("/similarity/{otherID}", handler.Similarity)
			r.Get("/mutual-friends/{otherID}", handler.MutualFriends)
		})

		r.Get("/projects/{projectID}/collaborators", handler.Collaborators)
		r.Post("/teams/compose", handler.ComposeTeam)
		r.Get("/stats", handler.Stats)
	})

	return r
}
