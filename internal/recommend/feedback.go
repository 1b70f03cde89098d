// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"time"
)

// FeedbackConfig tunes peer-feedback aggregation.
type FeedbackConfig struct {
	// TypeWeights weight each feedback category. Unknown types fall back
	// to the overall weight.
	TypeWeights map[FeedbackType]float64 `json:"type_weights" koanf:"type_weights"`

	// RecencyWindow and RecencyBoost raise the weight of recent entries.
	RecencyWindow time.Duration `json:"recency_window" koanf:"recency_window"`
	RecencyBoost  float64       `json:"recency_boost" koanf:"recency_boost"`

	// VerifiedBoost raises the weight of verified entries.
	VerifiedBoost float64 `json:"verified_boost" koanf:"verified_boost"`

	// ProjectBoost raises the weight of entries tied to the project being
	// matched.
	ProjectBoost float64 `json:"project_boost" koanf:"project_boost"`

	// MaxRating is the upper bound of the raw rating scale.
	MaxRating float64 `json:"max_rating" koanf:"max_rating"`
}

// DefaultFeedbackConfig returns the production aggregation weights.
func DefaultFeedbackConfig() FeedbackConfig {
	return FeedbackConfig{
		TypeWeights: map[FeedbackType]float64{
			FeedbackTechnical:      0.30,
			FeedbackCommunication:  0.25,
			FeedbackTeamwork:       0.20,
			FeedbackResponsibility: 0.15,
			FeedbackOverall:        0.10,
		},
		RecencyWindow: 90 * 24 * time.Hour,
		RecencyBoost:  0.1,
		VerifiedBoost: 0.2,
		ProjectBoost:  0.2,
		MaxRating:     5,
	}
}

// AggregateFeedback folds feedback entries into one score in [0,1].
//
// Each entry contributes its normalized rating, boosted for recency and
// verification, weighted by category, with extra weight for entries tied to
// the project being matched. Boosts multiply the entry's score rather than
// its weight, so a uniformly boosted set still scores above an unboosted
// one. The final mean is clamped to [0,1]. An empty entry list yields
// NeutralFeedbackScore.
func AggregateFeedback(entries []Feedback, cfg FeedbackConfig, now time.Time, projectID string) float64 {
	if len(entries) == 0 {
		return NeutralFeedbackScore
	}
	maxRating := cfg.MaxRating
	if maxRating <= 0 {
		maxRating = 5
	}

	var weightedSum, totalWeight float64
	for _, fb := range entries {
		score := clamp01(fb.Rating / maxRating)
		if cfg.RecencyWindow > 0 && now.Sub(fb.CreatedAt) <= cfg.RecencyWindow {
			score *= 1 + cfg.RecencyBoost
		}
		if fb.Verified {
			score *= 1 + cfg.VerifiedBoost
		}

		weight, ok := cfg.TypeWeights[fb.Type]
		if !ok {
			weight = cfg.TypeWeights[FeedbackOverall]
		}
		if weight <= 0 {
			continue
		}
		if projectID != "" && fb.ProjectID == projectID {
			weight *= 1 + cfg.ProjectBoost
		}

		weightedSum += score * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return NeutralFeedbackScore
	}
	return clamp01(weightedSum / totalWeight)
}
