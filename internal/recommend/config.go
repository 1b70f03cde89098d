// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"fmt"
	"time"
)

// FriendWeights is the metric weight profile for the friend domain. The
// default profile sums to 1.0 so the composite stays in [0,1].
type FriendWeights struct {
	Jaccard    float64 `json:"jaccard" koanf:"jaccard"`
	AdamicAdar float64 `json:"adamic_adar" koanf:"adamic_adar"`
	Department float64 `json:"department" koanf:"department"`
	Skills     float64 `json:"skills" koanf:"skills"`
	Interests  float64 `json:"interests" koanf:"interests"`
}

// BlendWeights mixes Jaccard and cosine into one blended term score.
type BlendWeights struct {
	Jaccard float64 `json:"jaccard" koanf:"jaccard"`
	Cosine  float64 `json:"cosine" koanf:"cosine"`
}

// ProjectWeights is the weight profile for project and collaborator
// matching. Bonuses are added after the weighted base and the total is
// clamped to [0,1] afterwards.
type ProjectWeights struct {
	Skills          float64      `json:"skills" koanf:"skills"`
	Interests       float64      `json:"interests" koanf:"interests"`
	Feedback        float64      `json:"feedback" koanf:"feedback"`
	SkillBlend      BlendWeights `json:"skill_blend" koanf:"skill_blend"`
	UniversityBonus float64      `json:"university_bonus" koanf:"university_bonus"`
	CategoryBonus   float64      `json:"category_bonus" koanf:"category_bonus"`
}

// TeamWeights is the weight profile for teammate compatibility. The
// cross-department and same-department bonuses are mutually exclusive.
type TeamWeights struct {
	Skills          float64      `json:"skills" koanf:"skills"`
	Interests       float64      `json:"interests" koanf:"interests"`
	SkillBlend      BlendWeights `json:"skill_blend" koanf:"skill_blend"`
	InterestBlend   BlendWeights `json:"interest_blend" koanf:"interest_blend"`
	UniversityBonus float64      `json:"university_bonus" koanf:"university_bonus"`
	CrossDeptBonus  float64      `json:"cross_dept_bonus" koanf:"cross_dept_bonus"`
	SameDeptBonus   float64      `json:"same_dept_bonus" koanf:"same_dept_bonus"`
}

// GateConfig is the minimum-similarity gate for none-status friend
// candidates. A candidate passes when the composite meets MinComposite OR
// any single metric meets MinMetric.
type GateConfig struct {
	MinComposite float64 `json:"min_composite" koanf:"min_composite"`
	MinMetric    float64 `json:"min_metric" koanf:"min_metric"`
}

// CompositionWeights steers the greedy team builder.
type CompositionWeights struct {
	SkillCoverage float64 `json:"skill_coverage" koanf:"skill_coverage"`
	Diversity     float64 `json:"diversity" koanf:"diversity"`
	AddThreshold  float64 `json:"add_threshold" koanf:"add_threshold"`
}

// LimitsConfig bounds result-set sizes.
type LimitsConfig struct {
	DefaultLimit    int `json:"default_limit" koanf:"default_limit"`
	MaxLimit        int `json:"max_limit" koanf:"max_limit"`
	DefaultTeamSize int `json:"default_team_size" koanf:"default_team_size"`
}

// Config holds all Engine tuning parameters. The numeric defaults are
// hand-tuned heuristics; treat them as configuration, not invariants.
type Config struct {
	Friend      FriendWeights      `json:"friend" koanf:"friend"`
	Project     ProjectWeights     `json:"project" koanf:"project"`
	Team        TeamWeights        `json:"team" koanf:"team"`
	Gate        GateConfig         `json:"gate" koanf:"gate"`
	Composition CompositionWeights `json:"composition" koanf:"composition"`
	Limits      LimitsConfig       `json:"limits" koanf:"limits"`

	// CategoryKeywords maps a department to project-category keywords that
	// trigger the department-relevance bonus.
	CategoryKeywords map[string][]string `json:"category_keywords" koanf:"category_keywords"`

	// CacheTTL bounds how long a user's recommendations stay cached.
	// Zero disables expiry-based reuse.
	CacheTTL time.Duration `json:"cache_ttl" koanf:"cache_ttl"`
}

// DefaultCategoryKeywords maps departments to the project-category keywords
// considered relevant to them.
func DefaultCategoryKeywords() map[string][]string {
	return map[string][]string{
		"Computer Science": {"web development", "software", "app", "ai", "data"},
		"Design":           {"ui", "ux", "design", "graphics"},
		"Business":         {"marketing", "business", "startup", "finance"},
		"Engineering":      {"hardware", "iot", "robotics", "embedded"},
	}
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Friend: FriendWeights{
			Jaccard:    0.3,
			AdamicAdar: 0.2,
			Department: 0.1,
			Skills:     0.2,
			Interests:  0.2,
		},
		Project: ProjectWeights{
			Skills:          0.5,
			Interests:       0.3,
			Feedback:        0.2,
			SkillBlend:      BlendWeights{Jaccard: 0.6, Cosine: 0.4},
			UniversityBonus: 0.10,
			CategoryBonus:   0.05,
		},
		Team: TeamWeights{
			Skills:          0.5,
			Interests:       0.5,
			SkillBlend:      BlendWeights{Jaccard: 0.6, Cosine: 0.4},
			InterestBlend:   BlendWeights{Jaccard: 0.6, Cosine: 0.4},
			UniversityBonus: 0.10,
			CrossDeptBonus:  0.05,
			SameDeptBonus:   0.03,
		},
		Gate: GateConfig{
			MinComposite: 0.10,
			MinMetric:    0.05,
		},
		Composition: CompositionWeights{
			SkillCoverage: 0.7,
			Diversity:     0.3,
			AddThreshold:  0.4,
		},
		Limits: LimitsConfig{
			DefaultLimit:    10,
			MaxLimit:        20,
			DefaultTeamSize: 4,
		},
		CategoryKeywords: DefaultCategoryKeywords(),
		CacheTTL:         5 * time.Minute,
	}
}

// Validate checks the configuration for values that would corrupt scoring.
func (c *Config) Validate() error {
	for name, w := range map[string]float64{
		"friend.jaccard":     c.Friend.Jaccard,
		"friend.adamic_adar": c.Friend.AdamicAdar,
		"friend.department":  c.Friend.Department,
		"friend.skills":      c.Friend.Skills,
		"friend.interests":   c.Friend.Interests,
		"project.skills":     c.Project.Skills,
		"project.interests":  c.Project.Interests,
		"project.feedback":   c.Project.Feedback,
		"team.skills":        c.Team.Skills,
		"team.interests":     c.Team.Interests,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("weight %s must be in [0,1], got %v", name, w)
		}
	}

	for name, b := range map[string]BlendWeights{
		"project.skill_blend": c.Project.SkillBlend,
		"team.skill_blend":    c.Team.SkillBlend,
		"team.interest_blend": c.Team.InterestBlend,
	} {
		if b.Jaccard < 0 || b.Cosine < 0 {
			return fmt.Errorf("blend %s has negative weight", name)
		}
	}

	if c.Gate.MinComposite < 0 || c.Gate.MinMetric < 0 {
		return fmt.Errorf("gate thresholds must be non-negative")
	}
	if c.Limits.DefaultLimit <= 0 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit %d below default_limit %d", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}
	if c.Limits.DefaultTeamSize <= 0 {
		return fmt.Errorf("limits.default_team_size must be positive, got %d", c.Limits.DefaultTeamSize)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative, got %v", c.CacheTTL)
	}
	return nil
}

// ClampLimit normalizes a requested result count against the configured
// bounds. Non-positive requests fall back to the default.
func (c *Config) ClampLimit(requested int) int {
	if requested <= 0 {
		return c.Limits.DefaultLimit
	}
	if requested > c.Limits.MaxLimit {
		return c.Limits.MaxLimit
	}
	return requested
}
