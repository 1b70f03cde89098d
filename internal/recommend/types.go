// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"time"
)

// FriendshipStatus describes the relationship between two users as seen from
// the first user's side.
type FriendshipStatus string

// Friendship statuses.
const (
	StatusNone            FriendshipStatus = "none"
	StatusFriends         FriendshipStatus = "friends"
	StatusPendingSent     FriendshipStatus = "pending_sent"
	StatusPendingReceived FriendshipStatus = "pending_received"
	StatusBlocked         FriendshipStatus = "blocked"
)

// Pending reports whether the status represents an open friend request in
// either direction. Pending candidates ride the priority lane of the top-K
// selector and bypass the minimum-similarity gate.
func (s FriendshipStatus) Pending() bool {
	return s == StatusPendingSent || s == StatusPendingReceived
}

// Excluded reports whether the status disqualifies a candidate outright.
func (s FriendshipStatus) Excluded() bool {
	return s == StatusFriends || s == StatusBlocked
}

// Profile is the canonical student profile used throughout scoring.
// Boundary adapters normalize external payloads into this shape.
type Profile struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	University string   `json:"university,omitempty"`
	Department string   `json:"department,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Interests  []string `json:"interests,omitempty"`
}

// Project is a canonical project looking for collaborators.
type Project struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	University         string   `json:"university,omitempty"`
	Category           string   `json:"category,omitempty"`
	Status             string   `json:"status,omitempty"`
	RequiredSkills     []string `json:"required_skills,omitempty"`
	PreferredInterests []string `json:"preferred_interests,omitempty"`
	CreatorID          string   `json:"creator_id"`
	MemberIDs          []string `json:"member_ids,omitempty"`
	MaxMembers         int      `json:"max_members,omitempty"`
}

// ProjectStatusRecruiting marks projects open for new members.
const ProjectStatusRecruiting = "recruiting"

// IsMember reports whether the given user created or already joined the
// project.
func (p *Project) IsMember(userID string) bool {
	if p.CreatorID == userID {
		return true
	}
	for _, id := range p.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Feedback is a single peer-feedback entry about a user. Ratings are on a
// 1-5 scale; the aggregator normalizes them to [0,1].
type Feedback struct {
	Type      FeedbackType `json:"type"`
	Rating    float64      `json:"rating"`
	CreatedAt time.Time    `json:"created_at"`
	Verified  bool         `json:"verified,omitempty"`
	ProjectID string       `json:"project_id,omitempty"`
}

// FeedbackType categorizes peer feedback. Each type carries its own weight
// in the aggregate score.
type FeedbackType string

// Feedback types.
const (
	FeedbackTechnical      FeedbackType = "technical"
	FeedbackCommunication  FeedbackType = "communication"
	FeedbackTeamwork       FeedbackType = "teamwork"
	FeedbackResponsibility FeedbackType = "responsibility"
	FeedbackOverall        FeedbackType = "overall"
)

// SimilarityMetrics holds the individual metric values computed between a
// seed user and one candidate. All values are in [0,1] except AdamicAdar,
// which is unbounded above but small in practice.
type SimilarityMetrics struct {
	Jaccard    float64 `json:"jaccard"`
	AdamicAdar float64 `json:"adamic_adar"`
	Department float64 `json:"department"`
	Skills     float64 `json:"skills"`
	Interests  float64 `json:"interests"`
}

// Max returns the largest individual metric value. Used by the
// minimum-similarity gate, which passes a candidate on any single strong
// metric.
func (m SimilarityMetrics) Max() float64 {
	max := m.Jaccard
	for _, v := range []float64{m.AdamicAdar, m.Department, m.Skills, m.Interests} {
		if v > max {
			max = v
		}
	}
	return max
}

// FriendRecommendation is one scored friend candidate.
type FriendRecommendation struct {
	Profile       Profile           `json:"profile"`
	Score         float64           `json:"score"`
	Metrics       SimilarityMetrics `json:"metrics"`
	Status        FriendshipStatus  `json:"status"`
	MutualFriends []string          `json:"mutual_friends,omitempty"`
	Reasons       []string          `json:"reasons"`
}

// MatchBreakdown explains a project-match score.
type MatchBreakdown struct {
	SkillScore          float64 `json:"skill_score"`
	InterestScore       float64 `json:"interest_score"`
	FeedbackScore       float64 `json:"feedback_score"`
	Base                float64 `json:"base"`
	Bonus               float64 `json:"bonus"`
	UniversityMatch     bool    `json:"university_match"`
	DepartmentRelevance bool    `json:"department_relevance"`
}

// ProjectMatch is one scored project for a user.
type ProjectMatch struct {
	Project   Project        `json:"project"`
	Score     float64        `json:"score"`
	Breakdown MatchBreakdown `json:"breakdown"`
	Reasons   []string       `json:"reasons"`
}

// CollaboratorMatch is one scored user for a project.
type CollaboratorMatch struct {
	Profile   Profile        `json:"profile"`
	Score     float64        `json:"score"`
	Breakdown MatchBreakdown `json:"breakdown"`
	Reasons   []string       `json:"reasons"`
}

// TeamBreakdown explains a teammate-compatibility score.
type TeamBreakdown struct {
	SkillJaccard    float64 `json:"skill_jaccard"`
	SkillCosine     float64 `json:"skill_cosine"`
	InterestJaccard float64 `json:"interest_jaccard"`
	InterestCosine  float64 `json:"interest_cosine"`
	SkillScore      float64 `json:"skill_score"`
	InterestScore   float64 `json:"interest_score"`
	Base            float64 `json:"base"`
	Bonus           float64 `json:"bonus"`
	SameUniversity  bool    `json:"same_university"`
	SameDepartment  bool    `json:"same_department"`
	CrossDepartment bool    `json:"cross_department"`
}

// TeammateMatch is one scored teammate candidate.
type TeammateMatch struct {
	Profile         Profile       `json:"profile"`
	Score           float64       `json:"score"`
	Breakdown       TeamBreakdown `json:"breakdown"`
	SharedSkills    []string      `json:"shared_skills,omitempty"`
	SharedInterests []string      `json:"shared_interests,omitempty"`
	Reasons         []string      `json:"reasons"`
}

// TeamComposition is the result of the greedy team builder: an ordered set
// of members with aggregate coverage statistics.
type TeamComposition struct {
	Members          []TeammateMatch `json:"members"`
	SkillCoverage    float64         `json:"skill_coverage"`
	CoveredSkills    []string        `json:"covered_skills,omitempty"`
	MissingSkills    []string        `json:"missing_skills,omitempty"`
	AvgCompatibility float64         `json:"avg_compatibility"`
}

// SimilarityResult is the pairwise similarity between two users.
type SimilarityResult struct {
	UserID        string            `json:"user_id"`
	OtherID       string            `json:"other_id"`
	Metrics       SimilarityMetrics `json:"metrics"`
	Score         float64           `json:"score"`
	MutualFriends []string          `json:"mutual_friends,omitempty"`
}

// Metadata describes how a response was produced. Attached to every
// response for observability.
type Metadata struct {
	RequestID   string    `json:"request_id"`
	GeneratedAt time.Time `json:"generated_at"`
	LatencyMs   int64     `json:"latency_ms"`
	CacheHit    bool      `json:"cache_hit"`
	PoolSize    int       `json:"pool_size"`
	Evaluated   int       `json:"evaluated"`
	Skipped     int       `json:"skipped"`
}

// FriendRequest asks for friend recommendations for one user.
type FriendRequest struct {
	UserID    string `json:"user_id"`
	Limit     int    `json:"limit,omitempty"`
	SkipCache bool   `json:"skip_cache,omitempty"`
}

// FriendResponse carries ranked friend recommendations.
type FriendResponse struct {
	UserID          string                 `json:"user_id"`
	Recommendations []FriendRecommendation `json:"recommendations"`
	Metadata        Metadata               `json:"metadata"`
}

// ProjectMatchRequest asks for project recommendations for one user.
type ProjectMatchRequest struct {
	UserID    string  `json:"user_id"`
	Limit     int     `json:"limit,omitempty"`
	MinScore  float64 `json:"min_score,omitempty"`
	SkipCache bool    `json:"skip_cache,omitempty"`
}

// ProjectMatchResponse carries ranked projects for a user.
type ProjectMatchResponse struct {
	UserID   string         `json:"user_id"`
	Matches  []ProjectMatch `json:"matches"`
	Metadata Metadata       `json:"metadata"`
}

// CollaboratorRequest asks for candidate users for one project.
type CollaboratorRequest struct {
	ProjectID string  `json:"project_id"`
	Limit     int     `json:"limit,omitempty"`
	MinScore  float64 `json:"min_score,omitempty"`
	SkipCache bool    `json:"skip_cache,omitempty"`
}

// CollaboratorResponse carries ranked users for a project.
type CollaboratorResponse struct {
	ProjectID string              `json:"project_id"`
	Matches   []CollaboratorMatch `json:"matches"`
	Metadata  Metadata            `json:"metadata"`
}

// TeammateRequest asks for teammate recommendations for one user.
type TeammateRequest struct {
	UserID    string `json:"user_id"`
	Limit     int    `json:"limit,omitempty"`
	SkipCache bool   `json:"skip_cache,omitempty"`
}

// TeammateResponse carries ranked teammate candidates.
type TeammateResponse struct {
	UserID   string          `json:"user_id"`
	Matches  []TeammateMatch `json:"matches"`
	Metadata Metadata        `json:"metadata"`
}

// TeamCompositionRequest asks the greedy builder to assemble a team for a
// creator around a set of required skills.
type TeamCompositionRequest struct {
	CreatorID      string   `json:"creator_id"`
	RequiredSkills []string `json:"required_skills"`
	TeamSize       int      `json:"team_size,omitempty"`
}

// TeamCompositionResponse carries the assembled team.
type TeamCompositionResponse struct {
	CreatorID   string          `json:"creator_id"`
	Composition TeamComposition `json:"composition"`
	Metadata    Metadata        `json:"metadata"`
}
