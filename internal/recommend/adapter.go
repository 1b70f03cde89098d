// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Upstream clients disagree on field names: some send "skills", others
// "technicalSkills"; projects carry required skills under three different
// keys. The payload types below accept every known variant and normalize
// into the canonical shapes at the boundary, so the scoring core never
// sniffs shapes itself.

// ProfilePayload is the wire shape of a user profile with all accepted
// field-name variants.
type ProfilePayload struct {
	ID              string   `json:"id"`
	UserID          string   `json:"userId"`
	Name            string   `json:"name"`
	FullName        string   `json:"fullName"`
	University      string   `json:"university"`
	Department      string   `json:"department"`
	Skills          []string `json:"skills"`
	TechnicalSkills []string `json:"technicalSkills"`
	Interests       []string `json:"interests"`
	AreasOfInterest []string `json:"areasOfInterest"`
}

// Canonical maps the payload onto the canonical Profile, preferring the
// primary field name when both variants are present.
func (p ProfilePayload) Canonical() Profile {
	return Profile{
		ID:         firstNonEmpty(p.ID, p.UserID),
		Name:       firstNonEmpty(p.Name, p.FullName),
		University: strings.TrimSpace(p.University),
		Department: strings.TrimSpace(p.Department),
		Skills:     firstNonEmptySlice(p.Skills, p.TechnicalSkills),
		Interests:  firstNonEmptySlice(p.Interests, p.AreasOfInterest),
	}
}

// ProjectPayload is the wire shape of a project with all accepted
// field-name variants.
type ProjectPayload struct {
	ID                 string   `json:"id"`
	ProjectID          string   `json:"projectId"`
	Title              string   `json:"title"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	University         string   `json:"university"`
	Category           string   `json:"category"`
	Status             string   `json:"status"`
	RequiredSkills     []string `json:"requiredSkills"`
	Skills             []string `json:"skills"`
	SkillRequirements  []string `json:"skillRequirements"`
	PreferredInterests []string `json:"preferredInterests"`
	Categories         []string `json:"categories"`
	Tags               []string `json:"tags"`
	CreatorID          string   `json:"creatorId"`
	OwnerID            string   `json:"ownerId"`
	MemberIDs          []string `json:"memberIds"`
	MaxMembers         int      `json:"maxMembers"`
}

// Canonical maps the payload onto the canonical Project.
func (p ProjectPayload) Canonical() Project {
	return Project{
		ID:                 firstNonEmpty(p.ID, p.ProjectID),
		Title:              firstNonEmpty(p.Title, p.Name),
		Description:        p.Description,
		University:         strings.TrimSpace(p.University),
		Category:           strings.TrimSpace(p.Category),
		Status:             strings.ToLower(strings.TrimSpace(p.Status)),
		RequiredSkills:     firstNonEmptySlice(p.RequiredSkills, p.Skills, p.SkillRequirements),
		PreferredInterests: firstNonEmptySlice(p.PreferredInterests, p.Categories, p.Tags),
		CreatorID:          firstNonEmpty(p.CreatorID, p.OwnerID),
		MemberIDs:          p.MemberIDs,
		MaxMembers:         p.MaxMembers,
	}
}

// FeedbackPayload is the wire shape of one feedback entry. Ratings arrive
// under three different keys depending on the client version.
type FeedbackPayload struct {
	Type      string    `json:"type"`
	Rating    float64   `json:"rating"`
	Score     float64   `json:"score"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	Verified  bool      `json:"verified"`
	ProjectID string    `json:"projectId"`
}

// Canonical maps the payload onto the canonical Feedback entry.
func (p FeedbackPayload) Canonical() Feedback {
	rating := p.Rating
	if rating == 0 {
		rating = p.Score
	}
	if rating == 0 {
		rating = p.Value
	}
	return Feedback{
		Type:      FeedbackType(strings.ToLower(strings.TrimSpace(p.Type))),
		Rating:    rating,
		CreatedAt: p.CreatedAt,
		Verified:  p.Verified,
		ProjectID: p.ProjectID,
	}
}

// DecodeProfile parses a profile payload and normalizes it.
func DecodeProfile(data []byte) (Profile, error) {
	var payload ProfilePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Profile{}, fmt.Errorf("decode profile payload: %w", err)
	}
	return payload.Canonical(), nil
}

// DecodeProject parses a project payload and normalizes it.
func DecodeProject(data []byte) (Project, error) {
	var payload ProjectPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Project{}, fmt.Errorf("decode project payload: %w", err)
	}
	return payload.Canonical(), nil
}

// firstNonEmpty returns the first non-blank string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}

// firstNonEmptySlice returns the first slice with at least one element.
func firstNonEmptySlice(slices ...[]string) []string {
	for _, s := range slices {
		if len(s) > 0 {
			return s
		}
	}
	return nil
}
