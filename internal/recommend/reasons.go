// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"strings"
)

// Reason lists are deterministic: the same breakdown always yields the
// same ordered strings, and a list is never empty. The fallback reasons
// keep low-signal recommendations explainable in the UI.

const (
	maxNamedTerms  = 2
	maxTeamReasons = 4
)

// SharedTerms returns the terms present in both lists, case-insensitively,
// keeping the first list's casing and order, capped at maxNamedTerms.
func SharedTerms(a, b []string) []string {
	setB := normalizeTerms(b)
	var shared []string
	seen := make(map[string]struct{})
	for _, t := range a {
		norm := strings.ToLower(strings.TrimSpace(t))
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		if _, ok := setB[norm]; ok {
			shared = append(shared, strings.TrimSpace(t))
			if len(shared) == maxNamedTerms {
				break
			}
		}
	}
	return shared
}

// FriendReasons explains a friend recommendation from its metric bands.
func FriendReasons(m SimilarityMetrics, sameUniversity bool) []string {
	var reasons []string

	if m.Skills > 0.6 {
		reasons = append(reasons, "Similar technical skills")
	} else if m.Skills > 0.3 {
		reasons = append(reasons, "Complementary skills")
	}

	if m.Interests > 0.5 {
		reasons = append(reasons, "Shared interests and passions")
	}
	if sameUniversity {
		reasons = append(reasons, "Same university - easy to meet")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Potential for meaningful connection")
	}
	return reasons
}

// ProjectReasons explains a project or collaborator match.
func ProjectReasons(bd MatchBreakdown) []string {
	var reasons []string

	if bd.SkillScore > 0.7 {
		reasons = append(reasons, "Excellent skill match")
	} else if bd.SkillScore > 0.4 {
		reasons = append(reasons, "Good skill compatibility")
	} else if bd.SkillScore > 0.1 {
		reasons = append(reasons, "Some relevant skills")
	}

	if bd.InterestScore > 0.5 {
		reasons = append(reasons, "Strong interest alignment")
	} else if bd.InterestScore > 0.2 {
		reasons = append(reasons, "Shared interests")
	}

	if bd.FeedbackScore > 0.7 {
		reasons = append(reasons, "Excellent collaboration history")
	} else if bd.FeedbackScore > 0.6 {
		reasons = append(reasons, "Good peer ratings")
	}

	if bd.UniversityMatch {
		reasons = append(reasons, "Same university")
	}
	if bd.DepartmentRelevance {
		reasons = append(reasons, "Relevant academic background")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Potential for growth and learning")
	}
	return reasons
}

// TeamReasons explains a teammate match, capped at maxTeamReasons entries.
func TeamReasons(bd TeamBreakdown, sharedSkills, sharedInterests []string) []string {
	var reasons []string

	if bd.SkillScore > 0.7 {
		reasons = append(reasons, "Excellent skill synergy")
	} else if bd.SkillScore > 0.4 {
		reasons = append(reasons, "Good skill compatibility")
	} else if bd.SkillScore > 0.1 {
		reasons = append(reasons, "Complementary skills")
	}

	if bd.InterestScore > 0.6 {
		reasons = append(reasons, "Strong shared interests")
	} else if bd.InterestScore > 0.3 {
		reasons = append(reasons, "Similar project interests")
	}

	if bd.SameUniversity {
		reasons = append(reasons, "Same university")
	}
	if bd.CrossDepartment {
		reasons = append(reasons, "Diverse expertise")
	}
	if bd.SameDepartment {
		reasons = append(reasons, "Shared domain knowledge")
	}

	if len(sharedSkills) > 0 {
		reasons = append(reasons, "Shared skills: "+joinNamed(sharedSkills))
	}
	if len(sharedInterests) > 0 {
		reasons = append(reasons, "Common interests: "+joinNamed(sharedInterests))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Potential for collaboration")
	}
	if len(reasons) > maxTeamReasons {
		reasons = reasons[:maxTeamReasons]
	}
	return reasons
}

// joinNamed joins up to maxNamedTerms names.
func joinNamed(names []string) string {
	if len(names) > maxNamedTerms {
		names = names[:maxNamedTerms]
	}
	return strings.Join(names, ", ")
}
