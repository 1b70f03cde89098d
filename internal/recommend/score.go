// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"strings"
)

// clamp01 bounds a score to [0,1]. Bonuses are added before clamping, so a
// near-saturated base plus bonuses lands exactly at 1.0.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CompositeSimilarity folds the five friend-domain metrics into one score
// using the configured weight profile.
func CompositeSimilarity(m SimilarityMetrics, w FriendWeights) float64 {
	sum := m.Jaccard*w.Jaccard +
		m.AdamicAdar*w.AdamicAdar +
		m.Department*w.Department +
		m.Skills*w.Skills +
		m.Interests*w.Interests
	return clamp01(sum)
}

// blend mixes a Jaccard score and a cosine score.
func (b BlendWeights) blend(jaccard, cosine float64) float64 {
	return jaccard*b.Jaccard + cosine*b.Cosine
}

// categoryRelevant reports whether a user's department keyword-matches a
// project category.
func categoryRelevant(department, category string, keywords map[string][]string) bool {
	if department == "" || category == "" {
		return false
	}
	terms, ok := keywords[department]
	if !ok {
		return false
	}
	category = strings.ToLower(category)
	for _, kw := range terms {
		if strings.Contains(category, kw) {
			return true
		}
	}
	return false
}

// ProjectMatchScore scores a user against a project. The base is a weighted
// sum of the blended skill score, the interest overlap and the user's
// aggregate feedback; the university and department-relevance bonuses are
// added on top and the total is clamped to [0,1] afterwards.
func ProjectMatchScore(user *Profile, project *Project, feedbackScore float64, w ProjectWeights, keywords map[string][]string) (float64, MatchBreakdown) {
	skillJaccard := Jaccard(user.Skills, project.RequiredSkills)
	skillCosine := TermCosine(user.Skills, project.RequiredSkills)
	skillScore := w.SkillBlend.blend(skillJaccard, skillCosine)

	interestScore := Jaccard(user.Interests, project.PreferredInterests)

	base := skillScore*w.Skills + interestScore*w.Interests + feedbackScore*w.Feedback

	var bonus float64
	bd := MatchBreakdown{
		SkillScore:    skillScore,
		InterestScore: interestScore,
		FeedbackScore: feedbackScore,
		Base:          base,
	}

	if user.University != "" && user.University == project.University {
		bonus += w.UniversityBonus
		bd.UniversityMatch = true
	}
	if categoryRelevant(user.Department, project.Category, keywords) {
		bonus += w.CategoryBonus
		bd.DepartmentRelevance = true
	}
	bd.Bonus = bonus

	return clamp01(base + bonus), bd
}

// TeamCompatibilityScore scores how well two users would work together on a
// team. Skills and interests are each blended Jaccard-plus-cosine; the
// university bonus and exactly one of the department bonuses apply on top,
// then the total is clamped.
func TeamCompatibilityScore(a, b *Profile, w TeamWeights) (float64, TeamBreakdown) {
	bd := TeamBreakdown{
		SkillJaccard:    Jaccard(a.Skills, b.Skills),
		SkillCosine:     TermCosine(a.Skills, b.Skills),
		InterestJaccard: Jaccard(a.Interests, b.Interests),
		InterestCosine:  TermCosine(a.Interests, b.Interests),
	}
	bd.SkillScore = w.SkillBlend.blend(bd.SkillJaccard, bd.SkillCosine)
	bd.InterestScore = w.InterestBlend.blend(bd.InterestJaccard, bd.InterestCosine)
	bd.Base = bd.SkillScore*w.Skills + bd.InterestScore*w.Interests

	var bonus float64
	// Bare equality, matching DeptScore: two empty universities still earn
	// the bonus.
	if a.University == b.University {
		bonus += w.UniversityBonus
		bd.SameUniversity = true
	}
	switch {
	case a.Department == "" || b.Department == "":
		// No department signal, no bonus either way.
	case a.Department == b.Department:
		bonus += w.SameDeptBonus
		bd.SameDepartment = true
	default:
		bonus += w.CrossDeptBonus
		bd.CrossDepartment = true
	}
	bd.Bonus = bonus

	return clamp01(bd.Base + bonus), bd
}

// PassesGate applies the minimum-similarity gate for none-status friend
// candidates: the composite must meet the floor OR any single metric must
// clear the per-metric threshold.
func PassesGate(composite float64, m SimilarityMetrics, g GateConfig) bool {
	return composite >= g.MinComposite || m.Max() >= g.MinMetric
}
