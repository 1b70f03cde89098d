// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"testing"
)

func TestCompositeSimilarity(t *testing.T) {
	w := DefaultConfig().Friend

	tests := []struct {
		name    string
		metrics SimilarityMetrics
		want    float64
	}{
		{"all zero", SimilarityMetrics{}, 0},
		{"all one clamps", SimilarityMetrics{Jaccard: 1, AdamicAdar: 1, Department: 1, Skills: 1, Interests: 1}, 1},
		{
			"weighted sum",
			SimilarityMetrics{Jaccard: 0.5, AdamicAdar: 0.2, Department: 1, Skills: 0.4, Interests: 0.1},
			0.5*0.3 + 0.2*0.2 + 1*0.1 + 0.4*0.2 + 0.1*0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompositeSimilarity(tt.metrics, w)
			if !almostEqual(got, tt.want) {
				t.Errorf("CompositeSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompositeSimilarity_UnboundedMetricClamped(t *testing.T) {
	// Adamic-Adar has no upper bound; an extreme value must not push the
	// composite past 1.
	m := SimilarityMetrics{AdamicAdar: 12}
	if got := CompositeSimilarity(m, DefaultConfig().Friend); got != 1 {
		t.Errorf("composite with extreme adamic-adar = %v, want 1", got)
	}
}

func TestProjectMatchScore_UniversityBonus(t *testing.T) {
	cfg := DefaultConfig()
	project := &Project{
		ID:             "p1",
		University:     "Tech University",
		RequiredSkills: []string{"python", "sql"},
	}
	local := &Profile{ID: "u1", University: "Tech University", Skills: []string{"Python", "React"}}
	remote := &Profile{ID: "u2", University: "Other University", Skills: []string{"Python", "React"}}

	localScore, localBd := ProjectMatchScore(local, project, NeutralFeedbackScore, cfg.Project, cfg.CategoryKeywords)
	remoteScore, remoteBd := ProjectMatchScore(remote, project, NeutralFeedbackScore, cfg.Project, cfg.CategoryKeywords)

	if !localBd.UniversityMatch {
		t.Error("expected university_match flag for same-university candidate")
	}
	if remoteBd.UniversityMatch {
		t.Error("unexpected university_match flag for different university")
	}
	if !almostEqual(localScore-remoteScore, cfg.Project.UniversityBonus) {
		t.Errorf("university bonus delta = %v, want %v", localScore-remoteScore, cfg.Project.UniversityBonus)
	}
}

func TestProjectMatchScore_SkillJaccardCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	project := &Project{ID: "p1", RequiredSkills: []string{"python", "sql"}}
	user := &Profile{ID: "u1", Skills: []string{"Python", "React"}}

	_, bd := ProjectMatchScore(user, project, NeutralFeedbackScore, cfg.Project, cfg.CategoryKeywords)

	wantJaccard := 1.0 / 3.0
	wantSkill := cfg.Project.SkillBlend.blend(wantJaccard, TermCosine(user.Skills, project.RequiredSkills))
	if !almostEqual(bd.SkillScore, wantSkill) {
		t.Errorf("skill score = %v, want %v", bd.SkillScore, wantSkill)
	}
}

func TestProjectMatchScore_DepartmentRelevance(t *testing.T) {
	cfg := DefaultConfig()
	project := &Project{ID: "p1", Category: "Web Development"}
	user := &Profile{ID: "u1", Department: "Computer Science"}

	_, bd := ProjectMatchScore(user, project, NeutralFeedbackScore, cfg.Project, cfg.CategoryKeywords)
	if !bd.DepartmentRelevance {
		t.Error("expected department_relevance for CS user on web development project")
	}

	design := &Profile{ID: "u2", Department: "Design"}
	_, bd = ProjectMatchScore(design, project, NeutralFeedbackScore, cfg.Project, cfg.CategoryKeywords)
	if bd.DepartmentRelevance {
		t.Error("unexpected department_relevance for Design user on web development project")
	}
}

func TestProjectMatchScore_BonusSaturation(t *testing.T) {
	// A near-saturated base plus both bonuses clamps to exactly 1.0.
	w := ProjectWeights{
		Skills:          1,
		SkillBlend:      BlendWeights{Jaccard: 1},
		UniversityBonus: 0.10,
		CategoryBonus:   0.05,
	}
	keywords := map[string][]string{"Computer Science": {"software"}}
	project := &Project{
		ID:             "p1",
		University:     "Tech University",
		Category:       "Software Tools",
		RequiredSkills: []string{"go"},
	}
	user := &Profile{
		ID:         "u1",
		University: "Tech University",
		Department: "Computer Science",
		Skills:     []string{"go"},
	}

	score, bd := ProjectMatchScore(user, project, 0, w, keywords)
	if score != 1 {
		t.Errorf("saturated score = %v, want exactly 1", score)
	}
	if !almostEqual(bd.Bonus, 0.15) {
		t.Errorf("bonus = %v, want 0.15", bd.Bonus)
	}
}

func TestTeamCompatibilityScore_DepartmentBonuses(t *testing.T) {
	cfg := DefaultConfig()
	base := Profile{ID: "a", University: "Tech University", Department: "Computer Science",
		Skills: []string{"go"}, Interests: []string{"ai"}}

	tests := []struct {
		name      string
		other     Profile
		wantSame  bool
		wantCross bool
		wantBonus float64
	}{
		{
			"same department",
			Profile{ID: "b", University: "Tech University", Department: "Computer Science"},
			true, false,
			cfg.Team.UniversityBonus + cfg.Team.SameDeptBonus,
		},
		{
			"cross department",
			Profile{ID: "c", University: "Tech University", Department: "Design"},
			false, true,
			cfg.Team.UniversityBonus + cfg.Team.CrossDeptBonus,
		},
		{
			"missing department no bonus",
			Profile{ID: "d", University: "Tech University"},
			false, false,
			cfg.Team.UniversityBonus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bd := TeamCompatibilityScore(&base, &tt.other, cfg.Team)
			if bd.SameDepartment != tt.wantSame || bd.CrossDepartment != tt.wantCross {
				t.Errorf("flags same=%v cross=%v, want same=%v cross=%v",
					bd.SameDepartment, bd.CrossDepartment, tt.wantSame, tt.wantCross)
			}
			if !almostEqual(bd.Bonus, tt.wantBonus) {
				t.Errorf("bonus = %v, want %v", bd.Bonus, tt.wantBonus)
			}
			if bd.SameDepartment && bd.CrossDepartment {
				t.Error("department bonuses must be mutually exclusive")
			}
		})
	}
}

func TestTeamCompatibilityScore_EmptyUniversitiesMatch(t *testing.T) {
	cfg := DefaultConfig()
	a := &Profile{ID: "a", Skills: []string{"go"}}
	b := &Profile{ID: "b", Skills: []string{"go"}}

	_, bd := TeamCompatibilityScore(a, b, cfg.Team)
	if !bd.SameUniversity {
		t.Error("expected same_university flag for two unset universities")
	}
	if !almostEqual(bd.Bonus, cfg.Team.UniversityBonus) {
		t.Errorf("bonus = %v, want %v", bd.Bonus, cfg.Team.UniversityBonus)
	}
}

func TestTeamCompatibilityScore_IdenticalProfiles(t *testing.T) {
	cfg := DefaultConfig()
	a := &Profile{ID: "a", University: "Tech University", Department: "Computer Science",
		Skills: []string{"go", "sql"}, Interests: []string{"ai", "music"}}
	b := &Profile{ID: "b", University: "Tech University", Department: "Computer Science",
		Skills: []string{"go", "sql"}, Interests: []string{"ai", "music"}}

	score, bd := TeamCompatibilityScore(a, b, cfg.Team)
	if !almostEqual(bd.Base, 1) {
		t.Errorf("base for identical profiles = %v, want 1", bd.Base)
	}
	if score != 1 {
		t.Errorf("score = %v, want clamped 1", score)
	}
}

func TestPassesGate(t *testing.T) {
	g := GateConfig{MinComposite: 0.10, MinMetric: 0.05}

	tests := []struct {
		name      string
		composite float64
		metrics   SimilarityMetrics
		want      bool
	}{
		{"passes on composite", 0.10, SimilarityMetrics{}, true},
		{"passes on single metric", 0.01, SimilarityMetrics{Interests: 0.05}, true},
		{"fails both", 0.04, SimilarityMetrics{Jaccard: 0.04}, false},
		{"or semantics not and", 0.02, SimilarityMetrics{AdamicAdar: 0.9}, true},
		{"department-less pair passes on dept metric",
			0.02, SimilarityMetrics{Department: DeptScore("", "")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PassesGate(tt.composite, tt.metrics, g); got != tt.want {
				t.Errorf("PassesGate(%v, %+v) = %v, want %v", tt.composite, tt.metrics, got, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults valid", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := cfg.Validate(); err != nil {
			t.Fatalf("default config invalid: %v", err)
		}
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Friend.Jaccard = -0.1
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for negative weight")
		}
	})

	t.Run("zero default limit rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Limits.DefaultLimit = 0
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for zero default limit")
		}
	})

	t.Run("max below default rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Limits.MaxLimit = cfg.Limits.DefaultLimit - 1
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for max below default")
		}
	})
}

func TestConfigClampLimit(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		requested int
		want      int
	}{
		{0, cfg.Limits.DefaultLimit},
		{-5, cfg.Limits.DefaultLimit},
		{5, 5},
		{cfg.Limits.MaxLimit + 100, cfg.Limits.MaxLimit},
	}

	for _, tt := range tests {
		if got := cfg.ClampLimit(tt.requested); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.requested, got, tt.want)
		}
	}
}
