package service

import (
	"context"
	"interview_readiness_backend/internal/model"
	"testing"
)

func TestComputeReadiness(t *testing.T) {
	skill := func(c model.SkillCategory, score int) model.Skill {
		return model.Skill{Category: c, ConfidenceScore: score}
	}

	cases := []struct {
		name                   string
		skills                 []model.Skill
		technical, hr, overall float64
	}{
		{"empty", nil, 0, 0, 0},
		{"behavioral only", []model.Skill{skill(model.CategoryBehavioral, 5)}, 0, 0, 0},
		{"technical only", []model.Skill{skill(model.CategoryTechnical, 1), skill(model.CategoryTechnical, 2), skill(model.CategoryTechnical, 2)}, 1.67, 0, 1.17},
		{"hr only", []model.Skill{skill(model.CategoryHR, 4)}, 0, 4, 1.2},
		{"mixed", []model.Skill{
			skill(model.CategoryTechnical, 4),
			skill(model.CategoryTechnical, 5),
			skill(model.CategoryHR, 3),
			skill(model.CategoryBehavioral, 1),
		}, 4.5, 3, 4.05},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			technical, hr, overall := ComputeReadiness(tc.skills)
			if technical != tc.technical || hr != tc.hr || overall != tc.overall {
				t.Fatalf("got=(%v,%v,%v) want=(%v,%v,%v)", technical, hr, overall, tc.technical, tc.hr, tc.overall)
			}
		})
	}
}

func TestReadinessPercent(t *testing.T) {
	if got := ReadinessPercent(nil); got != 0 {
		t.Fatalf("nil snapshot: got=%d want=0", got)
	}
	cases := map[float64]int{0: 0, 2.5: 50, 2.98: 60, 4.05: 81, 5: 100}
	for overall, want := range cases {
		if got := ReadinessPercent(&model.ReadinessScore{OverallScore: overall}); got != want {
			t.Fatalf("overall=%v: got=%d want=%d", overall, got, want)
		}
	}
}

func TestRecomputeKeepsSingleSnapshotPerOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()

	env.addSkill(t, owner, "Go", model.CategoryTechnical, 4)
	env.addSkill(t, owner, "Storytelling", model.CategoryHR, 2)

	score, err := env.readiness.Recompute(ctx, owner)
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if score.TechnicalScore != 4 || score.HRScore != 2 || score.OverallScore != 3.4 {
		t.Fatalf("unexpected snapshot: %+v", score)
	}

	var count int64
	env.db.Model(&model.ReadinessScore{}).Where("owner_id = ?", owner).Count(&count)
	if count != 1 {
		t.Fatalf("snapshot rows: got=%d want=1", count)
	}
}
