package service

import (
	"context"
	"errors"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/util"
	"testing"
)

func TestCreateSkillValidation(t *testing.T) {
	env := newTestEnv(t)
	owner := newOwner()

	cases := []struct {
		name string
		in   CreateSkillInput
	}{
		{"missing name", CreateSkillInput{SkillName: "  ", Category: model.CategoryTechnical, Level: model.LevelBeginner, ConfidenceScore: 3}},
		{"bad category", CreateSkillInput{SkillName: "Go", Category: "Soft", Level: model.LevelBeginner, ConfidenceScore: 3}},
		{"bad level", CreateSkillInput{SkillName: "Go", Category: model.CategoryTechnical, Level: "Expert", ConfidenceScore: 3}},
		{"confidence too high", CreateSkillInput{SkillName: "Go", Category: model.CategoryTechnical, Level: model.LevelBeginner, ConfidenceScore: 6}},
		{"confidence zero", CreateSkillInput{SkillName: "Go", Category: model.CategoryTechnical, Level: model.LevelBeginner}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.skills.Create(context.Background(), owner, tc.in); !errors.Is(err, util.ErrValidation) {
				t.Fatalf("got=%v want ErrValidation", err)
			}
		})
	}
}

func TestCreateSkillRecomputesReadiness(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()

	env.addSkill(t, owner, "Go", model.CategoryTechnical, 5)
	res, err := env.skills.Create(ctx, owner, CreateSkillInput{
		SkillName:       " Storytelling ",
		Category:        model.CategoryHR,
		Level:           model.LevelAdvanced,
		ConfidenceScore: 4,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Skill.SkillName != "Storytelling" || res.Skill.ID == "" {
		t.Fatalf("skill: %+v", res.Skill)
	}
	if res.Readiness.TechnicalScore != 5 || res.Readiness.HRScore != 4 || res.Readiness.OverallScore != 4.7 {
		t.Fatalf("readiness: %+v", res.Readiness)
	}

	_, err = env.skills.Create(ctx, owner, CreateSkillInput{SkillName: "Go", Category: model.CategoryTechnical, Level: model.LevelBeginner, ConfidenceScore: 1})
	if !errors.Is(err, util.ErrConflict) {
		t.Fatalf("duplicate name: got=%v want ErrConflict", err)
	}

	// 不同用户可以使用相同的技能名
	if _, err := env.skills.Create(ctx, newOwner(), CreateSkillInput{SkillName: "Go", Category: model.CategoryTechnical, Level: model.LevelBeginner, ConfidenceScore: 1}); err != nil {
		t.Fatalf("same name for other owner: %v", err)
	}
}

func TestUpdateSkillWritesHistoryOnConfidenceChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()
	skill := env.addSkill(t, owner, "Go", model.CategoryTechnical, 2)

	res, err := env.skills.Update(ctx, owner, skill.ID, SkillPatch{ConfidenceScore: intPtr(4)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.Skill.ConfidenceScore != 4 || res.Skill.SkillName != "Go" || res.Skill.Level != model.LevelIntermediate {
		t.Fatalf("patched skill: %+v", res.Skill)
	}
	if res.Readiness.TechnicalScore != 4 {
		t.Fatalf("readiness not recomputed: %+v", res.Readiness)
	}

	// 只改名称不写历史
	if _, err := env.skills.Update(ctx, owner, skill.ID, SkillPatch{SkillName: strPtr("Golang")}); err != nil {
		t.Fatalf("rename: %v", err)
	}
	// 置信度未变化也不写历史
	if _, err := env.skills.Update(ctx, owner, skill.ID, SkillPatch{ConfidenceScore: intPtr(4)}); err != nil {
		t.Fatalf("same confidence: %v", err)
	}

	var rows []model.SkillHistory
	env.db.Where("owner_id = ?", owner).Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("history rows: got=%d want=1", len(rows))
	}
	if rows[0].OldConfidence != 2 || rows[0].NewConfidence != 4 || rows[0].SkillID != skill.ID {
		t.Fatalf("history entry: %+v", rows[0])
	}
	if rows[0].ChangeDay != util.DayKey(env.now) {
		t.Fatalf("change day: got=%s want=%s", rows[0].ChangeDay, util.DayKey(env.now))
	}

	streak, _ := env.streak.GetStreak(ctx, owner)
	if streak.CurrentStreak != 1 {
		t.Fatalf("skill update should count as activity: %+v", streak)
	}
}

func TestUpdateSkillErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()
	skill := env.addSkill(t, owner, "Go", model.CategoryTechnical, 2)

	if _, err := env.skills.Update(ctx, owner, skill.ID, SkillPatch{}); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("empty patch: got=%v want ErrValidation", err)
	}
	if _, err := env.skills.Update(ctx, owner, skill.ID, SkillPatch{ConfidenceScore: intPtr(9)}); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("bad confidence: got=%v want ErrValidation", err)
	}
	if _, err := env.skills.Update(ctx, newOwner(), skill.ID, SkillPatch{ConfidenceScore: intPtr(3)}); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("foreign owner: got=%v want ErrNotFound", err)
	}
}

func TestDeleteSkillRecomputesReadiness(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()
	env.addSkill(t, owner, "Go", model.CategoryTechnical, 5)
	weak := env.addSkill(t, owner, "SQL", model.CategoryTechnical, 1)

	if _, err := env.skills.Delete(ctx, newOwner(), weak.ID); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("foreign delete: got=%v want ErrNotFound", err)
	}

	readiness, err := env.skills.Delete(ctx, owner, weak.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if readiness.TechnicalScore != 5 {
		t.Fatalf("technical after delete: got=%v want=5", readiness.TechnicalScore)
	}

	list, err := env.skills.List(ctx, owner)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Skills) != 1 || list.Skills[0].SkillName != "Go" {
		t.Fatalf("remaining skills: %+v", list.Skills)
	}
}
