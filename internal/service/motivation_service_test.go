package service

import (
	"context"
	"interview_readiness_backend/internal/model"
	"testing"
)

func TestMotivationQuoteByReadiness(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name        string
		skills      []int
		wantPercent int
		wantQuote   string
		wantType    string
	}{
		{"no snapshot", nil, 0, lowReadinessQuote, "context-aware"},
		{"low", []int{2}, 28, lowReadinessQuote, "context-aware"},
		{"middle", []int{5, 5}, 70, "", "random"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			owner := newOwner()
			for i, c := range tc.skills {
				env.addSkill(t, owner, string(rune('A'+i)), model.CategoryTechnical, c)
			}

			got, err := env.motivation.Quote(ctx, owner)
			if err != nil {
				t.Fatalf("Quote: %v", err)
			}
			if got.ReadinessPercent != tc.wantPercent || got.Type != tc.wantType {
				t.Fatalf("got=%+v want percent=%d type=%s", got, tc.wantPercent, tc.wantType)
			}
			if tc.wantQuote != "" && got.Quote != tc.wantQuote {
				t.Fatalf("quote: got=%q want=%q", got.Quote, tc.wantQuote)
			}
		})
	}
}

func TestMotivationRandomUsesEnabledQuotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()
	env.addSkill(t, owner, "Go", model.CategoryTechnical, 4)

	enabled, err := env.motivation.MotivationRepo.GetEnabled(ctx)
	if err != nil || len(enabled) == 0 {
		t.Fatalf("seeded quotes: %d err=%v", len(enabled), err)
	}

	got, err := env.motivation.Quote(ctx, owner)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.ReadinessPercent != 56 || got.Type != "random" || got.Quote != enabled[0].Content {
		t.Fatalf("got=%+v want first enabled quote", got)
	}

	// 全部禁用后使用默认短句
	env.db.Model(&model.Motivation{}).Where("1 = 1").Update("is_enabled", false)
	got, _ = env.motivation.Quote(ctx, owner)
	if got.Quote != defaultQuote {
		t.Fatalf("quote with none enabled: got=%q want=%q", got.Quote, defaultQuote)
	}
}

func TestMotivationHighReadiness(t *testing.T) {
	env := newTestEnv(t)
	owner := newOwner()
	env.addSkill(t, owner, "Go", model.CategoryTechnical, 5)
	env.addSkill(t, owner, "Storytelling", model.CategoryHR, 4)

	got, err := env.motivation.Quote(context.Background(), owner)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if got.ReadinessPercent != 94 || got.Quote != highReadinessQuote || got.Type != "context-aware" {
		t.Fatalf("got=%+v", got)
	}
}
