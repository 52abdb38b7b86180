package service

import (
	"context"
	"errors"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/util"
	"testing"
	"time"
)

func newQuestionService(env *testEnv, provider Provider) *QuestionService {
	return NewQuestionService(env.questionRepo, env.streak, NewQuestionGateway(provider, time.Second))
}

func TestRecordAttemptUpsertsAndIncrements(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := newQuestionService(env, &fakeProvider{})
	owner := newOwner()

	first, err := svc.RecordAttempt(ctx, owner, AttemptRequest{QuestionID: "q-1", UserAnswer: strPtr("a"), IsCorrect: boolPtr(false)})
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if first.AttemptCount != 1 || first.IsCorrect {
		t.Fatalf("first attempt: %+v", first)
	}

	second, err := svc.RecordAttempt(ctx, owner, AttemptRequest{QuestionID: "q-1", UserAnswer: strPtr("b"), IsCorrect: boolPtr(true)})
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if second.ID != first.ID || second.AttemptCount != 2 || second.UserAnswer != "b" || !second.IsCorrect {
		t.Fatalf("second attempt: %+v", second)
	}

	var count int64
	env.db.Model(&model.QuestionAttempt{}).Where("owner_id = ?", owner).Count(&count)
	if count != 1 {
		t.Fatalf("attempt rows: got=%d want=1", count)
	}

	// 其他用户的同一题目互不影响
	other, err := svc.RecordAttempt(ctx, newOwner(), AttemptRequest{QuestionID: "q-1", UserAnswer: strPtr("c"), IsCorrect: boolPtr(true)})
	if err != nil || other.AttemptCount != 1 {
		t.Fatalf("other owner attempt: %+v err=%v", other, err)
	}

	streak, _ := env.streak.GetStreak(ctx, owner)
	if streak.CurrentStreak != 1 || streak.TotalActiveDays != 1 {
		t.Fatalf("attempts should advance streak once per day: %+v", streak)
	}
}

func TestRecordAttemptValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := newQuestionService(env, &fakeProvider{})

	cases := []AttemptRequest{
		{QuestionID: "", UserAnswer: strPtr("a"), IsCorrect: boolPtr(true)},
		{QuestionID: "q-1", UserAnswer: strPtr("a")},
		{QuestionID: "q-1", IsCorrect: boolPtr(true)},
	}
	for _, req := range cases {
		if _, err := svc.RecordAttempt(context.Background(), newOwner(), req); !errors.Is(err, util.ErrValidation) {
			t.Fatalf("req=%+v: got=%v want ErrValidation", req, err)
		}
	}

	// 空答案是合法输入，只有缺失才拒绝
	attempt, err := svc.RecordAttempt(context.Background(), newOwner(), AttemptRequest{QuestionID: "q-1", UserAnswer: strPtr(""), IsCorrect: boolPtr(false)})
	if err != nil || attempt.UserAnswer != "" || attempt.AttemptCount != 1 {
		t.Fatalf("empty answer: %+v err=%v", attempt, err)
	}
}

func TestGenerateAndStore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := newQuestionService(env, &fakeProvider{raw: "not json"})
	owner := newOwner()

	res, err := svc.GenerateAndStore(ctx, owner, GenerateRequest{Skill: "Go", Difficulty: model.DifficultyBeginner, Type: model.QuestionCoding})
	if err != nil {
		t.Fatalf("GenerateAndStore: %v", err)
	}
	if !res.UsedFallback || len(res.Questions) != 5 || res.GeneratedID == "" {
		t.Fatalf("result: %+v", res)
	}

	history, err := svc.History(ctx, owner)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].ID != res.GeneratedID || len(history[0].Questions) != 5 {
		t.Fatalf("history: %+v", history)
	}
	if !history[0].UsedFallback || history[0].ProviderError == "" {
		t.Fatalf("fallback metadata not stored: %+v", history[0])
	}

	activities, _ := env.streak.History(ctx, owner)
	if len(activities) != 1 || activities[0].ActivityType != model.ActivityAIPractice {
		t.Fatalf("activities: %+v", activities)
	}
	if activities[0].ReferenceID == nil || *activities[0].ReferenceID != res.GeneratedID {
		t.Fatalf("activity should reference the generated set")
	}

	if _, err := svc.GenerateAndStore(ctx, owner, GenerateRequest{Skill: "Go", Difficulty: "Nope", Type: model.QuestionCoding}); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("invalid request: got=%v want ErrValidation", err)
	}
}

func TestSwapGateway(t *testing.T) {
	env := newTestEnv(t)
	svc := newQuestionService(env, &fakeProvider{name: "first"})

	svc.SwapGateway(NewQuestionGateway(&fakeProvider{name: "second", raw: `[{"question":"Q"}]`}, time.Second))
	if got := svc.Gateway().ProviderName(); got != "second" {
		t.Fatalf("provider after swap: got=%s want=second", got)
	}

	res, err := svc.GenerateAndStore(context.Background(), newOwner(), goRequest(1))
	if err != nil {
		t.Fatalf("GenerateAndStore: %v", err)
	}
	if res.Provider != "second" || res.UsedFallback {
		t.Fatalf("result after swap: %+v", res)
	}
}
