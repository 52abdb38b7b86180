package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/repository"
	"interview_readiness_backend/internal/util"
	"interview_readiness_backend/pkg/logger"
	"interview_readiness_backend/pkg/monitoring"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	lowConfidenceThreshold = 3
	failedAttemptThreshold = 2
	failedAttemptWindow    = 7 * 24 * time.Hour
	readinessSprintPercent = 60
)

const (
	RuleCompanyFocus  = "company_focus"
	RuleLowSkill      = "low_confidence_skill"
	RuleFailures      = "recent_failures"
	RuleLowReadiness  = "low_readiness"
	RuleGrowthDefault = "growth_default"
)

// SuggestionInput 规则链的输入，未查询的字段保持零值
type SuggestionInput struct {
	CompanyFocus     string
	LowestSkill      *model.Skill
	RecentFailures   int64
	ReadinessPercent int
}

type SuggestionDraft struct {
	Text   string
	Type   model.SuggestionType
	Reason string
	Rule   string
}

// ChooseSuggestion 按优先级依次匹配，命中第一条即返回
func ChooseSuggestion(in SuggestionInput) SuggestionDraft {
	if focus := strings.TrimSpace(in.CompanyFocus); focus != "" {
		return SuggestionDraft{
			Text:   fmt.Sprintf("Today's Focus: Practice company-specific interview questions for %s.", focus),
			Type:   model.SuggestionPractice,
			Reason: "Company focus selected by user",
			Rule:   RuleCompanyFocus,
		}
	}

	if in.LowestSkill != nil && in.LowestSkill.ConfidenceScore < lowConfidenceThreshold {
		return SuggestionDraft{
			Text:   fmt.Sprintf("Today's Focus: Practice %s (Confidence %d/5).", in.LowestSkill.SkillName, in.LowestSkill.ConfidenceScore),
			Type:   model.SuggestionSkill,
			Reason: "Lowest confidence skill detected below threshold",
			Rule:   RuleLowSkill,
		}
	}

	if in.RecentFailures >= failedAttemptThreshold {
		return SuggestionDraft{
			Text:   "Daily Interview Task: Review your last incorrect answers and solve 3 similar questions today.",
			Type:   model.SuggestionPractice,
			Reason: "Recent failed attempts detected in the last 7 days",
			Rule:   RuleFailures,
		}
	}

	if in.ReadinessPercent < readinessSprintPercent {
		return SuggestionDraft{
			Text:   "Today's Focus: Do a 45-minute technical practice sprint to improve your readiness score.",
			Type:   model.SuggestionPractice,
			Reason: "Overall readiness is below 60%",
			Rule:   RuleLowReadiness,
		}
	}

	return SuggestionDraft{
		Text:   "Daily Interview Task: Attempt one full mock interview and review your responses.",
		Type:   model.SuggestionPractice,
		Reason: "No critical weak skill found, defaulting to growth practice",
		Rule:   RuleGrowthDefault,
	}
}

type SuggestionService struct {
	SuggestionRepo *repository.SuggestionRepository
	SkillRepo      *repository.SkillRepository
	QuestionRepo   *repository.QuestionRepository
	ReadinessRepo  *repository.ReadinessRepository
	Cache          *redis.Client
	now            func() time.Time
}

func NewSuggestionService(
	suggestionRepo *repository.SuggestionRepository,
	skillRepo *repository.SkillRepository,
	questionRepo *repository.QuestionRepository,
	readinessRepo *repository.ReadinessRepository,
	cache *redis.Client,
) *SuggestionService {
	return &SuggestionService{
		SuggestionRepo: suggestionRepo,
		SkillRepo:      skillRepo,
		QuestionRepo:   questionRepo,
		ReadinessRepo:  readinessRepo,
		Cache:          cache,
		now:            time.Now,
	}
}

// Build 只查询规则链实际需要的数据
func (s *SuggestionService) Build(ctx context.Context, ownerID, companyFocus string) (SuggestionDraft, error) {
	in := SuggestionInput{CompanyFocus: companyFocus}
	if strings.TrimSpace(companyFocus) != "" {
		return ChooseSuggestion(in), nil
	}

	lowest, err := s.SkillRepo.LowestBelow(ctx, ownerID, lowConfidenceThreshold)
	if err != nil {
		return SuggestionDraft{}, err
	}
	if lowest != nil {
		in.LowestSkill = lowest
		return ChooseSuggestion(in), nil
	}

	failures, err := s.QuestionRepo.CountIncorrectSince(ctx, ownerID, s.now().Add(-failedAttemptWindow))
	if err != nil {
		return SuggestionDraft{}, err
	}
	in.RecentFailures = failures
	if failures >= failedAttemptThreshold {
		return ChooseSuggestion(in), nil
	}

	readiness, err := s.ReadinessRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return SuggestionDraft{}, err
	}
	in.ReadinessPercent = ReadinessPercent(readiness)
	return ChooseSuggestion(in), nil
}

// Today 每个用户每个 UTC 日只运行一次规则链
func (s *SuggestionService) Today(ctx context.Context, ownerID, companyFocus string) (*model.DailySuggestion, error) {
	now := s.now().UTC()
	day := util.DayKey(now)

	if cached := s.readCache(ctx, ownerID, day); cached != nil {
		return cached, nil
	}

	existing, err := s.SuggestionRepo.FindByOwnerDay(ctx, ownerID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.writeCache(ctx, existing, now)
		return existing, nil
	}

	draft, err := s.Build(ctx, ownerID, companyFocus)
	if err != nil {
		return nil, err
	}

	suggestion := &model.DailySuggestion{
		OwnerID:        ownerID,
		Day:            day,
		Date:           util.NormalizeDay(now),
		SuggestionText: draft.Text,
		Type:           draft.Type,
		GeneratedFrom:  draft.Reason,
	}
	err = s.SuggestionRepo.Create(ctx, suggestion)
	switch {
	case errors.Is(err, util.ErrConflict):
		// 并发请求已写入当天建议，返回胜出者
		winner, ferr := s.SuggestionRepo.FindByOwnerDay(ctx, ownerID, day)
		if ferr != nil {
			return nil, ferr
		}
		if winner == nil {
			return nil, err
		}
		suggestion = winner
	case err != nil:
		return nil, err
	default:
		monitoring.RecordSuggestion(draft.Rule)
	}

	s.writeCache(ctx, suggestion, now)
	return suggestion, nil
}

func suggestionCacheKey(ownerID, day string) string {
	return fmt.Sprintf("suggestion:%s:%s", ownerID, day)
}

func (s *SuggestionService) readCache(ctx context.Context, ownerID, day string) *model.DailySuggestion {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, suggestionCacheKey(ownerID, day)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("Suggestion cache read failed", zap.String("owner", ownerID), zap.Error(err))
		}
		return nil
	}
	var suggestion model.DailySuggestion
	if err := json.Unmarshal(raw, &suggestion); err != nil {
		return nil
	}
	suggestion.Day = day
	return &suggestion
}

// writeCache 缓存到当天结束
func (s *SuggestionService) writeCache(ctx context.Context, suggestion *model.DailySuggestion, now time.Time) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(suggestion)
	if err != nil {
		return
	}
	ttl := util.EndOfDay(now).Sub(now)
	if err := s.Cache.Set(ctx, suggestionCacheKey(suggestion.OwnerID, suggestion.Day), raw, ttl).Err(); err != nil {
		logger.Log.Warn("Suggestion cache write failed", zap.String("owner", suggestion.OwnerID), zap.Error(err))
	}
}
