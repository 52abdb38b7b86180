package service

import (
	"context"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/repository"
	"interview_readiness_backend/internal/util"
	"interview_readiness_backend/pkg/logger"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

const generatedHistorySize = 20

type AttemptRequest struct {
	QuestionID string
	UserAnswer *string
	IsCorrect  *bool
}

// GeneratedSetResult 生成接口的返回体
type GeneratedSetResult struct {
	GenerationResult
	GeneratedID string `json:"generatedId"`
}

type QuestionService struct {
	QuestionRepo  *repository.QuestionRepository
	StreakService *StreakService
	gateway       atomic.Pointer[QuestionGateway]
}

func NewQuestionService(questionRepo *repository.QuestionRepository, streakService *StreakService, gateway *QuestionGateway) *QuestionService {
	s := &QuestionService{
		QuestionRepo:  questionRepo,
		StreakService: streakService,
	}
	s.gateway.Store(gateway)
	return s
}

// SwapGateway 配置热更新时替换提供商，进行中的请求继续使用旧实例
func (s *QuestionService) SwapGateway(gateway *QuestionGateway) {
	s.gateway.Store(gateway)
}

func (s *QuestionService) Gateway() *QuestionGateway {
	return s.gateway.Load()
}

func (s *QuestionService) GenerateAndStore(ctx context.Context, ownerID string, req GenerateRequest) (*GeneratedSetResult, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	result, err := s.Gateway().Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	set := &model.GeneratedQuestionSet{
		OwnerID:       ownerID,
		Skill:         req.Skill,
		Difficulty:    req.Difficulty,
		Type:          req.Type,
		Provider:      result.Provider,
		UsedFallback:  result.UsedFallback,
		ProviderError: result.ProviderError,
		Questions:     result.Questions,
	}
	if err := s.QuestionRepo.CreateSet(ctx, set); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, ownerID, model.ActivityAIPractice, set.ID)

	return &GeneratedSetResult{GenerationResult: *result, GeneratedID: set.ID}, nil
}

// RecordAttempt 同一题目重复作答时覆盖答案并累加次数
func (s *QuestionService) RecordAttempt(ctx context.Context, ownerID string, req AttemptRequest) (*model.QuestionAttempt, error) {
	questionID := strings.TrimSpace(req.QuestionID)
	if questionID == "" || req.UserAnswer == nil || req.IsCorrect == nil {
		return nil, util.NewValidationError("questionId, userAnswer and isCorrect(boolean) are required")
	}

	attempt, err := s.QuestionRepo.UpsertAttempt(ctx, &model.QuestionAttempt{
		OwnerID:    ownerID,
		QuestionID: questionID,
		UserAnswer: *req.UserAnswer,
		IsCorrect:  *req.IsCorrect,
	})
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, ownerID, model.ActivityQuestionAttempt, attempt.ID)
	return attempt, nil
}

func (s *QuestionService) History(ctx context.Context, ownerID string) ([]model.GeneratedQuestionSet, error) {
	return s.QuestionRepo.ListSets(ctx, ownerID, generatedHistorySize)
}

// recordActivity 活动记录失败不影响主流程
func (s *QuestionService) recordActivity(ctx context.Context, ownerID string, activityType model.ActivityType, referenceID string) {
	if s.StreakService == nil {
		return
	}
	if _, err := s.StreakService.RecordActivity(ctx, ownerID, activityType, referenceID); err != nil {
		logger.Log.Warn("Failed to record activity",
			zap.String("owner", ownerID),
			zap.String("type", string(activityType)),
			zap.Error(err))
	}
}
