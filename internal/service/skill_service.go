package service

import (
	"context"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/repository"
	"interview_readiness_backend/internal/util"
	"interview_readiness_backend/pkg/logger"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

type CreateSkillInput struct {
	SkillName       string              `validate:"required,max=120"`
	Category        model.SkillCategory `validate:"required,oneof=Technical HR Behavioral"`
	Level           model.SkillLevel    `validate:"required,oneof=Beginner Intermediate Advanced"`
	ConfidenceScore int                 `validate:"required,min=1,max=5"`
}

// SkillPatch 为 nil 的字段保持不变
type SkillPatch struct {
	SkillName       *string              `validate:"omitempty,min=1,max=120"`
	Category        *model.SkillCategory `validate:"omitempty,oneof=Technical HR Behavioral"`
	Level           *model.SkillLevel    `validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	ConfidenceScore *int                 `validate:"omitempty,min=1,max=5"`
}

func (p SkillPatch) Empty() bool {
	return p.SkillName == nil && p.Category == nil && p.Level == nil && p.ConfidenceScore == nil
}

type SkillService struct {
	SkillRepo        *repository.SkillRepository
	HistoryRepo      *repository.SkillHistoryRepository
	ReadinessService *ReadinessService
	StreakService    *StreakService
	now              func() time.Time
}

func NewSkillService(
	skillRepo *repository.SkillRepository,
	historyRepo *repository.SkillHistoryRepository,
	readinessService *ReadinessService,
	streakService *StreakService,
) *SkillService {
	return &SkillService{
		SkillRepo:        skillRepo,
		HistoryRepo:      historyRepo,
		ReadinessService: readinessService,
		StreakService:    streakService,
		now:              time.Now,
	}
}

func (s *SkillService) Create(ctx context.Context, ownerID string, in CreateSkillInput) (*model.SkillWithReadiness, error) {
	in.SkillName = strings.TrimSpace(in.SkillName)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	skill := &model.Skill{OwnerID: ownerID}
	if err := copier.Copy(skill, &in); err != nil {
		return nil, err
	}

	if err := s.SkillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}

	readiness, err := s.ReadinessService.Recompute(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &model.SkillWithReadiness{Skill: skill, Readiness: readiness}, nil
}

func (s *SkillService) List(ctx context.Context, ownerID string) (*model.SkillList, error) {
	skills, err := s.SkillRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	readiness, err := s.ReadinessService.Current(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &model.SkillList{Skills: skills, Readiness: readiness}, nil
}

// Update 置信度实际变化时写入历史，并重算就绪度
func (s *SkillService) Update(ctx context.Context, ownerID, id string, patch SkillPatch) (*model.SkillWithReadiness, error) {
	if patch.Empty() {
		return nil, util.NewValidationError("No valid fields provided for update")
	}
	if patch.SkillName != nil {
		trimmed := strings.TrimSpace(*patch.SkillName)
		patch.SkillName = &trimmed
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}

	skill, err := s.SkillRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	oldConfidence := skill.ConfidenceScore

	if err := copier.CopyWithOption(skill, &patch, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}

	if err := s.SkillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}

	if skill.ConfidenceScore != oldConfidence {
		now := s.now().UTC()
		entry := &model.SkillHistory{
			OwnerID:       ownerID,
			SkillID:       skill.ID,
			OldConfidence: oldConfidence,
			NewConfidence: skill.ConfidenceScore,
			ChangeDate:    now,
			ChangeDay:     util.DayKey(now),
		}
		if err := s.HistoryRepo.Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	readiness, err := s.ReadinessService.Recompute(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if s.StreakService != nil {
		if _, err := s.StreakService.RecordActivity(ctx, ownerID, model.ActivitySkillUpdate, skill.ID); err != nil {
			logger.Log.Warn("Failed to record skill activity", zap.String("owner", ownerID), zap.Error(err))
		}
	}

	return &model.SkillWithReadiness{Skill: skill, Readiness: readiness}, nil
}

func (s *SkillService) Delete(ctx context.Context, ownerID, id string) (*model.ReadinessScore, error) {
	if err := s.SkillRepo.Delete(ctx, ownerID, id); err != nil {
		return nil, err
	}
	return s.ReadinessService.Recompute(ctx, ownerID)
}
