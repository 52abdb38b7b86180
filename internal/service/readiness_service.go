package service

import (
	"context"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/repository"
	"interview_readiness_backend/internal/util"
	"math"
	"time"
)

const (
	technicalWeight = 0.7
	hrWeight        = 0.3
	maxConfidence   = 5.0
)

// ReadinessService 根据技能置信度维护就绪度快照
type ReadinessService struct {
	SkillRepo     *repository.SkillRepository
	ReadinessRepo *repository.ReadinessRepository
	now           func() time.Time
}

func NewReadinessService(skillRepo *repository.SkillRepository, readinessRepo *repository.ReadinessRepository) *ReadinessService {
	return &ReadinessService{
		SkillRepo:     skillRepo,
		ReadinessRepo: readinessRepo,
		now:           time.Now,
	}
}

// ComputeReadiness 按类别求平均，空集合记为 0；Behavioral 不参与计算
func ComputeReadiness(skills []model.Skill) (technical, hr, overall float64) {
	var techSum, hrSum float64
	var techCount, hrCount int
	for _, s := range skills {
		switch s.Category {
		case model.CategoryTechnical:
			techSum += float64(s.ConfidenceScore)
			techCount++
		case model.CategoryHR:
			hrSum += float64(s.ConfidenceScore)
			hrCount++
		}
	}
	if techCount > 0 {
		technical = util.Round2(techSum / float64(techCount))
	}
	if hrCount > 0 {
		hr = util.Round2(hrSum / float64(hrCount))
	}
	overall = util.Round2(technical*technicalWeight + hr*hrWeight)
	return
}

// ReadinessPercent 将 5 分制整体得分转换为百分比，无快照时为 0
func ReadinessPercent(score *model.ReadinessScore) int {
	if score == nil {
		return 0
	}
	return int(math.Round(score.OverallScore / maxConfidence * 100))
}

// Recompute 全量重算并覆盖快照，技能每次增删改后调用
func (s *ReadinessService) Recompute(ctx context.Context, ownerID string) (*model.ReadinessScore, error) {
	skills, err := s.SkillRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	technical, hr, overall := ComputeReadiness(skills)
	now := s.now()
	return s.ReadinessRepo.Upsert(ctx, &model.ReadinessScore{
		OwnerID:        ownerID,
		TechnicalScore: technical,
		HRScore:        hr,
		OverallScore:   overall,
		LastUpdated:    now,
	})
}

// Current 返回当前快照，可能为 nil
func (s *ReadinessService) Current(ctx context.Context, ownerID string) (*model.ReadinessScore, error) {
	return s.ReadinessRepo.FindByOwner(ctx, ownerID)
}
