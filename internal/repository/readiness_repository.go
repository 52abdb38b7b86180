package repository

import (
	"context"
	"interview_readiness_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReadinessRepository struct {
	DB *gorm.DB
}

func NewReadinessRepository(db *gorm.DB) *ReadinessRepository {
	return &ReadinessRepository{DB: db}
}

// FindByOwner 没有快照时返回 nil, nil
func (r *ReadinessRepository) FindByOwner(ctx context.Context, ownerID string) (*model.ReadinessScore, error) {
	var scores []model.ReadinessScore
	err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Limit(1).Find(&scores).Error
	if err != nil || len(scores) == 0 {
		return nil, err
	}
	return &scores[0], nil
}

// Upsert 按 owner 覆盖写入后重新读取
func (r *ReadinessRepository) Upsert(ctx context.Context, score *model.ReadinessScore) (*model.ReadinessScore, error) {
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"technical_score", "hr_score", "overall_score", "last_updated", "updated_at"}),
	}).Create(score).Error
	if err != nil {
		return nil, err
	}
	return r.FindByOwner(ctx, score.OwnerID)
}
