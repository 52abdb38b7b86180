package repository

import (
	"context"
	"interview_readiness_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SummaryRepository struct {
	DB *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{DB: db}
}

func (r *SummaryRepository) FindByOwner(ctx context.Context, ownerID string) (*model.PerformanceSummary, error) {
	var summaries []model.PerformanceSummary
	err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Limit(1).Find(&summaries).Error
	if err != nil || len(summaries) == 0 {
		return nil, err
	}
	return &summaries[0], nil
}

// Upsert 整体替换已有快照
func (r *SummaryRepository) Upsert(ctx context.Context, summary *model.PerformanceSummary) (*model.PerformanceSummary, error) {
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"improvement_rate", "weakest_skills", "consistency_score",
			"stagnation_flag", "last_analyzed", "updated_at",
		}),
	}).Create(summary).Error
	if err != nil {
		return nil, err
	}
	return r.FindByOwner(ctx, summary.OwnerID)
}
