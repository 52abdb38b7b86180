package repository

import (
	"context"
	"interview_readiness_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.UserActivity) error {
	return r.DB.WithContext(ctx).Create(activity).Error
}

// CountDistinctDays 统计 [fromDay, toDay] 内有活动的天数
func (r *ActivityRepository) CountDistinctDays(ctx context.Context, ownerID, fromDay, toDay string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.UserActivity{}).
		Where("owner_id = ? AND activity_day >= ? AND activity_day <= ?", ownerID, fromDay, toDay).
		Distinct("activity_day").
		Count(&count).Error
	return count, err
}

func (r *ActivityRepository) ListRecent(ctx context.Context, ownerID string, limit int) ([]model.UserActivity, error) {
	activities := []model.UserActivity{}
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("activity_date DESC, created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
