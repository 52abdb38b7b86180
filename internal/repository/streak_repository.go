package repository

import (
	"context"
	"interview_readiness_backend/internal/model"

	"gorm.io/gorm"
)

type StreakRepository struct {
	DB *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{DB: db}
}

// FindByOwner 没有记录时返回 nil, nil
func (r *StreakRepository) FindByOwner(ctx context.Context, ownerID string) (*model.UserStreak, error) {
	var streaks []model.UserStreak
	err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Limit(1).Find(&streaks).Error
	if err != nil || len(streaks) == 0 {
		return nil, err
	}
	return &streaks[0], nil
}

// Create 并发首次创建时返回 ErrConflict
func (r *StreakRepository) Create(ctx context.Context, streak *model.UserStreak) error {
	return translateError(r.DB.WithContext(ctx).Create(streak).Error, "streak")
}

func (r *StreakRepository) Save(ctx context.Context, streak *model.UserStreak) error {
	return r.DB.WithContext(ctx).
		Model(streak).
		Select("current_streak", "longest_streak", "last_active_date", "total_active_days", "updated_at").
		Updates(streak).Error
}
